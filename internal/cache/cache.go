package cache

import (
	"unsafe"

	"github.com/coocood/freecache"

	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
)

// Provider is the snapshot cache in front of the overlay API.
type Provider interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type cacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

// NewCacheProvider builds the overlay snapshot cache. Disabled or
// zero-sized caches degrade to a noop so callers never branch.
func NewCacheProvider(conf *config.Config, logger logging.Logger) Provider {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof("cache disabled")
		return &noopCache{}
	}

	ttl := max(int(conf.Cache.TTL.Seconds()), 1)

	logger.Infof("cache initialized: %d bytes, TTL=%ds", conf.Cache.Size, ttl)

	return &cacheProvider{
		cache: freecache.NewCache(conf.Cache.Size),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache — it copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *cacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *cacheProvider) Set(key string, value []byte) {
	_ = c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
