package cache

import (
	"github.com/sajee05/effortless-time-tracker/internal/metrics"
)

// MetricsCache wraps a Provider and increments hit/miss counters on
// every Get call.
type MetricsCache struct {
	inner   Provider
	metrics metrics.Provider
}

// NewMetricsCache decorates the given cache with hit/miss accounting.
func NewMetricsCache(inner Provider, m metrics.Provider) Provider {
	return &MetricsCache{inner: inner, metrics: m}
}

func (c *MetricsCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return val, ok
}

func (c *MetricsCache) Set(key string, value []byte) {
	c.inner.Set(key, value)
}
