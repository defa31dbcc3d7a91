package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sajee05/effortless-time-tracker/internal/config"
)

// Provider records the counters the overlay server and services feed.
type Provider interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncToggles(action string)
	IncSessionsRecorded()
	ObserveSessionDuration(duration time.Duration)
}

type metricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	togglesTotal     *prometheus.CounterVec
	sessionsRecorded prometheus.Counter
	sessionDuration  prometheus.Histogram
}

func (m *metricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *metricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *metricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *metricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *metricsProvider) IncToggles(action string) {
	m.togglesTotal.WithLabelValues(action).Inc()
}

func (m *metricsProvider) IncSessionsRecorded() {
	m.sessionsRecorded.Inc()
}

func (m *metricsProvider) ObserveSessionDuration(duration time.Duration) {
	m.sessionDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// NewMetricsProvider registers the tracker's collectors, or returns a noop
// implementation when metrics are disabled.
func NewMetricsProvider(conf *config.Config) Provider {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &metricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ett_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ett_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ett_cache_hits_total",
			Help: "Total number of overlay cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ett_cache_misses_total",
			Help: "Total number of overlay cache misses",
		}),

		togglesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ett_toggles_total",
			Help: "Total number of timer toggles by resulting action",
		}, []string{"action"}),

		sessionsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ett_sessions_recorded_total",
			Help: "Total number of sessions written to the store",
		}),

		sessionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ett_session_duration_seconds",
			Help:    "Recorded session length in seconds",
			Buckets: []float64{60, 300, 900, 1800, 3600, 7200, 14400},
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncToggles(_ string)                              {}
func (n *noopMetrics) IncSessionsRecorded()                             {}
func (n *noopMetrics) ObserveSessionDuration(_ time.Duration)           {}
