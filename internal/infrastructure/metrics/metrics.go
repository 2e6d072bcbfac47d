package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request counts and latencies per route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP metrics on the provided registerer.
// A nil registerer yields a recorder that does nothing.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served, by method, route and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	reg.MustRegister(requests, duration)
	return &HTTPMetrics{requests: requests, duration: duration}
}

func (m *HTTPMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// CacheMetrics counts request cache outcomes per request kind.
type CacheMetrics struct {
	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	failures *prometheus.CounterVec
	shared   *prometheus.CounterVec
}

func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	if reg == nil {
		return &CacheMetrics{}
	}
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "request_cache_hits_total",
		Help: "Requests answered from a completed cache entry.",
	}, []string{"kind"})
	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "request_cache_fetches_total",
		Help: "Fetches dispatched because no completed entry existed.",
	}, []string{"kind"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "request_cache_fetch_failures_total",
		Help: "Dispatched fetches that failed and were not cached.",
	}, []string{"kind"})
	shared := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "request_cache_shared_total",
		Help: "Callers that joined an outstanding fetch instead of dispatching one.",
	}, []string{"kind"})
	reg.MustRegister(hits, misses, failures, shared)
	return &CacheMetrics{hits: hits, misses: misses, failures: failures, shared: shared}
}

func (m *CacheMetrics) Hit(kind string) {
	if m == nil || m.hits == nil {
		return
	}
	m.hits.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (m *CacheMetrics) Fetch(kind string) {
	if m == nil || m.misses == nil {
		return
	}
	m.misses.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (m *CacheMetrics) FetchFailed(kind string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (m *CacheMetrics) Shared(kind string) {
	if m == nil || m.shared == nil {
		return
	}
	m.shared.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
