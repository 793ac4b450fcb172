package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type collector struct {
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	cacheRequests   *prometheus.CounterVec
	cacheLatency    *prometheus.HistogramVec
	cacheHitRatio   *prometheus.GaugeVec
	upstreamCalls   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

var (
	globalCollector *collector
	collectorOnce   sync.Once
)

func getCollector() *collector {
	collectorOnce.Do(func() {
		globalCollector = &collector{
			cacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "portal_cache_hits_total",
					Help: "The total number of cache hits",
				},
				[]string{"cache_type"},
			),
			cacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "portal_cache_misses_total",
					Help: "The total number of cache misses",
				},
				[]string{"cache_type"},
			),
			cacheRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "portal_cache_requests_total",
					Help: "The total number of cache requests",
				},
				[]string{"cache_type"},
			),
			cacheLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "portal_cache_duration_seconds",
					Help:    "Cache operation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"cache_type", "operation"},
			),
			cacheHitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "portal_cache_hit_ratio",
					Help: "Cache hit ratio (hits/total requests)",
				},
				[]string{"cache_type"},
			),
			upstreamCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "portal_upstream_requests_total",
					Help: "Upstream service calls by outcome",
				},
				[]string{"service", "outcome"},
			),
			upstreamLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "portal_upstream_duration_seconds",
					Help:    "Upstream call duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"service"},
			),
		}
	})
	return globalCollector
}

// CacheMetrics tracks hit/miss counts for one cache instance
type CacheMetrics struct {
	cacheType string
	hits      int64
	misses    int64
	total     int64
	collector *collector
	mu        sync.RWMutex
}

func NewCacheMetrics(cacheType string) *CacheMetrics {
	return &CacheMetrics{
		cacheType: cacheType,
		collector: getCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.collector.cacheHits.WithLabelValues(m.cacheType).Inc()
	m.collector.cacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.collector.cacheMisses.WithLabelValues(m.cacheType).Inc()
	m.collector.cacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordLatency(operation string, duration float64) {
	m.collector.cacheLatency.WithLabelValues(m.cacheType, operation).Observe(duration)
}

// updateHitRatio updates the Prometheus hit ratio gauge.
// Must be called while holding the mutex.
func (m *CacheMetrics) updateHitRatio() {
	if m.total > 0 {
		ratio := float64(m.hits) / float64(m.total)
		m.collector.cacheHitRatio.WithLabelValues(m.cacheType).Set(ratio)
	}
}

func (m *CacheMetrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}

	return map[string]interface{}{
		"cache_type": m.cacheType,
		"hits":       m.hits,
		"misses":     m.misses,
		"total":      m.total,
		"hit_ratio":  hitRatio,
	}
}

// UpstreamMetrics tracks calls to one remote service
type UpstreamMetrics struct {
	service   string
	collector *collector
}

func NewUpstreamMetrics(service string) *UpstreamMetrics {
	return &UpstreamMetrics{
		service:   service,
		collector: getCollector(),
	}
}

// RecordCall counts one upstream call by outcome ("success" or the error
// type) and observes its duration.
func (m *UpstreamMetrics) RecordCall(outcome string, seconds float64) {
	m.collector.upstreamCalls.WithLabelValues(m.service, outcome).Inc()
	m.collector.upstreamLatency.WithLabelValues(m.service).Observe(seconds)
}
