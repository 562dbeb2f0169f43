package relay

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// routerMetrics contains Prometheus metrics for the route tree and its
// match cache. Metrics are process-global: every RouteTree in the process
// reports into the same series.
type routerMetrics struct {
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	cacheEvictions prometheus.Counter
	cacheSize      prometheus.Gauge
	matches        *prometheus.CounterVec
}

var (
	routerMetricsInstance *routerMetrics
	routerMetricsOnce     sync.Once
)

// getRouterMetrics returns the singleton router metrics instance.
func getRouterMetrics() *routerMetrics {
	routerMetricsOnce.Do(func() {
		routerMetricsInstance = &routerMetrics{
			cacheHits: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "relay",
					Subsystem: "router",
					Name:      "match_cache_hits_total",
					Help:      "Total number of match cache hits",
				},
			),
			cacheMisses: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "relay",
					Subsystem: "router",
					Name:      "match_cache_misses_total",
					Help:      "Total number of match cache misses",
				},
			),
			cacheEvictions: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "relay",
					Subsystem: "router",
					Name:      "match_cache_evictions_total",
					Help:      "Total number of match cache evictions",
				},
			),
			cacheSize: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "relay",
					Subsystem: "router",
					Name:      "match_cache_size",
					Help:      "Current number of entries in the match cache",
				},
			),
			matches: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "relay",
					Subsystem: "router",
					Name:      "matches_total",
					Help:      "Total number of match calls by winning strategy",
				},
				[]string{"strategy"},
			),
		}
	})
	return routerMetricsInstance
}
