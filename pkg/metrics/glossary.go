package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(lookupsTotal, cacheRequestsTotal, hydratedTotal) }

var (
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossary_lookups_total",
			Help: "Glossary lookups by result (hit/miss/error).",
		},
		[]string{"result"},
	)

	cacheRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Tracks cache hits and misses for various caches.",
		},
		[]string{"cache", "result"},
	)

	hydratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossary_hydrated_entries_total",
			Help: "Entries processed by hydration runs by outcome.",
		},
		[]string{"outcome"},
	)
)

func IncLookup(res string) {
	lookupsTotal.WithLabelValues(norm(res)).Inc()
}

func IncCacheRequest(cacheName, res string) {
	cacheRequestsTotal.WithLabelValues(norm(cacheName), norm(res)).Inc()
}

func AddHydrated(outcome string, n int) {
	if n <= 0 {
		return
	}
	hydratedTotal.WithLabelValues(norm(outcome)).Add(float64(n))
}
