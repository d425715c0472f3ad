package querycache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console_client",
			Name:      "cache_hits_total",
			Help:      "Fetches served from a fresh cache entry.",
		},
		[]string{"tier"},
	)

	missesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console_client",
			Name:      "cache_misses_total",
			Help:      "Fetches that ran (or joined) a loader.",
		},
		[]string{"tier"},
	)

	invalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "console_client",
		Name:      "cache_invalidations_total",
		Help:      "Entries marked stale by mutations.",
	})

	setsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "console_client",
		Name:      "cache_sets_total",
		Help:      "Entries overwritten directly from mutation responses.",
	})

	refreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "console_client",
		Name:      "cache_background_refreshes_total",
		Help:      "Successful interval refreshes of aggregate queries.",
	})
)
