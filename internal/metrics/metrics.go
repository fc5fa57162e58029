package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Tracks catalog load attempts by outcome.
	CatalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currency_catalog_loads_total",
			Help: "Total number of catalog load attempts by result.",
		},
		[]string{"result"}, // result = "ok" | "error"
	)

	// Measures catalog load duration end to end (fetch + snapshot build).
	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "currency_catalog_load_duration_seconds",
			Help:    "Duration of catalog loads in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Tracks conversion rate lookups by outcome.
	RateLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currency_rate_lookups_total",
			Help: "Total number of rate provider lookups by result.",
		},
		[]string{"result"}, // result = "ok" | "error"
	)

	// Tracks rate cache hits and misses.
	RateCacheAccessTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currency_rate_cache_access_total",
			Help: "Number of rate cache hits and misses.",
		},
		[]string{"result"}, // result = "hit" | "miss"
	)

	// Counts renders that degraded to the unconverted source amount.
	FormatsDegradedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "currency_formats_degraded_total",
			Help: "Number of formats that fell back to the source currency.",
		},
	)

	// Counts successful display currency changes.
	SelectionChangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "currency_selection_changes_total",
			Help: "Number of successful display currency selections.",
		},
	)
)
