package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Timeline metrics
	TimelinesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_tracker_timelines_generated_total",
			Help: "Total number of tracking timelines synthesized, by parcel status",
		},
		[]string{"status"},
	)

	TimelineEvents = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parcel_tracker_timeline_events",
			Help:    "Number of events in each synthesized timeline",
			Buckets: []float64{2, 3, 4, 5, 6},
		},
	)

	// Parcel store metrics
	ParcelCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_tracker_parcel_cache_lookups_total",
			Help: "Parcel cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	ParcelsTracked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_tracker_parcels_tracked_total",
			Help: "Tracking requests by outcome (existing, created)",
		},
		[]string{"outcome"},
	)

	StoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parcel_tracker_store_duration_seconds",
			Help:    "Duration of parcel store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Rate calculator metrics
	RateQuotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_tracker_rate_quotes_total",
			Help: "Rate quotes by route source (table, base)",
		},
		[]string{"source"},
	)
)
