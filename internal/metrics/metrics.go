package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Plan generation metrics
var (
	PlansGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlansGenerated,
			Help: HelpTextPlansGenerated,
		},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameGenerationDuration,
			Help:    HelpTextGenerationDuration,
			Buckets: prometheus.DefBuckets,
		},
	)

	GenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGenerationFailures,
			Help: HelpTextGenerationFailures,
		},
		[]string{LabelReason},
	)

	UnfilledSlots = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnfilledSlots,
			Help: HelpTextUnfilledSlots,
		},
	)

	DayPersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDayPersistFailures,
			Help: HelpTextDayPersistFailures,
		},
	)

	FilterFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFilterFallbacks,
			Help: HelpTextFilterFallbacks,
		},
	)
)

// Recipe cache metrics
var (
	RecipeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipeCacheHits,
			Help: HelpTextRecipeCacheHits,
		},
	)

	RecipeCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipeCacheMisses,
			Help: HelpTextRecipeCacheMisses,
		},
	)
)
