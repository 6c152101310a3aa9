package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	ValidationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglai_validations_total",
			Help: "Total number of texts passed through the validation gate",
		},
		[]string{"result", "reason"},
	)

	ViolationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglai_violations_total",
			Help: "Total number of inappropriate-content verdicts by category and submission context",
		},
		[]string{"category", "context"},
	)

	UsageRecordsDropped = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "polyglai_usage_records_dropped_total",
			Help: "Usage records dropped because the recorder queue was full or closed",
		},
	)

	UsageRecordsPersisted = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglai_usage_records_total",
			Help: "Usage records handled by the recorder workers",
		},
		[]string{"status"},
	)

	TranslationLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "polyglai_translation_latency_ms",
			Help:    "Translation provider latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider", "operation"},
	)

	RequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglai_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)
)

type MetricsConfig struct {
	EnableLatency  bool // Provider latency histograms
	EnableRequests bool // Per-route request counters
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency:  true,
		EnableRequests: true,
	}
}

var (
	Config   MetricsConfig
	initOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

// Gatherer exposes the console registry to the scrape endpoint.
func Gatherer() prometheus.Gatherer {
	return registry
}
