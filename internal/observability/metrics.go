package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// converter.
type Metrics struct {
	FilesConverted  prometheus.Counter
	FileFailures    prometheus.Counter
	RowsParsed      prometheus.Counter
	FormatErrors    prometheus.Counter
	PipelineRunning prometheus.Gauge
	ConvertDuration prometheus.Histogram
}

// NewMetrics creates and registers all converter metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesConverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obs_etl",
			Name:      "files_converted_total",
			Help:      "Total input files converted to artifacts.",
		}),
		FileFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obs_etl",
			Name:      "file_failures_total",
			Help:      "Total input files that failed to convert.",
		}),
		RowsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obs_etl",
			Name:      "rows_parsed_total",
			Help:      "Total observation rows parsed from input files.",
		}),
		FormatErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obs_etl",
			Name:      "format_errors_total",
			Help:      "Total input files rejected for schema or coercion errors.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "obs_etl",
			Name:      "pipeline_running",
			Help:      "1 while the conversion batch is active, 0 otherwise.",
		}),
		ConvertDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "obs_etl",
			Name:      "convert_duration_seconds",
			Help:      "Duration of a complete per-file extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.FilesConverted,
		m.FileFailures,
		m.RowsParsed,
		m.FormatErrors,
		m.PipelineRunning,
		m.ConvertDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FilesConverted:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "obs_etl", Name: "files_converted_total"}),
		FileFailures:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "obs_etl", Name: "file_failures_total"}),
		RowsParsed:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "obs_etl", Name: "rows_parsed_total"}),
		FormatErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "obs_etl", Name: "format_errors_total"}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "obs_etl", Name: "pipeline_running"}),
		ConvertDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "obs_etl", Name: "convert_duration_seconds"}),
	}
}
