// Package metrics instruments the report pipeline with Prometheus
// metrics. All metrics live in a private registry so importing this
// package never pollutes the default one.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline instruments. The zero value is not
// usable; construct with New.
type Metrics struct {
	registry *prometheus.Registry

	findingsParsed    *prometheus.CounterVec
	parseErrors       *prometheus.CounterVec
	enrichments       *prometheus.CounterVec
	exportsTotal      *prometheus.CounterVec
	exportDuration    *prometheus.HistogramVec
	pipelineDuration  prometheus.Histogram
	findingsProcessed prometheus.Gauge
}

// New creates the pipeline metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		findingsParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autoreport",
			Name:      "findings_parsed_total",
			Help:      "Findings parsed, labeled by scanner source.",
		}, []string{"source"}),
		parseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autoreport",
			Name:      "parse_errors_total",
			Help:      "Scanner report parse failures by source.",
		}, []string{"source"}),
		enrichments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autoreport",
			Name:      "enrichments_total",
			Help:      "Per-finding enrichment outcomes (model or fallback).",
		}, []string{"outcome"}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autoreport",
			Name:      "exports_total",
			Help:      "Export operations by format and result.",
		}, []string{"format", "result"}),
		exportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "autoreport",
			Name:      "export_duration_seconds",
			Help:      "Export duration by format.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),
		pipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "autoreport",
			Name:      "pipeline_duration_seconds",
			Help:      "End-to-end pipeline run duration.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}),
		findingsProcessed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "autoreport",
			Name:      "findings_processed",
			Help:      "Findings in the most recent pipeline run.",
		}),
	}

	registry.MustRegister(
		m.findingsParsed,
		m.parseErrors,
		m.enrichments,
		m.exportsTotal,
		m.exportDuration,
		m.pipelineDuration,
		m.findingsProcessed,
	)
	return m
}

// Enrichment outcome labels.
const (
	OutcomeModel    = "model"
	OutcomeFallback = "fallback"
)

// ObserveParse records findings parsed from one scanner source.
func (m *Metrics) ObserveParse(source string, count int) {
	m.findingsParsed.WithLabelValues(source).Add(float64(count))
}

// ObserveParseError records a failed parse for a source.
func (m *Metrics) ObserveParseError(source string) {
	m.parseErrors.WithLabelValues(source).Inc()
}

// ObserveEnrichment records one per-finding enrichment outcome.
func (m *Metrics) ObserveEnrichment(outcome string) {
	m.enrichments.WithLabelValues(outcome).Inc()
}

// ObserveExport records an export attempt with its duration.
func (m *Metrics) ObserveExport(format string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exportsTotal.WithLabelValues(format, result).Inc()
	m.exportDuration.WithLabelValues(format).Observe(d.Seconds())
}

// ObservePipeline records a completed pipeline run.
func (m *Metrics) ObservePipeline(findings int, d time.Duration) {
	m.findingsProcessed.Set(float64(findings))
	m.pipelineDuration.Observe(d.Seconds())
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gather exposes the registry for tests and push-style consumers.
func (m *Metrics) Gather() *prometheus.Registry {
	return m.registry
}
