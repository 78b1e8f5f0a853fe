package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"shelby-dashboard/internal/models"
)

type PrometheusMetrics struct {
	fetchTotal          *prometheus.CounterVec
	fetchDuration       prometheus.Histogram
	cacheEvents         *prometheus.CounterVec
	circuitBreakerState prometheus.Gauge
	exportsTotal        *prometheus.CounterVec
	exportDuration      prometheus.Histogram
	chartRendersTotal   *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		fetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheets_fetch_total",
				Help: "Total number of spreadsheet fetches by sheet and status",
			},
			[]string{"sheet", "status"},
		),
		fetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sheets_fetch_duration_seconds",
				Help:    "Spreadsheet fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		cacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheets_cache_events_total",
				Help: "Row cache hits and misses by sheet",
			},
			[]string{"sheet", "result"},
		),
		circuitBreakerState: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "sheets_circuit_breaker_state",
				Help: "Spreadsheet circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_exports_total",
				Help: "Total number of XLSX workbook exports by status",
			},
			[]string{"status"},
		),
		exportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_export_duration_seconds",
				Help:    "XLSX workbook build duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		chartRendersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_chart_renders_total",
				Help: "Total number of chart renders by chart and status",
			},
			[]string{"chart", "status"},
		),
	}
}

func (m *PrometheusMetrics) RecordFetch(sheet, status string, duration time.Duration) {
	m.fetchTotal.WithLabelValues(sheet, status).Inc()
	m.fetchDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordCacheHit(sheet string) {
	m.cacheEvents.WithLabelValues(sheet, "hit").Inc()
}

func (m *PrometheusMetrics) RecordCacheMiss(sheet string) {
	m.cacheEvents.WithLabelValues(sheet, "miss").Inc()
}

func (m *PrometheusMetrics) SetCircuitBreakerState(state models.CircuitBreakerState) {
	m.circuitBreakerState.Set(float64(state))
}

func (m *PrometheusMetrics) RecordExport(status string, duration time.Duration) {
	m.exportsTotal.WithLabelValues(status).Inc()
	m.exportDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordChartRender(chart, status string) {
	m.chartRendersTotal.WithLabelValues(chart, status).Inc()
}

// NoopMetrics is a MetricsRecorderInterface that records nothing, used in
// tests to avoid duplicate Prometheus registrations
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (NoopMetrics) RecordFetch(string, string, time.Duration)         {}
func (NoopMetrics) RecordCacheHit(string)                             {}
func (NoopMetrics) RecordCacheMiss(string)                            {}
func (NoopMetrics) SetCircuitBreakerState(models.CircuitBreakerState) {}
func (NoopMetrics) RecordExport(string, time.Duration)                {}
func (NoopMetrics) RecordChartRender(string, string)                  {}
