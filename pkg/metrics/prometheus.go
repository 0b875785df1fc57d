package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes application counters on the Prometheus registry.
type Recorder struct {
	quoteFetches   *prometheus.CounterVec
	captures       *prometheus.CounterVec
	renders        *prometheus.CounterVec
	activeSessions prometheus.Gauge
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		quoteFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mockshot_quote_fetches_total",
				Help: "Total number of upstream quote fetches",
			},
			[]string{"outcome"},
		),
		captures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mockshot_captures_total",
				Help: "Total number of screenshot captures",
			},
			[]string{"mode", "outcome"},
		),
		renders: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mockshot_renders_total",
				Help: "Total number of template renders",
			},
			[]string{"mode"},
		),
		activeSessions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mockshot_active_sessions",
				Help: "Current number of live generator sessions",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mockshot_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordQuoteFetch records one upstream quote fetch by outcome
// (ok, not_found, error).
func (r *Recorder) RecordQuoteFetch(outcome string) {
	r.quoteFetches.WithLabelValues(outcome).Inc()
}

// RecordCapture records a screenshot capture attempt.
func (r *Recorder) RecordCapture(mode, outcome string) {
	r.captures.WithLabelValues(mode, outcome).Inc()
}

// RecordRender records a template render.
func (r *Recorder) RecordRender(mode string) {
	r.renders.WithLabelValues(mode).Inc()
}

// SetActiveSessions records the live session count.
func (r *Recorder) SetActiveSessions(n int) {
	r.activeSessions.Set(float64(n))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
