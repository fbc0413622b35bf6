package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the charts_computed counter.
const (
	OutcomeOK                = "ok"
	OutcomeMalformed         = "malformed"
	OutcomeTimezoneError     = "timezone_error"
	OutcomeCollaboratorError = "collaborator_error"
	OutcomeInternalError     = "internal_error"
)

// Metrics bundles the service's Prometheus instruments. All methods are
// nil-safe so handlers under test can run without a registry.
type Metrics struct {
	chartsComputed     *prometheus.CounterVec
	timezoneFallbacks  prometheus.Counter
	collaboratorErrors *prometheus.CounterVec
	chartLatency       prometheus.Histogram
}

// NewMetrics registers the instruments on the default registry. Call it once
// from the composition root; a second call panics on duplicate registration.
func NewMetrics() *Metrics {
	return &Metrics{
		chartsComputed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "natal_charts_computed_total",
			Help: "Chart requests by outcome.",
		}, []string{"outcome"}),
		timezoneFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "natal_timezone_fallbacks_total",
			Help: "Chart requests that used the fixed-offset timezone fallback.",
		}),
		collaboratorErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "natal_collaborator_errors_total",
			Help: "Failed collaborator calls by collaborator.",
		}, []string{"collaborator"}),
		chartLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "natal_chart_duration_seconds",
			Help:    "End-to-end chart computation latency.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) IncChart(outcome string) {
	if m != nil {
		m.chartsComputed.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncTimezoneFallback() {
	if m != nil {
		m.timezoneFallbacks.Inc()
	}
}

func (m *Metrics) IncCollaboratorError(collaborator string) {
	if m != nil {
		m.collaboratorErrors.WithLabelValues(collaborator).Inc()
	}
}

func (m *Metrics) ObserveChartLatency(d time.Duration) {
	if m != nil {
		m.chartLatency.Observe(d.Seconds())
	}
}
