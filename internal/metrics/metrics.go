package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the record vault.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	AccessDecisions      *prometheus.CounterVec
	AuditEntries         *prometheus.CounterVec
	TransientRetries     *prometheus.CounterVec
	NotificationFailures prometheus.Counter
	OperationLatency     *prometheus.HistogramVec
}

// New registers collectors with reg. Pass prometheus.DefaultRegisterer in
// production and prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AccessDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hrv_access_decisions_total",
			Help: "Access evaluations, labeled by required level and outcome",
		}, []string{"level", "outcome"}),
		AuditEntries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hrv_audit_entries_total",
			Help: "Audit entries appended, labeled by action and risk level",
		}, []string{"action", "risk"}),
		TransientRetries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hrv_transient_retries_total",
			Help: "Units of work retried after a transient store conflict",
		}, []string{"operation"}),
		NotificationFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "hrv_owner_notification_failures_total",
			Help: "Owner notifications that could not be delivered",
		}),
		OperationLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrv_operation_latency_seconds",
			Help:    "Latency of record lifecycle operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
	}
}

func (m *Metrics) ObserveAccessDecision(level string, granted bool) {
	if m == nil {
		return
	}
	outcome := "denied"
	if granted {
		outcome = "granted"
	}
	m.AccessDecisions.WithLabelValues(level, outcome).Inc()
}

func (m *Metrics) IncrementAuditEntries(action, risk string) {
	if m == nil {
		return
	}
	m.AuditEntries.WithLabelValues(action, risk).Inc()
}

func (m *Metrics) IncrementTransientRetries(operation string) {
	if m == nil {
		return
	}
	m.TransientRetries.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementNotificationFailures() {
	if m == nil {
		return
	}
	m.NotificationFailures.Inc()
}

func (m *Metrics) ObserveOperationLatency(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.OperationLatency.WithLabelValues(operation).Observe(seconds)
}
