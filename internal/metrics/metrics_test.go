package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveAccessDecision("read", true)
	m.ObserveAccessDecision("read", false)
	m.ObserveAccessDecision("read", false)
	m.IncrementAuditEntries("READ", "low")
	m.IncrementTransientRetries("read")
	m.IncrementNotificationFailures()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccessDecisions.WithLabelValues("read", "granted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AccessDecisions.WithLabelValues("read", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditEntries.WithLabelValues("READ", "low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransientRetries.WithLabelValues("read")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailures))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAccessDecision("read", true)
		m.IncrementAuditEntries("READ", "low")
		m.IncrementTransientRetries("read")
		m.IncrementNotificationFailures()
		m.ObserveOperationLatency("read", 0.1)
	})
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
