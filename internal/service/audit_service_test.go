package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports/mocks"
	"health-record-vault/internal/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type auditTestDeps struct {
	svc        *AuditServiceImpl
	repo       *mocks.MockAuditRepository
	transactor *mocks.MockDBTransactor
	metrics    *metrics.Metrics
}

func setupAuditService(t *testing.T) *auditTestDeps {
	ctrl := gomock.NewController(t)
	d := &auditTestDeps{
		repo:       mocks.NewMockAuditRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		metrics:    metrics.New(prometheus.NewRegistry()),
	}
	d.svc = NewAuditService(d.repo, d.transactor, DefaultAuditPolicy(), d.metrics, newTestLogger())
	return d
}

func at(hour int) time.Time {
	return time.Date(2026, 5, 4, hour, 30, 0, 0, time.UTC)
}

func TestAuditService_RiskScore(t *testing.T) {
	svc := setupAuditService(t).svc

	tests := []struct {
		name    string
		entry   domain.AuditLogEntry
		score   int
		level   domain.RiskLevel
		factors []string
	}{
		{
			name:    "business hours read",
			entry:   domain.AuditLogEntry{Action: domain.AuditActionRead, Timestamp: at(10)},
			score:   0,
			level:   domain.RiskLevelLow,
			factors: []string{},
		},
		{
			name:    "emergency during business hours",
			entry:   domain.AuditLogEntry{Action: domain.AuditActionEmergencyAccess, Timestamp: at(10)},
			score:   4,
			level:   domain.RiskLevelLow,
			factors: []string{RiskFactorEmergency},
		},
		{
			name:    "emergency off hours",
			entry:   domain.AuditLogEntry{Action: domain.AuditActionEmergencyAccess, Timestamp: at(2)},
			score:   6,
			level:   domain.RiskLevelMedium,
			factors: []string{RiskFactorEmergency, RiskFactorOffHours},
		},
		{
			name: "repeated attempts from unusual location",
			entry: domain.AuditLogEntry{
				Action: domain.AuditActionRead, Timestamp: at(12),
				Flags: domain.RiskFlags{RepeatedAttempt: true, UnusualLocation: true},
			},
			score:   6,
			level:   domain.RiskLevelMedium,
			factors: []string{RiskFactorRepeatedAttempt, RiskFactorUnusualLocation},
		},
		{
			name: "everything at once",
			entry: domain.AuditLogEntry{
				Action: domain.AuditActionEmergencyAccess, Timestamp: at(23),
				Flags: domain.RiskFlags{RepeatedAttempt: true, UnusualLocation: true},
			},
			score:   12,
			level:   domain.RiskLevelHigh,
			factors: []string{RiskFactorEmergency, RiskFactorOffHours, RiskFactorRepeatedAttempt, RiskFactorUnusualLocation},
		},
		{
			name: "score of exactly seven stays medium",
			entry: domain.AuditLogEntry{
				Action: domain.AuditActionEmergencyAccess, Timestamp: at(9),
				Flags: domain.RiskFlags{UnusualLocation: true},
			},
			score:   7,
			level:   domain.RiskLevelMedium,
			factors: []string{RiskFactorEmergency, RiskFactorUnusualLocation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra := svc.RiskScore(&tt.entry)
			assert.Equal(t, tt.score, ra.Score)
			assert.Equal(t, tt.level, ra.Level)
			assert.Equal(t, tt.factors, ra.Factors)
		})
	}
}

func TestAuditService_OffHoursBoundaries(t *testing.T) {
	svc := setupAuditService(t).svc

	cases := []struct {
		ts  time.Time
		off bool
	}{
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 1, 1, 5, 59, 59, 0, time.UTC), true},
		{time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC), false},
		{time.Date(2026, 1, 1, 17, 59, 59, 0, time.UTC), false},
		{time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC), false},
		{time.Date(2026, 1, 1, 18, 0, 0, 1, time.UTC), true},
		{time.Date(2026, 1, 1, 18, 0, 1, 0, time.UTC), true},
		{time.Date(2026, 1, 1, 18, 30, 0, 0, time.UTC), true},
		{time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC), true},
	}
	for _, tc := range cases {
		e := domain.AuditLogEntry{Action: domain.AuditActionRead, Timestamp: tc.ts}
		assert.Equal(t, tc.off, svc.RiskScore(&e).Score == riskWeightOffHours, "at %s", tc.ts.Format("15:04:05.000000000"))
	}
}

func TestAuditService_Append_StampsAndScores(t *testing.T) {
	d := setupAuditService(t)
	ctx := context.Background()
	tx := &mockTx{}
	fixed := at(20)
	d.svc.now = func() time.Time { return fixed }

	entry := &domain.AuditLogEntry{
		RecordID:    uuid.New(),
		Action:      domain.AuditActionRead,
		PerformedBy: "patient-1",
		IPAddress:   "10.1.2.3",
	}
	d.repo.EXPECT().Append(ctx, tx, entry).Return(nil)

	require.NoError(t, d.svc.Append(ctx, tx, entry))
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, fixed, entry.Timestamp)
	assert.Equal(t, fixed.Add(domain.AuditRetentionPeriod), entry.RetainUntil)
	assert.Equal(t, riskWeightOffHours, entry.Risk.Score)
	assert.Equal(t, 1.0, testutil.ToFloat64(d.metrics.AuditEntries.WithLabelValues("READ", "low")))
}

func TestAuditService_Append_RejectsUnknownAction(t *testing.T) {
	d := setupAuditService(t)
	err := d.svc.Append(context.Background(), &mockTx{}, &domain.AuditLogEntry{Action: "DELETE"})
	assertAppError(t, err, "VAL_001")
}

func TestAuditService_Append_RepoError(t *testing.T) {
	d := setupAuditService(t)
	d.repo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := d.svc.Append(context.Background(), &mockTx{}, &domain.AuditLogEntry{Action: domain.AuditActionCreate})
	assertAppError(t, err, "SYS_001")
}

func TestAuditService_AppendStandalone(t *testing.T) {
	d := setupAuditService(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.repo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.AppendStandalone(ctx, &domain.AuditLogEntry{Action: domain.AuditActionSystemError})
	require.NoError(t, err)
}

func TestAuditService_AppendStandalone_BeginFails(t *testing.T) {
	d := setupAuditService(t)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("pool closed"))

	err := d.svc.AppendStandalone(context.Background(), &domain.AuditLogEntry{Action: domain.AuditActionSystemError})
	assertAppError(t, err, "SYS_001")
}

func TestAuditService_ComplianceCheck(t *testing.T) {
	svc := setupAuditService(t).svc
	ts := at(10)

	full := &domain.AuditLogEntry{
		Action: domain.AuditActionRead, PerformedBy: "prov-1", Timestamp: ts,
		IPAddress: "10.0.0.1", Purpose: "treatment", ConsentValidated: true,
	}
	res := svc.ComplianceCheck(full, ts.Add(time.Hour))
	assert.True(t, res.Compliant)
	assert.Empty(t, res.MissingRequirements)

	res = svc.ComplianceCheck(full, ts.Add(domain.AuditRetentionPeriod+time.Hour))
	assert.False(t, res.Compliant)
	assert.Equal(t, []string{"retention_window"}, res.MissingRequirements)

	res = svc.ComplianceCheck(&domain.AuditLogEntry{Action: "BOGUS"}, ts)
	assert.False(t, res.Compliant)
	assert.Equal(t, []string{"purpose", "consent_validated", "performed_by", "timestamp", "action", "ip_address"}, res.MissingRequirements)
}

func TestAuditService_SanitizeForExport(t *testing.T) {
	svc := setupAuditService(t).svc
	ts := at(10)

	in := []domain.AuditLogEntry{{
		Action:    domain.AuditActionRead,
		Timestamp: ts,
		IPAddress: "203.0.113.77",
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
		Details:   map[string]any{"note": "patient mentioned divorce", "fields": 3},
	}}

	out := svc.SanitizeForExport(in)
	require.Len(t, out, 1)
	assert.Equal(t, "203.0.113.0", out[0].IPAddress)
	assert.NotContains(t, out[0].UserAgent, "121.0")
	assert.Equal(t, map[string]any{"action": "READ", "timestamp": ts.Format(time.RFC3339)}, out[0].Details)

	assert.Equal(t, "203.0.113.77", in[0].IPAddress, "input must not be mutated")
	assert.Contains(t, in[0].Details, "note")
}

func TestAuditService_SanitizeForExport_CopiesAreIndependent(t *testing.T) {
	svc := setupAuditService(t).svc
	in := []domain.AuditLogEntry{{
		Action:    domain.AuditActionEmergencyAccess,
		Timestamp: at(22),
		Risk:      domain.RiskAssessment{Score: 6, Level: domain.RiskLevelMedium, Factors: []string{"emergency_access", "off_hours"}},
		Details:   map[string]any{"reason": "trauma"},
	}}

	out := svc.SanitizeForExport(in)
	require.Len(t, out, 1)
	out[0].Risk.Factors[0] = "none"
	out[0].Details["action"] = "CREATE"
	out[0].PerformedBy = "intruder"

	assert.Equal(t, []string{"emergency_access", "off_hours"}, in[0].Risk.Factors)
	assert.Equal(t, map[string]any{"reason": "trauma"}, in[0].Details)
	assert.Empty(t, in[0].PerformedBy)
}

func TestAuditService_ListForRecord(t *testing.T) {
	d := setupAuditService(t)
	id := uuid.New()
	d.repo.EXPECT().ListByRecord(gomock.Any(), id, 50).Return([]domain.AuditLogEntry{{RecordID: id}}, nil)

	got, err := d.svc.ListForRecord(context.Background(), id, 50)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
