package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/internal/core/ports/mocks"
	"health-record-vault/internal/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type emergencyTestDeps struct {
	svc        *EmergencyServiceImpl
	records    *mocks.MockRecordRepository
	audit      *mocks.MockAuditService
	notifier   *mocks.MockNotifier
	transactor *mocks.MockDBTransactor
	metrics    *metrics.Metrics
}

func setupEmergencyService(t *testing.T) *emergencyTestDeps {
	ctrl := gomock.NewController(t)
	d := &emergencyTestDeps{
		records:    mocks.NewMockRecordRepository(ctrl),
		audit:      mocks.NewMockAuditService(ctrl),
		notifier:   mocks.NewMockNotifier(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		metrics:    metrics.New(prometheus.NewRegistry()),
	}
	access := NewAccessControlService(d.records, d.audit, d.transactor, fastRetry(), nil, newTestLogger())
	access.now = func() time.Time { return testNow }

	d.svc = NewEmergencyService(d.records, access, d.audit, d.notifier, d.transactor, fastRetry(), 50*time.Millisecond, d.metrics, newTestLogger())
	d.svc.now = func() time.Time { return testNow }
	return d
}

var testProvider = domain.Caller{ID: "prov-7", Role: domain.RoleProvider}

func expectEmergencyGrant(d *emergencyTestDeps, record *domain.HealthRecord) *[]domain.AuditLogEntry {
	tx := &mockTx{}
	entries := &[]domain.AuditLogEntry{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
	d.records.EXPECT().SaveGrants(gomock.Any(), tx, record.ID, gomock.Any()).Return(nil)
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, e *domain.AuditLogEntry) error {
			*entries = append(*entries, *e)
			return nil
		}).Times(2)
	return entries
}

func TestEmergencyService_GrantShape(t *testing.T) {
	d := setupEmergencyService(t)
	record := testRecord("pat-1")
	entries := expectEmergencyGrant(d, record)

	var notified ports.OwnerEvent
	d.notifier.EXPECT().NotifyOwner(gomock.Any(), "pat-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, evt ports.OwnerEvent) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "notification must be time-bounded")
			notified = evt
			return nil
		})

	grant, err := d.svc.RequestAccess(context.Background(), testProvider, record.ID, "trauma", domain.RequestMeta{})
	require.NoError(t, err)

	assert.Equal(t, domain.AccessLevelEmergency, grant.Level)
	assert.Equal(t, 30*time.Minute, grant.ExpiresAt.Sub(grant.GrantedAt))
	assert.True(t, grant.Restrictions.ReadOnly)
	assert.True(t, grant.Restrictions.NoDownload)
	assert.Equal(t, emergencyConsentMethod, grant.Consent.Method)

	require.Len(t, *entries, 2)
	assert.Equal(t, domain.AuditActionEmergencyAccess, (*entries)[1].Action)
	assert.Equal(t, "trauma", (*entries)[1].Purpose)

	assert.Equal(t, EventEmergencyAccess, notified.Type)
	assert.Equal(t, "prov-7", notified.ActorID)
	assert.Equal(t, grant.ExpiresAt, notified.ExpiresAt)
}

func TestEmergencyService_NotificationFailureKeepsGrant(t *testing.T) {
	d := setupEmergencyService(t)
	record := testRecord("pat-1")
	expectEmergencyGrant(d, record)

	d.notifier.EXPECT().NotifyOwner(gomock.Any(), "pat-1", gomock.Any()).Return(errors.New("smtp timeout"))

	grant, err := d.svc.RequestAccess(context.Background(), testProvider, record.ID, "trauma", domain.RequestMeta{})
	require.NoError(t, err)
	assert.NotNil(t, grant)
	assert.Equal(t, 1.0, testutil.ToFloat64(d.metrics.NotificationFailures))
}

func TestEmergencyService_SlowNotifierIsBounded(t *testing.T) {
	d := setupEmergencyService(t)
	record := testRecord("pat-1")
	expectEmergencyGrant(d, record)

	d.notifier.EXPECT().NotifyOwner(gomock.Any(), "pat-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ports.OwnerEvent) error {
			<-ctx.Done()
			return ctx.Err()
		})

	start := time.Now()
	_, err := d.svc.RequestAccess(context.Background(), testProvider, record.ID, "trauma", domain.RequestMeta{})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEmergencyService_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("non-provider", func(t *testing.T) {
		d := setupEmergencyService(t)
		_, err := d.svc.RequestAccess(ctx, domain.Caller{ID: "res-9", Role: domain.RoleResearcher}, uuid.New(), "trauma", domain.RequestMeta{})
		assertAppError(t, err, "ACC_001")
	})

	t.Run("missing reason", func(t *testing.T) {
		d := setupEmergencyService(t)
		_, err := d.svc.RequestAccess(ctx, testProvider, uuid.New(), "   ", domain.RequestMeta{})
		assertAppError(t, err, "VAL_001")
	})

	t.Run("record not found", func(t *testing.T) {
		d := setupEmergencyService(t)
		id := uuid.New()
		d.transactor.EXPECT().Begin(gomock.Any()).Return(&mockTx{}, nil)
		d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, nil)

		_, err := d.svc.RequestAccess(ctx, testProvider, id, "trauma", domain.RequestMeta{})
		assertAppError(t, err, "REC_001")
	})

	t.Run("audit failure rolls back and skips notification", func(t *testing.T) {
		d := setupEmergencyService(t)
		record := testRecord("pat-1")
		d.transactor.EXPECT().Begin(gomock.Any()).Return(&mockTx{}, nil)
		d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).Return(record, nil)
		d.records.EXPECT().SaveGrants(gomock.Any(), gomock.Any(), record.ID, gomock.Any()).Return(nil)
		d.audit.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("audit store down"))

		_, err := d.svc.RequestAccess(ctx, testProvider, record.ID, "trauma", domain.RequestMeta{})
		assert.Error(t, err)
	})
}
