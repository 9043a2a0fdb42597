package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/internal/metrics"
	"health-record-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// EmergencyAccessDuration is fixed; it is not configurable per request.
	EmergencyAccessDuration = 30 * time.Minute

	defaultNotifyTimeout = 3 * time.Second

	emergencyConsentMethod = "emergency_override"
)

// EventEmergencyAccess is the owner event sent after an emergency grant.
const EventEmergencyAccess = "EMERGENCY_ACCESS"

// EmergencyServiceImpl implements ports.EmergencyService.
type EmergencyServiceImpl struct {
	records       ports.RecordRepository
	access        ports.AccessControlService
	audit         ports.AuditService
	notifier      ports.Notifier
	transactor    ports.DBTransactor
	retry         RetryPolicy
	notifyTimeout time.Duration
	metrics       *metrics.Metrics
	now           func() time.Time
	log           zerolog.Logger
}

// NewEmergencyService creates a new EmergencyServiceImpl. notifier may be nil.
func NewEmergencyService(
	records ports.RecordRepository,
	access ports.AccessControlService,
	audit ports.AuditService,
	notifier ports.Notifier,
	transactor ports.DBTransactor,
	retry RetryPolicy,
	notifyTimeout time.Duration,
	m *metrics.Metrics,
	log zerolog.Logger,
) *EmergencyServiceImpl {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &EmergencyServiceImpl{
		records:       records,
		access:        access,
		audit:         audit,
		notifier:      notifier,
		transactor:    transactor,
		retry:         retry,
		notifyTimeout: notifyTimeout,
		metrics:       m,
		now:           time.Now,
		log:           log,
	}
}

// RequestAccess grants a provider a 30-minute read-only, no-download grant
// and tells the owner. Notification failure never undoes the grant.
func (s *EmergencyServiceImpl) RequestAccess(
	ctx context.Context,
	provider domain.Caller,
	recordID uuid.UUID,
	reason string,
	meta domain.RequestMeta,
) (grant *domain.AccessGrant, err error) {
	ctx, end := startOperation(ctx, s.metrics, "emergency_access", attribute.String("record_id", recordID.String()))
	defer func() { end(err) }()

	if provider.Role != domain.RoleProvider {
		return nil, apperror.ErrAccessDenied("emergency access is restricted to providers")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.Validation("reason is required")
	}

	var ownerID string
	err = runInTx(ctx, s.transactor, s.retry, "emergency_access", func(tx pgx.Tx) error {
		record, err := s.records.GetByIDForUpdate(ctx, tx, recordID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock record: %w", err))
		}
		if record == nil {
			return apperror.ErrNotFound("record")
		}
		if record.IsExpired(s.now().UTC()) {
			return apperror.ErrDataExpired()
		}
		ownerID = record.OwnerID

		duration := EmergencyAccessDuration
		grant, err = s.access.GrantInTx(ctx, tx, record, provider, ports.GrantRequest{
			RecordID:  record.ID,
			GranteeID: provider.ID,
			Level:     domain.AccessLevelEmergency,
			Duration:  &duration,
			Reason:    reason,
			Consent: domain.ConsentMeta{
				Validated: false,
				Method:    emergencyConsentMethod,
			},
			Restrictions: domain.Restrictions{ReadOnly: true, NoDownload: true},
		}, meta)
		if err != nil {
			return err
		}

		entry := newAuditEntry(record.ID, domain.AuditActionEmergencyAccess, provider.ID, meta, map[string]any{
			"grant_id":   grant.ID.String(),
			"reason":     reason,
			"expires_at": grant.ExpiresAt.Format(time.RFC3339),
		})
		if entry.Purpose == "" {
			entry.Purpose = reason
		}
		return s.audit.Append(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, ownerID, ports.OwnerEvent{
		Type:       EventEmergencyAccess,
		RecordID:   recordID,
		ActorID:    provider.ID,
		Reason:     reason,
		ExpiresAt:  grant.ExpiresAt,
		OccurredAt: grant.GrantedAt,
	})

	s.log.Info().
		Str("record_id", recordID.String()).
		Str("provider_id", provider.ID).
		Time("expires_at", *grant.ExpiresAt).
		Msg("Emergency access granted successfully")
	return grant, nil
}

// notifyOwner delivers the event within notifyTimeout. Failures are logged and counted only.
func (s *EmergencyServiceImpl) notifyOwner(ctx context.Context, ownerID string, event ports.OwnerEvent) {
	if s.notifier == nil {
		return
	}
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	if err := s.notifier.NotifyOwner(nctx, ownerID, event); err != nil {
		s.metrics.IncrementNotificationFailures()
		s.log.Warn().Err(err).
			Str("record_id", event.RecordID.String()).
			Str("owner_id", ownerID).
			Msg("owner notification failed")
	}
}
