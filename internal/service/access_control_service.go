package service

import (
	"context"
	"fmt"
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

// Reasons attached to access decisions.
const (
	ReasonOwner             = "owner"
	ReasonGrant             = "grant"
	ReasonNoGrant           = "no grant"
	ReasonGrantExpired      = "grant expired"
	ReasonInsufficientLevel = "insufficient access level"
	ReasonReadOnly          = "grant is read-only"
)

// AccessControlServiceImpl implements ports.AccessControlService.
type AccessControlServiceImpl struct {
	records    ports.RecordRepository
	audit      ports.AuditService
	transactor ports.DBTransactor
	retry      RetryPolicy
	metrics    *metrics.Metrics
	now        func() time.Time
	log        zerolog.Logger
}

// NewAccessControlService creates a new access control engine.
func NewAccessControlService(
	records ports.RecordRepository,
	audit ports.AuditService,
	transactor ports.DBTransactor,
	retry RetryPolicy,
	m *metrics.Metrics,
	log zerolog.Logger,
) *AccessControlServiceImpl {
	return &AccessControlServiceImpl{
		records:    records,
		audit:      audit,
		transactor: transactor,
		retry:      retry,
		metrics:    m,
		now:        time.Now,
		log:        log,
	}
}

// Evaluate decides whether requesterID holds at least required on record at now.
// The owner always holds admin. Among matching grants an unrestricted one wins,
// then the one that expires last.
func (s *AccessControlServiceImpl) Evaluate(record *domain.HealthRecord, requesterID string, required domain.AccessLevel, now time.Time) domain.AccessDecision {
	d := evaluate(record, requesterID, required, now)
	s.metrics.ObserveAccessDecision(string(required), d.Granted)
	return d
}

func evaluate(record *domain.HealthRecord, requesterID string, required domain.AccessLevel, now time.Time) domain.AccessDecision {
	if record == nil || requesterID == "" {
		return domain.AccessDecision{Reason: ReasonNoGrant}
	}
	if requesterID == record.OwnerID {
		return domain.AccessDecision{Granted: true, Reason: ReasonOwner, Level: domain.AccessLevelAdmin}
	}

	var (
		best         *domain.AccessGrant
		sawExpired   bool
		sawActiveLow bool
	)
	for i := range record.Grants {
		g := &record.Grants[i]
		if g.GranteeID != requesterID {
			continue
		}
		if !g.IsActive(now) {
			sawExpired = true
			continue
		}
		if !g.Level.Satisfies(required) {
			sawActiveLow = true
			continue
		}
		if best == nil || preferGrant(g, best) {
			best = g
		}
	}

	switch {
	case best != nil:
		return domain.AccessDecision{
			Granted:      true,
			Reason:       ReasonGrant,
			Level:        best.Level,
			ExpiresAt:    best.ExpiresAt,
			Restrictions: best.Restrictions,
		}
	case sawActiveLow:
		return domain.AccessDecision{Reason: ReasonInsufficientLevel}
	case sawExpired:
		return domain.AccessDecision{Reason: ReasonGrantExpired}
	}
	return domain.AccessDecision{Reason: ReasonNoGrant}
}

func preferGrant(a, b *domain.AccessGrant) bool {
	aFree := a.Restrictions == domain.Restrictions{}
	bFree := b.Restrictions == domain.Restrictions{}
	if aFree != bFree {
		return aFree
	}
	switch {
	case a.ExpiresAt == nil:
		return b.ExpiresAt != nil
	case b.ExpiresAt == nil:
		return false
	}
	return a.ExpiresAt.After(*b.ExpiresAt)
}

// HasAccess loads the record and evaluates access at the current time.
func (s *AccessControlServiceImpl) HasAccess(ctx context.Context, recordID uuid.UUID, requesterID string, required domain.AccessLevel) (*domain.AccessDecision, error) {
	if !required.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown access level %q", required))
	}

	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get record: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotFound("record")
	}

	now := s.now().UTC()
	if record.IsExpired(now) {
		return nil, apperror.ErrDataExpired()
	}

	d := s.Evaluate(record, requesterID, required, now)
	return &d, nil
}

// GrantInTx appends a grant to a record already locked by tx and audits it
// in the same transaction. Grants for the same grantee that share the reason,
// or have expired, are superseded.
func (s *AccessControlServiceImpl) GrantInTx(
	ctx context.Context,
	tx pgx.Tx,
	record *domain.HealthRecord,
	grantor domain.Caller,
	req ports.GrantRequest,
	meta domain.RequestMeta,
) (*domain.AccessGrant, error) {
	if err := validateGrantRequest(req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	grant := domain.AccessGrant{
		ID:           uuid.New(),
		GranteeID:    req.GranteeID,
		Level:        req.Level,
		GrantedBy:    grantor.ID,
		GrantedAt:    now,
		Reason:       req.Reason,
		Consent:      req.Consent,
		Restrictions: req.Restrictions,
	}
	if req.Duration != nil {
		exp := now.Add(*req.Duration)
		grant.ExpiresAt = &exp
	}
	if grant.Consent.Validated && grant.Consent.ConsentedAt == nil {
		grant.Consent.ConsentedAt = &now
	}

	grants := make([]domain.AccessGrant, 0, len(record.Grants)+1)
	for _, g := range record.Grants {
		if g.GranteeID == req.GranteeID && (g.Reason == req.Reason || !g.IsActive(now)) {
			continue
		}
		grants = append(grants, g)
	}
	grants = append(grants, grant)

	if err := s.records.SaveGrants(ctx, tx, record.ID, grants); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save grants: %w", err))
	}
	record.Grants = grants

	details := map[string]any{
		"grant_id":   grant.ID.String(),
		"grantee_id": grant.GranteeID,
		"level":      string(grant.Level),
		"reason":     grant.Reason,
	}
	if grant.ExpiresAt != nil {
		details["expires_at"] = grant.ExpiresAt.Format(time.RFC3339)
	}
	if err := s.audit.Append(ctx, tx, newAuditEntry(record.ID, domain.AuditActionGrantAccess, grantor.ID, meta, details)); err != nil {
		return nil, err
	}

	return &grant, nil
}

func validateGrantRequest(req ports.GrantRequest) error {
	if !req.Level.IsValid() {
		return apperror.Validation(fmt.Sprintf("unknown access level %q", req.Level))
	}
	if req.GranteeID == "" {
		return apperror.Validation("grantee_id is required")
	}
	if req.Duration != nil && *req.Duration < 0 {
		return apperror.Validation("duration must be non-negative")
	}
	return nil
}

// Grant issues a grant on behalf of a caller holding admin on the record.
// Emergency grants are only issued through the emergency workflow.
func (s *AccessControlServiceImpl) Grant(ctx context.Context, grantor domain.Caller, req ports.GrantRequest, meta domain.RequestMeta) (grant *domain.AccessGrant, err error) {
	ctx, end := startOperation(ctx, s.metrics, "grant_access",
		attribute.String("record_id", req.RecordID.String()),
		attribute.String("level", string(req.Level)),
	)
	defer func() { end(err) }()

	if req.Level == domain.AccessLevelEmergency {
		return nil, apperror.Validation("emergency grants require the emergency access workflow")
	}

	err = runInTx(ctx, s.transactor, s.retry, "grant_access", func(tx pgx.Tx) error {
		record, err := s.lockRecord(ctx, tx, req.RecordID)
		if err != nil {
			return err
		}
		if err := s.requireAdmin(record, grantor); err != nil {
			return err
		}
		if req.GranteeID == record.OwnerID {
			return apperror.Validation("owner already holds admin access")
		}

		grant, err = s.GrantInTx(ctx, tx, record, grantor, req, meta)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("record_id", req.RecordID.String()).
		Str("grantee_id", req.GranteeID).
		Str("level", string(req.Level)).
		Msg("Access granted successfully")
	return grant, nil
}

// Revoke removes every grant held by granteeID on the record.
func (s *AccessControlServiceImpl) Revoke(ctx context.Context, caller domain.Caller, recordID uuid.UUID, granteeID string, meta domain.RequestMeta) (err error) {
	ctx, end := startOperation(ctx, s.metrics, "revoke_access", attribute.String("record_id", recordID.String()))
	defer func() { end(err) }()

	if granteeID == "" {
		return apperror.Validation("grantee_id is required")
	}

	err = runInTx(ctx, s.transactor, s.retry, "revoke_access", func(tx pgx.Tx) error {
		record, err := s.lockRecord(ctx, tx, recordID)
		if err != nil {
			return err
		}
		if err := s.requireAdmin(record, caller); err != nil {
			return err
		}
		if granteeID == record.OwnerID {
			return apperror.Validation("owner access cannot be revoked")
		}

		kept := make([]domain.AccessGrant, 0, len(record.Grants))
		removed := 0
		for _, g := range record.Grants {
			if g.GranteeID == granteeID {
				removed++
				continue
			}
			kept = append(kept, g)
		}
		if removed == 0 {
			return apperror.ErrNotFound("grant")
		}

		if err := s.records.SaveGrants(ctx, tx, record.ID, kept); err != nil {
			return apperror.InternalError(fmt.Errorf("save grants: %w", err))
		}
		return s.audit.Append(ctx, tx, newAuditEntry(record.ID, domain.AuditActionRevokeAccess, caller.ID, meta, map[string]any{
			"grantee_id": granteeID,
			"revoked":    removed,
		}))
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("record_id", recordID.String()).Str("grantee_id", granteeID).Msg("Access revoked successfully")
	return nil
}

// UpdateConsent replaces the consent metadata on the grantee's active grants.
func (s *AccessControlServiceImpl) UpdateConsent(
	ctx context.Context,
	caller domain.Caller,
	recordID uuid.UUID,
	granteeID string,
	consent domain.ConsentMeta,
	meta domain.RequestMeta,
) (updated *domain.AccessGrant, err error) {
	ctx, end := startOperation(ctx, s.metrics, "update_consent", attribute.String("record_id", recordID.String()))
	defer func() { end(err) }()

	if granteeID == "" {
		return nil, apperror.Validation("grantee_id is required")
	}

	err = runInTx(ctx, s.transactor, s.retry, "update_consent", func(tx pgx.Tx) error {
		record, err := s.lockRecord(ctx, tx, recordID)
		if err != nil {
			return err
		}
		if err := s.requireAdmin(record, caller); err != nil {
			return err
		}

		now := s.now().UTC()
		if consent.Validated && consent.ConsentedAt == nil {
			consent.ConsentedAt = &now
		}

		grants := make([]domain.AccessGrant, len(record.Grants))
		copy(grants, record.Grants)
		updated = nil
		for i := range grants {
			if grants[i].GranteeID != granteeID || !grants[i].IsActive(now) {
				continue
			}
			grants[i].Consent = consent
			g := grants[i]
			updated = &g
		}
		if updated == nil {
			return apperror.ErrNotFound("grant")
		}

		if err := s.records.SaveGrants(ctx, tx, record.ID, grants); err != nil {
			return apperror.InternalError(fmt.Errorf("save grants: %w", err))
		}
		return s.audit.Append(ctx, tx, newAuditEntry(record.ID, domain.AuditActionConsentUpdate, caller.ID, meta, map[string]any{
			"grantee_id": granteeID,
			"validated":  consent.Validated,
			"method":     consent.Method,
		}))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("record_id", recordID.String()).Str("grantee_id", granteeID).Msg("Consent updated successfully")
	return updated, nil
}

// lockRecord loads the record for update and rejects missing or retired records.
func (s *AccessControlServiceImpl) lockRecord(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.HealthRecord, error) {
	record, err := s.records.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock record: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotFound("record")
	}
	if record.IsExpired(s.now().UTC()) {
		return nil, apperror.ErrDataExpired()
	}
	return record, nil
}

func (s *AccessControlServiceImpl) requireAdmin(record *domain.HealthRecord, caller domain.Caller) error {
	if caller.IsAdmin() {
		return nil
	}
	d := s.Evaluate(record, caller.ID, domain.AccessLevelAdmin, s.now().UTC())
	if !d.Granted {
		return apperror.ErrAccessDenied(d.Reason)
	}
	if d.Restrictions.ReadOnly {
		return apperror.ErrAccessDenied(ReasonReadOnly)
	}
	return nil
}

// newAuditEntry builds an entry carrying the request's origin data.
func newAuditEntry(recordID uuid.UUID, action domain.AuditAction, performedBy string, meta domain.RequestMeta, details map[string]any) *domain.AuditLogEntry {
	return &domain.AuditLogEntry{
		RecordID:         recordID,
		Action:           action,
		PerformedBy:      performedBy,
		IPAddress:        meta.IPAddress,
		UserAgent:        meta.UserAgent,
		Purpose:          meta.Purpose,
		ConsentValidated: meta.ConsentValidated,
		Flags:            domain.RiskFlags{UnusualLocation: meta.UnusualLocation},
		Details:          details,
	}
}
