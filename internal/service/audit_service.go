package service

import (
	"context"
	"fmt"
	"time"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/internal/metrics"
	"health-record-vault/pkg/apperror"
	"health-record-vault/pkg/privacy"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Risk factor weights. Levels: score > 7 high, score > 4 medium.
const (
	riskWeightEmergency       = 4
	riskWeightOffHours        = 2
	riskWeightRepeatedAttempt = 3
	riskWeightUnusualLocation = 3

	riskHighThreshold   = 7
	riskMediumThreshold = 4
)

// Risk factor names as stored on entries.
const (
	RiskFactorEmergency       = "emergency_access"
	RiskFactorOffHours        = "off_hours"
	RiskFactorRepeatedAttempt = "repeated_attempts"
	RiskFactorUnusualLocation = "unusual_location"
)

// AuditPolicy configures retention and the business-hours window used for risk scoring.
type AuditPolicy struct {
	Retention         time.Duration
	BusinessStartHour int
	BusinessEndHour   int
	Location          *time.Location
}

// DefaultAuditPolicy keeps entries seven years and treats 06:00-18:00 UTC as business hours.
func DefaultAuditPolicy() AuditPolicy {
	return AuditPolicy{
		Retention:         domain.AuditRetentionPeriod,
		BusinessStartHour: 6,
		BusinessEndHour:   18,
		Location:          time.UTC,
	}
}

// AuditServiceImpl implements ports.AuditService on an append-only repository.
type AuditServiceImpl struct {
	repo       ports.AuditRepository
	transactor ports.DBTransactor
	policy     AuditPolicy
	metrics    *metrics.Metrics
	now        func() time.Time
	log        zerolog.Logger
}

// NewAuditService creates a new audit service.
func NewAuditService(
	repo ports.AuditRepository,
	transactor ports.DBTransactor,
	policy AuditPolicy,
	m *metrics.Metrics,
	log zerolog.Logger,
) *AuditServiceImpl {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	if policy.Retention <= 0 {
		policy.Retention = domain.AuditRetentionPeriod
	}
	return &AuditServiceImpl{
		repo:       repo,
		transactor: transactor,
		policy:     policy,
		metrics:    m,
		now:        time.Now,
		log:        log,
	}
}

// Append stamps and scores entry, then writes it inside tx.
func (s *AuditServiceImpl) Append(ctx context.Context, tx pgx.Tx, entry *domain.AuditLogEntry) error {
	if !entry.Action.IsValid() {
		return apperror.Validation(fmt.Sprintf("unknown audit action %q", entry.Action))
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	entry.RetainUntil = entry.Timestamp.Add(s.policy.Retention)
	entry.Risk = s.RiskScore(entry)

	if err := s.repo.Append(ctx, tx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("append audit entry: %w", err))
	}

	s.metrics.IncrementAuditEntries(string(entry.Action), string(entry.Risk.Level))
	s.log.Info().
		Str("audit_id", entry.ID.String()).
		Str("record_id", entry.RecordID.String()).
		Str("action", string(entry.Action)).
		Str("performed_by", entry.PerformedBy).
		Int("risk_score", entry.Risk.Score).
		Msg("audit")
	return nil
}

// AppendStandalone writes entry in its own transaction. Used when the
// operation it documents has already been rolled back.
func (s *AuditServiceImpl) AppendStandalone(ctx context.Context, entry *domain.AuditLogEntry) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.Append(ctx, dbTx, entry); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// ListForRecord returns entries for a record in commit order.
func (s *AuditServiceImpl) ListForRecord(ctx context.Context, recordID uuid.UUID, limit int) ([]domain.AuditLogEntry, error) {
	entries, err := s.repo.ListByRecord(ctx, recordID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list audit entries: %w", err))
	}
	return entries, nil
}

// RiskScore sums the weighted risk factors present on entry.
func (s *AuditServiceImpl) RiskScore(entry *domain.AuditLogEntry) domain.RiskAssessment {
	ra := domain.RiskAssessment{Factors: []string{}}

	if entry.Action == domain.AuditActionEmergencyAccess {
		ra.Score += riskWeightEmergency
		ra.Factors = append(ra.Factors, RiskFactorEmergency)
	}
	if s.isOffHours(entry.Timestamp) {
		ra.Score += riskWeightOffHours
		ra.Factors = append(ra.Factors, RiskFactorOffHours)
	}
	if entry.Flags.RepeatedAttempt {
		ra.Score += riskWeightRepeatedAttempt
		ra.Factors = append(ra.Factors, RiskFactorRepeatedAttempt)
	}
	if entry.Flags.UnusualLocation {
		ra.Score += riskWeightUnusualLocation
		ra.Factors = append(ra.Factors, RiskFactorUnusualLocation)
	}

	switch {
	case ra.Score > riskHighThreshold:
		ra.Level = domain.RiskLevelHigh
	case ra.Score > riskMediumThreshold:
		ra.Level = domain.RiskLevelMedium
	default:
		ra.Level = domain.RiskLevelLow
	}
	return ra
}

func (s *AuditServiceImpl) isOffHours(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	local := ts.In(s.policy.Location)
	h := local.Hour()
	switch {
	case h < s.policy.BusinessStartHour || h > s.policy.BusinessEndHour:
		return true
	case h == s.policy.BusinessEndHour:
		return local.Minute() > 0 || local.Second() > 0 || local.Nanosecond() > 0
	}
	return false
}

// ComplianceCheck reports every requirement entry fails to meet at now.
func (s *AuditServiceImpl) ComplianceCheck(entry *domain.AuditLogEntry, now time.Time) domain.ComplianceResult {
	missing := []string{}

	if entry.Purpose == "" {
		missing = append(missing, "purpose")
	}
	if !entry.ConsentValidated {
		missing = append(missing, "consent_validated")
	}
	if entry.PerformedBy == "" {
		missing = append(missing, "performed_by")
	}
	if entry.Timestamp.IsZero() {
		missing = append(missing, "timestamp")
	} else if now.After(entry.Timestamp.Add(s.policy.Retention)) {
		missing = append(missing, "retention_window")
	}
	if !entry.Action.IsValid() {
		missing = append(missing, "action")
	}
	if entry.IPAddress == "" {
		missing = append(missing, "ip_address")
	}

	return domain.ComplianceResult{
		Compliant:           len(missing) == 0,
		MissingRequirements: missing,
	}
}

// SanitizeForExport returns copies with coarse origin data and details
// reduced to action and timestamp. The input is not modified.
func (s *AuditServiceImpl) SanitizeForExport(entries []domain.AuditLogEntry) []domain.AuditLogEntry {
	out := make([]domain.AuditLogEntry, len(entries))
	for i, e := range entries {
		e.Risk.Factors = append([]string(nil), e.Risk.Factors...)
		e.IPAddress = privacy.AnonymizeIP(e.IPAddress)
		e.UserAgent = privacy.CoarsenUserAgent(e.UserAgent)
		e.Details = map[string]any{
			"action":    string(e.Action),
			"timestamp": e.Timestamp.UTC().Format(time.RFC3339),
		}
		out[i] = e
	}
	return out
}
