package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRetentionPeriod is how long audit entries are kept, independent of
// the record they describe.
const AuditRetentionPeriod = 7 * 365 * 24 * time.Hour

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreate          AuditAction = "CREATE"
	AuditActionRead            AuditAction = "READ"
	AuditActionPurchase        AuditAction = "PURCHASE"
	AuditActionGrantAccess     AuditAction = "GRANT_ACCESS"
	AuditActionRevokeAccess    AuditAction = "REVOKE_ACCESS"
	AuditActionEmergencyAccess AuditAction = "EMERGENCY_ACCESS"
	AuditActionVerifyIntegrity AuditAction = "VERIFY_INTEGRITY"
	AuditActionConsentUpdate   AuditAction = "CONSENT_UPDATE"
	AuditActionViewAuditLog    AuditAction = "VIEW_AUDIT_LOG"
	AuditActionSystemError     AuditAction = "SYSTEM_ERROR"
)

// IsValid reports whether a is part of the closed action set.
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionRead, AuditActionPurchase,
		AuditActionGrantAccess, AuditActionRevokeAccess, AuditActionEmergencyAccess,
		AuditActionVerifyIntegrity, AuditActionConsentUpdate, AuditActionViewAuditLog,
		AuditActionSystemError:
		return true
	}
	return false
}

// RiskLevel buckets a risk score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RiskFlags are contextual signals attached by the caller.
type RiskFlags struct {
	RepeatedAttempt bool `json:"repeated_attempt"`
	UnusualLocation bool `json:"unusual_location"`
}

// RiskAssessment is the additive risk score of an audit entry.
type RiskAssessment struct {
	Score   int       `json:"score"`
	Level   RiskLevel `json:"level"`
	Factors []string  `json:"factors"`
}

// AuditLogEntry is immutable once appended.
type AuditLogEntry struct {
	ID               uuid.UUID      `json:"id"`
	RecordID         uuid.UUID      `json:"record_id"`
	Action           AuditAction    `json:"action"`
	PerformedBy      string         `json:"performed_by"`
	Timestamp        time.Time      `json:"timestamp"`
	IPAddress        string         `json:"ip_address"`
	UserAgent        string         `json:"user_agent,omitempty"`
	Purpose          string         `json:"purpose,omitempty"`
	ConsentValidated bool           `json:"consent_validated"`
	Flags            RiskFlags      `json:"flags"`
	Risk             RiskAssessment `json:"risk"`
	Details          map[string]any `json:"details,omitempty"`
	RetainUntil      time.Time      `json:"retain_until"`
}

// ComplianceResult lists what an entry is missing to be compliant.
type ComplianceResult struct {
	Compliant           bool     `json:"compliant"`
	MissingRequirements []string `json:"missing_requirements"`
}
