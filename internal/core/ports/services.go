package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"health-record-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- Infrastructure Ports ---

// KeyProvider supplies the process-wide record encryption key.
type KeyProvider interface {
	Key(ctx context.Context) ([]byte, error)
}

// EnvelopeService seals and opens protected fields with the process key.
type EnvelopeService interface {
	Encrypt(plaintext []byte) (domain.Envelope, error)
	Decrypt(env domain.Envelope) ([]byte, error)
}

// IntegrityService computes and verifies content checksums.
type IntegrityService interface {
	Checksum(content []byte) domain.Checksums
	Verify(content []byte, stored domain.Checksums) error
}

// SignedMessage is the part of an outbound owner notification covered by
// its signature.
type SignedMessage struct {
	Method    string
	Path      string
	Timestamp int64
	Nonce     string
	Body      []byte
}

// NotificationSigner signs outbound owner notifications.
type NotificationSigner interface {
	Sign(secret string, msg SignedMessage) string
}

// TokenService issues and validates identity tokens.
type TokenService interface {
	Generate(caller domain.Caller) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID string
	Role   domain.Role
}

// PHIDetector tags fields that look like protected health information.
type PHIDetector interface {
	Detect(fields map[string]string) []string
}

// BlobStore is the content-addressed attachment store.
type BlobStore interface {
	Store(ctx context.Context, blob []byte) (string, error)
	Retrieve(ctx context.Context, contentID string) ([]byte, error)
}

// OwnerEvent is what the owner of a record is told about.
type OwnerEvent struct {
	Type        string            `json:"type"`
	RecordID    uuid.UUID         `json:"record_id"`
	ActorID     string            `json:"actor_id"`
	Reason      string            `json:"reason,omitempty"`
	ExpiresAt   *time.Time        `json:"expires_at,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

// Notifier delivers owner notifications. Delivery is best-effort.
type Notifier interface {
	NotifyOwner(ctx context.Context, ownerID string, event OwnerEvent) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// AttemptCounter counts denied access attempts inside a sliding TTL window.
type AttemptCounter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Count(ctx context.Context, key string) (int64, error)
}

// PurchaseReplayCache is the fast-path check for already-applied transaction hashes.
type PurchaseReplayCache interface {
	Seen(ctx context.Context, recordID uuid.UUID, txHash string) (bool, error)
	Remember(ctx context.Context, recordID uuid.UUID, txHash string, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// AuditService appends and inspects compliance log entries.
type AuditService interface {
	// Append writes entry inside tx so it commits or rolls back with the mutation it documents.
	Append(ctx context.Context, tx pgx.Tx, entry *domain.AuditLogEntry) error
	// AppendStandalone writes entry in its own unit of work.
	AppendStandalone(ctx context.Context, entry *domain.AuditLogEntry) error
	ListForRecord(ctx context.Context, recordID uuid.UUID, limit int) ([]domain.AuditLogEntry, error)
	RiskScore(entry *domain.AuditLogEntry) domain.RiskAssessment
	ComplianceCheck(entry *domain.AuditLogEntry, now time.Time) domain.ComplianceResult
	SanitizeForExport(entries []domain.AuditLogEntry) []domain.AuditLogEntry
}

// GrantRequest holds validated input for issuing a grant.
// A nil Duration means the grant is permanent.
type GrantRequest struct {
	RecordID     uuid.UUID
	GranteeID    string
	Level        domain.AccessLevel
	Duration     *time.Duration
	Reason       string
	Consent      domain.ConsentMeta
	Restrictions domain.Restrictions
}

// AccessControlService issues and evaluates grants.
type AccessControlService interface {
	Evaluate(record *domain.HealthRecord, requesterID string, required domain.AccessLevel, now time.Time) domain.AccessDecision
	HasAccess(ctx context.Context, recordID uuid.UUID, requesterID string, required domain.AccessLevel) (*domain.AccessDecision, error)
	// GrantInTx adds the grant to a record already locked by tx and audits it.
	GrantInTx(ctx context.Context, tx pgx.Tx, record *domain.HealthRecord, grantor domain.Caller, req GrantRequest, meta domain.RequestMeta) (*domain.AccessGrant, error)
	Grant(ctx context.Context, grantor domain.Caller, req GrantRequest, meta domain.RequestMeta) (*domain.AccessGrant, error)
	Revoke(ctx context.Context, caller domain.Caller, recordID uuid.UUID, granteeID string, meta domain.RequestMeta) error
	UpdateConsent(ctx context.Context, caller domain.Caller, recordID uuid.UUID, granteeID string, consent domain.ConsentMeta, meta domain.RequestMeta) (*domain.AccessGrant, error)
}

// UploadRequest holds validated input for a record upload.
type UploadRequest struct {
	Title           string
	Description     string
	Category        domain.RecordCategory
	Price           int64
	FileType        string
	Fields          map[string]string // protected section
	Attachment      []byte
	Available       bool
	RetentionPeriod time.Duration
}

// RecordService orchestrates the record lifecycle.
type RecordService interface {
	Upload(ctx context.Context, owner domain.Caller, req UploadRequest, meta domain.RequestMeta) (*domain.HealthRecord, error)
	Read(ctx context.Context, requester domain.Caller, recordID uuid.UUID, meta domain.RequestMeta) (*domain.DecryptedView, error)
	VerifyIntegrity(ctx context.Context, caller domain.Caller, recordID uuid.UUID, meta domain.RequestMeta) (*domain.IntegrityResult, error)
	ViewAccessLog(ctx context.Context, caller domain.Caller, recordID uuid.UUID, limit int, meta domain.RequestMeta) ([]domain.AuditLogEntry, error)
}

// PurchaseResult is returned by a successful purchase.
type PurchaseResult struct {
	Transaction domain.Transaction      `json:"transaction"`
	Grant       domain.AccessGrant      `json:"grant"`
	Statistics  domain.RecordStatistics `json:"statistics"`
}

// PurchaseService ties confirmed chain receipts to read grants.
type PurchaseService interface {
	Purchase(ctx context.Context, buyer domain.Caller, recordID uuid.UUID, receipt domain.ChainReceipt, meta domain.RequestMeta) (*PurchaseResult, error)
}

// EmergencyService issues short-lived restricted grants to providers.
type EmergencyService interface {
	RequestAccess(ctx context.Context, provider domain.Caller, recordID uuid.UUID, reason string, meta domain.RequestMeta) (*domain.AccessGrant, error)
}

// StatsService exposes per-user statistics.
type StatsService interface {
	GetUserStats(ctx context.Context, userID string) (*domain.UserStatistics, error)
}
