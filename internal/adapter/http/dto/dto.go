package dto

import (
	"time"

	"health-record-vault/internal/core/domain"
)

// UploadRecordRequest is the request body for record upload.
// Attachment is base64 encoded by encoding/json.
type UploadRecordRequest struct {
	Title           string            `json:"title" binding:"required,max=200"`
	Description     string            `json:"description" binding:"max=2000"`
	Category        string            `json:"category" binding:"required,record_category"`
	Price           int64             `json:"price" binding:"gte=0"`
	FileType        string            `json:"file_type" binding:"omitempty,max=100"`
	Fields          map[string]string `json:"fields"`
	Attachment      []byte            `json:"attachment,omitempty"`
	Available       bool              `json:"available"`
	RetentionPeriod string            `json:"retention_period,omitempty" binding:"omitempty,duration"`
}

// RecordResponse is the public view of a stored record. It never carries
// the protected section.
type RecordResponse struct {
	ID          string                  `json:"id"`
	OwnerID     string                  `json:"owner_id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Category    string                  `json:"category"`
	Price       int64                   `json:"price"`
	State       string                  `json:"state"`
	Metadata    domain.RecordMetadata   `json:"metadata"`
	Status      domain.RecordStatus     `json:"status"`
	Statistics  domain.RecordStatistics `json:"statistics"`
	CreatedAt   string                  `json:"created_at"`
}

// ConsentRequest carries the data subject's consent for a grant.
type ConsentRequest struct {
	Validated bool   `json:"validated"`
	Method    string `json:"method" binding:"omitempty,max=50"`
	Reference string `json:"reference" binding:"omitempty,max=200"`
}

// GrantAccessRequest is the request body for granting access.
// An empty Duration issues a permanent grant.
type GrantAccessRequest struct {
	GranteeID  string         `json:"grantee_id" binding:"required,safe_id"`
	Level      string         `json:"level" binding:"required,access_level"`
	Duration   string         `json:"duration,omitempty" binding:"omitempty,duration"`
	Reason     string         `json:"reason" binding:"required,max=500"`
	Consent    ConsentRequest `json:"consent"`
	ReadOnly   bool           `json:"read_only"`
	NoDownload bool           `json:"no_download"`
}

// UpdateConsentRequest is the request body for replacing a grant's consent.
type UpdateConsentRequest struct {
	Consent ConsentRequest `json:"consent"`
}

// PurchaseRequest carries the confirmed chain receipt for a purchase.
type PurchaseRequest struct {
	TransactionHash string `json:"transaction_hash" binding:"required,tx_hash"`
	BlockNumber     uint64 `json:"block_number" binding:"required,gt=0"`
	Confirmations   uint64 `json:"confirmations"`
	Status          string `json:"status" binding:"required"`
}

// EmergencyAccessRequest is the request body for emergency access.
type EmergencyAccessRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// AuditLogResponse wraps an access log listing.
type AuditLogResponse struct {
	RecordID string                 `json:"record_id"`
	Entries  []domain.AuditLogEntry `json:"entries"`
	Count    int                    `json:"count"`
}

// TokenRequest asks the identity collaborator for a signed token.
// Only served when the server runs in debug mode.
type TokenRequest struct {
	UserID string `json:"user_id" binding:"required,safe_id"`
	Role   string `json:"role" binding:"required,oneof=patient provider researcher admin"`
}

// TokenResponse is the response body for an issued token.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ToRecordResponse converts a domain record to its public view.
func ToRecordResponse(r *domain.HealthRecord, now time.Time) RecordResponse {
	return RecordResponse{
		ID:          r.ID.String(),
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Category:    string(r.Category),
		Price:       r.Price,
		State:       string(r.StateAt(now)),
		Metadata:    r.Metadata,
		Status:      r.Status,
		Statistics:  r.Statistics,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}
