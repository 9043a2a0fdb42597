package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultRetentionPeriod is how long a record is preserved after upload.
const DefaultRetentionPeriod = 7 * 365 * 24 * time.Hour

// RecordCategory classifies the clinical content of a record.
type RecordCategory string

const (
	CategoryLabResult    RecordCategory = "lab_result"
	CategoryImaging      RecordCategory = "imaging"
	CategoryPrescription RecordCategory = "prescription"
	CategoryClinicalNote RecordCategory = "clinical_note"
	CategoryGenomic      RecordCategory = "genomic"
	CategoryOther        RecordCategory = "other"
)

// IsValid reports whether c is a known category.
func (c RecordCategory) IsValid() bool {
	switch c {
	case CategoryLabResult, CategoryImaging, CategoryPrescription,
		CategoryClinicalNote, CategoryGenomic, CategoryOther:
		return true
	}
	return false
}

// RecordState is the lifecycle state derived from a record's data.
type RecordState string

const (
	RecordStateActive      RecordState = "ACTIVE"
	RecordStatePurchasable RecordState = "PURCHASABLE"
	RecordStatePurchased   RecordState = "PURCHASED"
	RecordStateExpired     RecordState = "EXPIRED"
)

// Checksums holds the digests of a record's plaintext content.
type Checksums struct {
	SHA256  string `json:"sha256"`
	BLAKE2b string `json:"blake2b"`
}

// RecordMetadata describes the stored content without revealing it.
type RecordMetadata struct {
	FileType        string        `json:"file_type"`
	Size            int64         `json:"size"`
	Checksums       Checksums     `json:"checksums"`
	UploadDate      time.Time     `json:"upload_date"`
	RetentionPeriod time.Duration `json:"retention_period"`
	ContentID       string        `json:"content_id,omitempty"` // blob holding the encrypted attachment
}

// RecordStatus flags.
type RecordStatus struct {
	IsVerified  bool `json:"is_verified"`
	IsAvailable bool `json:"is_available"`
}

// RecordStatistics are mutated by reads and purchases.
type RecordStatistics struct {
	ViewCount      int64      `json:"view_count"`
	PurchaseCount  int64      `json:"purchase_count"`
	TotalRevenue   int64      `json:"total_revenue"`
	LastAccessDate *time.Time `json:"last_access_date,omitempty"`
}

// HealthRecord is an encrypted health record with its embedded grants
// and purchase history.
type HealthRecord struct {
	ID           uuid.UUID        `json:"id"`
	OwnerID      string           `json:"owner_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Category     RecordCategory   `json:"category"`
	Price        int64            `json:"price"` // In smallest unit
	Protected    Envelope         `json:"-"`     // Never plaintext at rest
	Metadata     RecordMetadata   `json:"metadata"`
	Status       RecordStatus     `json:"status"`
	Statistics   RecordStatistics `json:"statistics"`
	Grants       []AccessGrant    `json:"grants"`
	Transactions []Transaction    `json:"transactions"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// RetainUntil returns the end of the retention window.
func (r *HealthRecord) RetainUntil() time.Time {
	period := r.Metadata.RetentionPeriod
	if period <= 0 {
		period = DefaultRetentionPeriod
	}
	return r.Metadata.UploadDate.Add(period)
}

// IsExpired returns true once the retention period has elapsed.
func (r *HealthRecord) IsExpired(now time.Time) bool {
	return now.After(r.RetainUntil())
}

// IsPurchasable returns true if the record can currently be bought.
func (r *HealthRecord) IsPurchasable(now time.Time) bool {
	return r.Status.IsAvailable && r.Price > 0 && !r.IsExpired(now)
}

// StateAt derives the lifecycle state at now.
func (r *HealthRecord) StateAt(now time.Time) RecordState {
	switch {
	case r.IsExpired(now):
		return RecordStateExpired
	case r.IsPurchasable(now):
		return RecordStatePurchasable
	case r.Statistics.PurchaseCount > 0:
		return RecordStatePurchased
	}
	return RecordStateActive
}

// HasTransaction reports whether txHash is already part of the purchase history.
func (r *HealthRecord) HasTransaction(txHash string) bool {
	h := NormalizeTxHash(txHash)
	for _, t := range r.Transactions {
		if t.TransactionHash == h {
			return true
		}
	}
	return false
}

// RecordContent is the plaintext protected section of a record.
type RecordContent struct {
	Fields     map[string]string `json:"fields"`
	Attachment []byte            `json:"attachment,omitempty"`
}

// Canonical returns the deterministic byte form used for checksums.
// encoding/json sorts map keys, so equal content always hashes equally.
func (c RecordContent) Canonical() ([]byte, error) {
	return json.Marshal(c)
}

// DecryptedView is what an authorized reader receives.
type DecryptedView struct {
	RecordID     uuid.UUID         `json:"record_id"`
	OwnerID      string            `json:"owner_id"`
	Title        string            `json:"title"`
	Category     RecordCategory    `json:"category"`
	Fields       map[string]string `json:"fields"`
	Attachment   []byte            `json:"attachment,omitempty"`
	Metadata     RecordMetadata    `json:"metadata"`
	AccessLevel  AccessLevel       `json:"access_level"`
	Restrictions Restrictions      `json:"restrictions"`
}

// IntegrityResult is the outcome of an on-demand integrity check.
type IntegrityResult struct {
	RecordID          uuid.UUID `json:"record_id"`
	IsValid           bool      `json:"is_valid"`
	MismatchAlgorithm string    `json:"mismatch_algorithm,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	CheckedAt         time.Time `json:"checked_at"`
}
