package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReceiptStatusSuccess marks a mined, successful chain transaction.
const ReceiptStatusSuccess = "success"

// ChainReceipt is a confirmed receipt supplied by the blockchain collaborator.
type ChainReceipt struct {
	TransactionHash string `json:"transaction_hash"`
	BlockNumber     uint64 `json:"block_number"`
	Confirmations   uint64 `json:"confirmations"`
	Status          string `json:"status"`
}

// Transaction is an immutable purchase entry embedded in a record.
// TransactionHash is unique per record.
type Transaction struct {
	ID              uuid.UUID `json:"id"`
	RecordID        uuid.UUID `json:"record_id"`
	BuyerID         string    `json:"buyer_id"`
	SellerID        string    `json:"seller_id"`
	Price           int64     `json:"price"`
	TransactionHash string    `json:"transaction_hash"`
	BlockNumber     uint64    `json:"block_number"`
	Confirmations   uint64    `json:"confirmations"`
	Timestamp       time.Time `json:"timestamp"`
}

// NormalizeTxHash makes hash comparisons case-insensitive.
func NormalizeTxHash(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// UserStatistics aggregates a user's activity across records.
type UserStatistics struct {
	UserID           string    `json:"user_id"`
	RecordsUploaded  int64     `json:"records_uploaded"`
	RecordsPurchased int64     `json:"records_purchased"`
	TotalSpent       int64     `json:"total_spent"`
	TotalEarned      int64     `json:"total_earned"`
	UpdatedAt        time.Time `json:"updated_at"`
}
