package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
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
	// DefaultPurchaseAccess is how long a buyer may read a purchased record.
	DefaultPurchaseAccess = 365 * 24 * time.Hour

	purchaseReplayTTL = 24 * time.Hour
	purchaseReason    = "purchase"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-f]+$`)

// PurchasePolicy holds the purchase constants.
type PurchasePolicy struct {
	AccessDuration   time.Duration
	MinConfirmations uint64
}

// PurchaseServiceImpl implements ports.PurchaseService.
type PurchaseServiceImpl struct {
	records    ports.RecordRepository
	stats      ports.UserStatsRepository
	audit      ports.AuditService
	access     ports.AccessControlService
	replay     ports.PurchaseReplayCache
	transactor ports.DBTransactor
	retry      RetryPolicy
	policy     PurchasePolicy
	metrics    *metrics.Metrics
	now        func() time.Time
	log        zerolog.Logger
}

// NewPurchaseService creates a new PurchaseServiceImpl. replay may be nil.
func NewPurchaseService(
	records ports.RecordRepository,
	stats ports.UserStatsRepository,
	audit ports.AuditService,
	access ports.AccessControlService,
	replay ports.PurchaseReplayCache,
	transactor ports.DBTransactor,
	retry RetryPolicy,
	policy PurchasePolicy,
	m *metrics.Metrics,
	log zerolog.Logger,
) *PurchaseServiceImpl {
	if policy.AccessDuration <= 0 {
		policy.AccessDuration = DefaultPurchaseAccess
	}
	if policy.MinConfirmations == 0 {
		policy.MinConfirmations = 1
	}
	return &PurchaseServiceImpl{
		records:    records,
		stats:      stats,
		audit:      audit,
		access:     access,
		replay:     replay,
		transactor: transactor,
		retry:      retry,
		policy:     policy,
		metrics:    m,
		now:        time.Now,
		log:        log,
	}
}

// Purchase applies a confirmed chain receipt to a record exactly once: the
// transaction, the buyer's read grant, both statistics and the PURCHASE entry
// commit together or not at all.
func (s *PurchaseServiceImpl) Purchase(
	ctx context.Context,
	buyer domain.Caller,
	recordID uuid.UUID,
	receipt domain.ChainReceipt,
	meta domain.RequestMeta,
) (result *ports.PurchaseResult, err error) {
	ctx, end := startOperation(ctx, s.metrics, "purchase_record", attribute.String("record_id", recordID.String()))
	defer func() { end(err) }()

	txHash := domain.NormalizeTxHash(receipt.TransactionHash)
	if err := s.validateReceipt(buyer, txHash, receipt); err != nil {
		return nil, err
	}

	// Layer 1: Redis replay check
	if s.replay != nil {
		seen, err := s.replay.Seen(ctx, recordID, txHash)
		if err != nil {
			s.log.Warn().Err(err).Str("tx_hash", txHash).Msg("redis replay check failed, falling through to DB")
		}
		if seen {
			return nil, apperror.ErrDuplicateTransaction()
		}
	}

	err = runInTx(ctx, s.transactor, s.retry, "purchase_record", func(tx pgx.Tx) error {
		record, err := s.records.GetByIDForUpdate(ctx, tx, recordID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock record: %w", err))
		}
		if record == nil {
			return apperror.ErrNotFound("record")
		}

		// Layer 2: DB uniqueness
		if record.HasTransaction(txHash) {
			return apperror.ErrDuplicateTransaction()
		}
		exists, err := s.records.TransactionExists(ctx, tx, recordID, txHash)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("check transaction: %w", err))
		}
		if exists {
			return apperror.ErrDuplicateTransaction()
		}

		if buyer.ID == record.OwnerID {
			return apperror.Validation("owners cannot purchase their own record")
		}
		now := s.now().UTC()
		if !record.IsPurchasable(now) {
			return apperror.ErrNotAvailable()
		}

		transaction := domain.Transaction{
			ID:              uuid.New(),
			RecordID:        record.ID,
			BuyerID:         buyer.ID,
			SellerID:        record.OwnerID,
			Price:           record.Price,
			TransactionHash: txHash,
			BlockNumber:     receipt.BlockNumber,
			Confirmations:   receipt.Confirmations,
			Timestamp:       now,
		}
		if err := s.records.AddTransaction(ctx, tx, &transaction); err != nil {
			if errors.Is(err, domain.ErrDuplicateTransactionHash) {
				return apperror.ErrDuplicateTransaction()
			}
			return fmt.Errorf("add transaction: %w", err)
		}

		duration := s.policy.AccessDuration
		grant, err := s.access.GrantInTx(ctx, tx, record, domain.Caller{ID: record.OwnerID, Role: domain.RolePatient}, ports.GrantRequest{
			RecordID:  record.ID,
			GranteeID: buyer.ID,
			Level:     domain.AccessLevelRead,
			Duration:  &duration,
			Reason:    purchaseReason,
			Consent: domain.ConsentMeta{
				Validated: true,
				Method:    purchaseReason,
				Reference: txHash,
			},
		}, meta)
		if err != nil {
			return err
		}

		if err := s.records.RecordPurchase(ctx, tx, record.ID, record.Price, now); err != nil {
			return fmt.Errorf("record purchase: %w", err)
		}
		if err := s.stats.RecordPurchase(ctx, tx, buyer.ID, record.OwnerID, record.Price, now); err != nil {
			return fmt.Errorf("update user statistics: %w", err)
		}

		if err := s.audit.Append(ctx, tx, newAuditEntry(record.ID, domain.AuditActionPurchase, buyer.ID, meta, map[string]any{
			"transaction_hash": txHash,
			"price":            record.Price,
			"block_number":     receipt.BlockNumber,
			"confirmations":    receipt.Confirmations,
		})); err != nil {
			return err
		}

		stats := record.Statistics
		stats.PurchaseCount++
		stats.TotalRevenue += record.Price
		stats.LastAccessDate = &now

		result = &ports.PurchaseResult{
			Transaction: transaction,
			Grant:       *grant,
			Statistics:  stats,
		}
		return nil
	})
	if err != nil {
		if apperror.CodeOf(err) == "" {
			err = apperror.InternalError(err)
		}
		return nil, err
	}

	if s.replay != nil {
		if err := s.replay.Remember(ctx, recordID, txHash, purchaseReplayTTL); err != nil {
			s.log.Warn().Err(err).Str("tx_hash", txHash).Msg("failed to cache purchase hash")
		}
	}

	s.log.Info().
		Str("record_id", recordID.String()).
		Str("buyer_id", buyer.ID).
		Str("tx_hash", txHash).
		Int64("price", result.Transaction.Price).
		Msg("Purchase processed successfully")
	return result, nil
}

func (s *PurchaseServiceImpl) validateReceipt(buyer domain.Caller, txHash string, receipt domain.ChainReceipt) error {
	if buyer.ID == "" {
		return apperror.ErrUnauthenticated()
	}
	if !txHashPattern.MatchString(txHash) {
		return apperror.Validation("transaction_hash must be 0x-prefixed hex")
	}
	if receipt.Status != domain.ReceiptStatusSuccess {
		return apperror.Validation(fmt.Sprintf("receipt status %q is not %q", receipt.Status, domain.ReceiptStatusSuccess))
	}
	if receipt.Confirmations < s.policy.MinConfirmations {
		return apperror.Validation(fmt.Sprintf("receipt needs at least %d confirmations", s.policy.MinConfirmations))
	}
	return nil
}
