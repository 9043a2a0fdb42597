package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"health-record-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecordRepo implements ports.RecordRepository on a Store.
type RecordRepo struct {
	store *Store
}

// NewRecordRepo creates a record repository backed by store.
func NewRecordRepo(store *Store) *RecordRepo {
	return &RecordRepo{store: store}
}

func (r *RecordRepo) Create(_ context.Context, tx pgx.Tx, rec *domain.HealthRecord) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	if t.record(rec.ID) != nil {
		return fmt.Errorf("record %s already exists", rec.ID)
	}
	t.records[rec.ID] = cloneRecord(rec)
	return nil
}

func (r *RecordRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.HealthRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.records[id]
	if !ok {
		return nil, nil
	}
	return cloneRecord(rec), nil
}

// GetByIDForUpdate needs no row lock: transactions are already serialized.
func (r *RecordRepo) GetByIDForUpdate(_ context.Context, tx pgx.Tx, id uuid.UUID) (*domain.HealthRecord, error) {
	t, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	rec := t.record(id)
	if rec == nil {
		return nil, nil
	}
	return cloneRecord(rec), nil
}

func (r *RecordRepo) SaveGrants(_ context.Context, tx pgx.Tx, recordID uuid.UUID, grants []domain.AccessGrant) error {
	rec, err := r.locked(tx, recordID)
	if err != nil {
		return err
	}
	rec.Grants = cloneGrants(grants)
	return nil
}

func (r *RecordRepo) AddTransaction(_ context.Context, tx pgx.Tx, transaction *domain.Transaction) error {
	rec, err := r.locked(tx, transaction.RecordID)
	if err != nil {
		return err
	}
	if rec.HasTransaction(transaction.TransactionHash) {
		return domain.ErrDuplicateTransactionHash
	}
	rec.Transactions = append(rec.Transactions, *transaction)
	return nil
}

func (r *RecordRepo) TransactionExists(_ context.Context, tx pgx.Tx, recordID uuid.UUID, txHash string) (bool, error) {
	rec, err := r.locked(tx, recordID)
	if err != nil {
		return false, err
	}
	return rec.HasTransaction(txHash), nil
}

func (r *RecordRepo) IncrementViews(_ context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	rec, err := r.locked(tx, id)
	if err != nil {
		return err
	}
	rec.Statistics.ViewCount++
	rec.Statistics.LastAccessDate = &at
	rec.UpdatedAt = at
	return nil
}

func (r *RecordRepo) RecordPurchase(_ context.Context, tx pgx.Tx, id uuid.UUID, price int64, at time.Time) error {
	rec, err := r.locked(tx, id)
	if err != nil {
		return err
	}
	rec.Statistics.PurchaseCount++
	rec.Statistics.TotalRevenue += price
	rec.Statistics.LastAccessDate = &at
	rec.UpdatedAt = at
	return nil
}

func (r *RecordRepo) SetVerified(_ context.Context, tx pgx.Tx, id uuid.UUID, verified bool) error {
	rec, err := r.locked(tx, id)
	if err != nil {
		return err
	}
	rec.Status.IsVerified = verified
	return nil
}

func (r *RecordRepo) locked(tx pgx.Tx, id uuid.UUID) (*domain.HealthRecord, error) {
	t, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	rec := t.record(id)
	if rec == nil {
		return nil, fmt.Errorf("record not found: %s", id)
	}
	return rec, nil
}

// AuditRepo implements ports.AuditRepository on a Store. Entries are
// copied on the way in and out.
type AuditRepo struct {
	store *Store
}

// NewAuditRepo creates an audit repository backed by store.
func NewAuditRepo(store *Store) *AuditRepo {
	return &AuditRepo{store: store}
}

func (r *AuditRepo) Append(_ context.Context, tx pgx.Tx, entry *domain.AuditLogEntry) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	t.audit = append(t.audit, copyEntry(*entry))
	return nil
}

// ListByRecord returns up to limit entries for a record, newest first.
func (r *AuditRepo) ListByRecord(_ context.Context, recordID uuid.UUID, limit int) ([]domain.AuditLogEntry, error) {
	r.store.mu.RLock()
	var out []domain.AuditLogEntry
	for i := len(r.store.audit) - 1; i >= 0; i-- {
		if e := r.store.audit[i]; e.RecordID == recordID {
			out = append(out, copyEntry(e))
		}
	}
	r.store.mu.RUnlock()

	// Entries sharing a timestamp keep reverse commit order.

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyEntry(e domain.AuditLogEntry) domain.AuditLogEntry {
	e.Risk.Factors = append([]string(nil), e.Risk.Factors...)
	if e.Details != nil {
		details := make(map[string]any, len(e.Details))
		for k, v := range e.Details {
			details[k] = v
		}
		e.Details = details
	}
	return e
}

// UserStatsRepo implements ports.UserStatsRepository on a Store.
type UserStatsRepo struct {
	store *Store
}

// NewUserStatsRepo creates a statistics repository backed by store.
func NewUserStatsRepo(store *Store) *UserStatsRepo {
	return &UserStatsRepo{store: store}
}

func (r *UserStatsRepo) IncrementUploads(_ context.Context, tx pgx.Tx, userID string, at time.Time) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	s := t.userStats(userID)
	s.RecordsUploaded++
	s.UpdatedAt = at
	return nil
}

func (r *UserStatsRepo) RecordPurchase(_ context.Context, tx pgx.Tx, buyerID, sellerID string, price int64, at time.Time) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	buyer := t.userStats(buyerID)
	buyer.RecordsPurchased++
	buyer.TotalSpent += price
	buyer.UpdatedAt = at

	seller := t.userStats(sellerID)
	seller.TotalEarned += price
	seller.UpdatedAt = at
	return nil
}

func (r *UserStatsRepo) Get(_ context.Context, userID string) (*domain.UserStatistics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.stats[userID]
	if !ok {
		return nil, nil
	}
	out := *s
	return &out, nil
}
