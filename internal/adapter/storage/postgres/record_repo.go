package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"health-record-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const recordColumns = `id, owner_id, title, description, category, price, protected,
	file_type, size, checksum_sha256, checksum_blake2b, upload_date, retention_seconds, content_id,
	is_verified, is_available, view_count, purchase_count, total_revenue, last_access_date,
	grants, created_at, updated_at`

// RecordRepo implements ports.RecordRepository. Grants are stored as a JSONB
// column on the record row; purchases live in record_transactions.
type RecordRepo struct {
	pool Pool
}

// NewRecordRepo creates a new RecordRepo.
func NewRecordRepo(pool Pool) *RecordRepo {
	return &RecordRepo{pool: pool}
}

// Create inserts a new record within a database transaction.
func (r *RecordRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.HealthRecord) error {
	if rec.Protected.IsZero() {
		return fmt.Errorf("record %s has an empty protected envelope", rec.ID)
	}
	protected, err := json.Marshal(rec.Protected)
	if err != nil {
		return fmt.Errorf("marshal protected envelope: %w", err)
	}
	grants, err := marshalGrants(rec.Grants)
	if err != nil {
		return err
	}

	query := `INSERT INTO health_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	_, err = tx.Exec(ctx, query,
		rec.ID, rec.OwnerID, rec.Title, rec.Description, string(rec.Category), rec.Price, protected,
		rec.Metadata.FileType, rec.Metadata.Size, rec.Metadata.Checksums.SHA256, rec.Metadata.Checksums.BLAKE2b,
		rec.Metadata.UploadDate, int64(rec.Metadata.RetentionPeriod/time.Second), rec.Metadata.ContentID,
		rec.Status.IsVerified, rec.Status.IsAvailable,
		rec.Statistics.ViewCount, rec.Statistics.PurchaseCount, rec.Statistics.TotalRevenue, rec.Statistics.LastAccessDate,
		grants, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", translateError(err))
	}
	return nil
}

// GetByID fetches a record with its purchase history. Returns nil, nil when absent.
func (r *RecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthRecord, error) {
	return r.get(ctx, r.pool, `SELECT `+recordColumns+` FROM health_records WHERE id = $1`, id)
}

// GetByIDForUpdate fetches and row-locks a record inside tx.
func (r *RecordRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.HealthRecord, error) {
	return r.get(ctx, tx, `SELECT `+recordColumns+` FROM health_records WHERE id = $1 FOR UPDATE`, id)
}

// SaveGrants replaces the record's grant list.
func (r *RecordRepo) SaveGrants(ctx context.Context, tx pgx.Tx, recordID uuid.UUID, grants []domain.AccessGrant) error {
	raw, err := marshalGrants(grants)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `UPDATE health_records SET grants = $1, updated_at = NOW() WHERE id = $2`, raw, recordID)
	if err != nil {
		return fmt.Errorf("save grants: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record not found: %s", recordID)
	}
	return nil
}

// AddTransaction appends a purchase. The (record_id, transaction_hash)
// constraint is the last line of replay defense.
func (r *RecordRepo) AddTransaction(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO record_transactions (id, record_id, buyer_id, seller_id, price,
		transaction_hash, block_number, confirmations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.RecordID, t.BuyerID, t.SellerID, t.Price,
		t.TransactionHash, int64(t.BlockNumber), int64(t.Confirmations), t.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTransactionHash
		}
		return fmt.Errorf("insert transaction: %w", translateError(err))
	}
	return nil
}

// TransactionExists checks whether txHash is already recorded for the record.
func (r *RecordRepo) TransactionExists(ctx context.Context, tx pgx.Tx, recordID uuid.UUID, txHash string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM record_transactions WHERE record_id = $1 AND transaction_hash = $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, recordID, txHash).Scan(&exists); err != nil {
		return false, fmt.Errorf("check transaction exists: %w", translateError(err))
	}
	return exists, nil
}

// IncrementViews bumps the view counter and stamps the last access time.
func (r *RecordRepo) IncrementViews(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	return r.update(ctx, tx, "increment views",
		`UPDATE health_records SET view_count = view_count + 1, last_access_date = $1, updated_at = $1 WHERE id = $2`,
		at, id)
}

// RecordPurchase adds one purchase and its price to the record statistics.
func (r *RecordRepo) RecordPurchase(ctx context.Context, tx pgx.Tx, id uuid.UUID, price int64, at time.Time) error {
	return r.update(ctx, tx, "record purchase",
		`UPDATE health_records SET purchase_count = purchase_count + 1, total_revenue = total_revenue + $1,
		last_access_date = $2, updated_at = $2 WHERE id = $3`,
		price, at, id)
}

// SetVerified stores the outcome of the latest integrity check.
func (r *RecordRepo) SetVerified(ctx context.Context, tx pgx.Tx, id uuid.UUID, verified bool) error {
	return r.update(ctx, tx, "set verified",
		`UPDATE health_records SET is_verified = $1, updated_at = NOW() WHERE id = $2`,
		verified, id)
}

func (r *RecordRepo) update(ctx context.Context, tx pgx.Tx, op, query string, args ...any) error {
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: record not found", op)
	}
	return nil
}

func (r *RecordRepo) get(ctx context.Context, q querier, query string, id uuid.UUID) (*domain.HealthRecord, error) {
	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil || rec == nil {
		return nil, err
	}

	txns, err := r.loadTransactions(ctx, q, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Transactions = txns
	return rec, nil
}

func (r *RecordRepo) loadTransactions(ctx context.Context, q querier, recordID uuid.UUID) ([]domain.Transaction, error) {
	query := `SELECT id, record_id, buyer_id, seller_id, price, transaction_hash, block_number, confirmations, created_at
		FROM record_transactions WHERE record_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", translateError(err))
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var (
			t                    domain.Transaction
			block, confirmations int64
		)
		if err := rows.Scan(&t.ID, &t.RecordID, &t.BuyerID, &t.SellerID, &t.Price,
			&t.TransactionHash, &block, &confirmations, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		t.BlockNumber = uint64(block)
		t.Confirmations = uint64(confirmations)
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}

// scanRecord scans a single health_records row.
func scanRecord(row pgx.Row) (*domain.HealthRecord, error) {
	var (
		rec              domain.HealthRecord
		category         string
		protected        []byte
		grants           []byte
		retentionSeconds int64
	)
	err := row.Scan(
		&rec.ID, &rec.OwnerID, &rec.Title, &rec.Description, &category, &rec.Price, &protected,
		&rec.Metadata.FileType, &rec.Metadata.Size, &rec.Metadata.Checksums.SHA256, &rec.Metadata.Checksums.BLAKE2b,
		&rec.Metadata.UploadDate, &retentionSeconds, &rec.Metadata.ContentID,
		&rec.Status.IsVerified, &rec.Status.IsAvailable,
		&rec.Statistics.ViewCount, &rec.Statistics.PurchaseCount, &rec.Statistics.TotalRevenue, &rec.Statistics.LastAccessDate,
		&grants, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan record: %w", translateError(err))
	}

	rec.Category = domain.RecordCategory(category)
	rec.Metadata.RetentionPeriod = time.Duration(retentionSeconds) * time.Second
	if err := json.Unmarshal(protected, &rec.Protected); err != nil {
		return nil, fmt.Errorf("decode protected envelope: %w", err)
	}
	if len(grants) > 0 {
		if err := json.Unmarshal(grants, &rec.Grants); err != nil {
			return nil, fmt.Errorf("decode grants: %w", err)
		}
	}
	return &rec, nil
}

func marshalGrants(grants []domain.AccessGrant) ([]byte, error) {
	if grants == nil {
		grants = []domain.AccessGrant{}
	}
	raw, err := json.Marshal(grants)
	if err != nil {
		return nil, fmt.Errorf("marshal grants: %w", err)
	}
	return raw, nil
}
