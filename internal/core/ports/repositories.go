package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"health-record-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecordRepository persists health records together with their embedded
// grants and purchase history. Methods accepting pgx.Tx run inside the
// caller's unit of work; *ForUpdate variants lock the record row.
type RecordRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.HealthRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthRecord, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.HealthRecord, error)
	// SaveGrants replaces the record's grant list.
	SaveGrants(ctx context.Context, tx pgx.Tx, recordID uuid.UUID, grants []domain.AccessGrant) error
	// AddTransaction returns domain.ErrDuplicateTransactionHash when the hash is already recorded.
	AddTransaction(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	TransactionExists(ctx context.Context, tx pgx.Tx, recordID uuid.UUID, txHash string) (bool, error)
	IncrementViews(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error
	RecordPurchase(ctx context.Context, tx pgx.Tx, id uuid.UUID, price int64, at time.Time) error
	SetVerified(ctx context.Context, tx pgx.Tx, id uuid.UUID, verified bool) error
}

// AuditRepository is append-only: there is deliberately no update or delete.
type AuditRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.AuditLogEntry) error
	ListByRecord(ctx context.Context, recordID uuid.UUID, limit int) ([]domain.AuditLogEntry, error)
}

// UserStatsRepository maintains per-user upload and purchase counters.
type UserStatsRepository interface {
	IncrementUploads(ctx context.Context, tx pgx.Tx, userID string, at time.Time) error
	RecordPurchase(ctx context.Context, tx pgx.Tx, buyerID, sellerID string, price int64, at time.Time) error
	Get(ctx context.Context, userID string) (*domain.UserStatistics, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
