package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-record-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserStatsRepo implements ports.UserStatsRepository with upserts on user_stats.
type UserStatsRepo struct {
	pool Pool
}

// NewUserStatsRepo creates a new UserStatsRepo.
func NewUserStatsRepo(pool Pool) *UserStatsRepo {
	return &UserStatsRepo{pool: pool}
}

// IncrementUploads counts one more upload for userID.
func (r *UserStatsRepo) IncrementUploads(ctx context.Context, tx pgx.Tx, userID string, at time.Time) error {
	query := `INSERT INTO user_stats (user_id, records_uploaded, updated_at) VALUES ($1, 1, $2)
		ON CONFLICT (user_id) DO UPDATE SET records_uploaded = user_stats.records_uploaded + 1, updated_at = $2`

	if _, err := tx.Exec(ctx, query, userID, at); err != nil {
		return fmt.Errorf("increment uploads: %w", translateError(err))
	}
	return nil
}

// RecordPurchase updates the buyer's spend and the seller's earnings.
func (r *UserStatsRepo) RecordPurchase(ctx context.Context, tx pgx.Tx, buyerID, sellerID string, price int64, at time.Time) error {
	buyer := `INSERT INTO user_stats (user_id, records_purchased, total_spent, updated_at) VALUES ($1, 1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET records_purchased = user_stats.records_purchased + 1,
		total_spent = user_stats.total_spent + $2, updated_at = $3`
	if _, err := tx.Exec(ctx, buyer, buyerID, price, at); err != nil {
		return fmt.Errorf("record buyer purchase: %w", translateError(err))
	}

	seller := `INSERT INTO user_stats (user_id, total_earned, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET total_earned = user_stats.total_earned + $2, updated_at = $3`
	if _, err := tx.Exec(ctx, seller, sellerID, price, at); err != nil {
		return fmt.Errorf("record seller earnings: %w", translateError(err))
	}
	return nil
}

// Get fetches a user's statistics. Returns nil, nil for unknown users.
func (r *UserStatsRepo) Get(ctx context.Context, userID string) (*domain.UserStatistics, error) {
	query := `SELECT user_id, records_uploaded, records_purchased, total_spent, total_earned, updated_at
		FROM user_stats WHERE user_id = $1`

	s := &domain.UserStatistics{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.RecordsUploaded, &s.RecordsPurchased, &s.TotalSpent, &s.TotalEarned, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user stats: %w", err)
	}
	return s, nil
}
