package service

import (
	"context"
	"fmt"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/pkg/apperror"
)

// statsService implements ports.StatsService.
type statsService struct {
	stats ports.UserStatsRepository
}

// NewStatsService creates a new statistics service.
func NewStatsService(stats ports.UserStatsRepository) ports.StatsService {
	return &statsService{stats: stats}
}

// GetUserStats returns the user's counters, or zeroed counters for a user
// that has not uploaded or purchased anything yet.
func (s *statsService) GetUserStats(ctx context.Context, userID string) (*domain.UserStatistics, error) {
	if userID == "" {
		return nil, apperror.ErrUnauthenticated()
	}

	stats, err := s.stats.Get(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user statistics: %w", err))
	}
	if stats == nil {
		return &domain.UserStatistics{UserID: userID}, nil
	}
	return stats, nil
}
