package services

import (
	"context"

	"github.com/genius/elearning/internal/app/models/dto"
)

// StatsService builds the admin dashboard summary
type StatsService struct {
	statsRepo StatsStore
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo StatsStore) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// Collect returns entity counts
func (s *StatsService) Collect(ctx context.Context) (*dto.StatsResponse, error) {
	return s.statsRepo.Collect(ctx)
}
