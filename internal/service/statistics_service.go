package service

import (
	"context"
	"fmt"

	"github.com/katikarohith/quick-teams/internal/domain"
)

type StatisticsService struct {
	statsRepo StatisticsRepository
}

func NewStatisticsService(statsRepo StatisticsRepository) *StatisticsService {
	return &StatisticsService{statsRepo: statsRepo}
}

func (s *StatisticsService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := s.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	return stats, nil
}
