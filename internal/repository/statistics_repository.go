package repository

import (
	"context"
	"fmt"

	"github.com/katikarohith/quick-teams/internal/domain"
)

type StatisticsRepository struct {
	db *Postgres
}

func NewStatisticsRepository(db *Postgres) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{}
	q := r.db.GetQueryExecutor(ctx)

	memberStatsQuery := `
        SELECT
            COUNT(*) as total,
            COALESCE(SUM(cardinality(joined_events)), 0) as event_joins
        FROM members
    `
	err := q.QueryRow(ctx, memberStatsQuery).Scan(&stats.TotalMembers, &stats.EventJoins)
	if err != nil {
		return nil, fmt.Errorf("failed to get member stats: %w", err)
	}

	notificationStatsQuery := `
        SELECT
            COUNT(CASE WHEN status = 'pending' THEN 1 END) as pending,
            COUNT(CASE WHEN status = 'accepted' THEN 1 END) as accepted
        FROM notifications
    `
	err = q.QueryRow(ctx, notificationStatsQuery).Scan(&stats.PendingRequests, &stats.AcceptedRequests)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification stats: %w", err)
	}

	// Each teamed pair is stored as two mutual links
	pairStatsQuery := `SELECT COUNT(*) / 2 FROM team_members`
	err = q.QueryRow(ctx, pairStatsQuery).Scan(&stats.TeamedPairs)
	if err != nil {
		return nil, fmt.Errorf("failed to get team stats: %w", err)
	}

	return stats, nil
}
