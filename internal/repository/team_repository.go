package repository

import (
	"context"
	"fmt"

	"github.com/katikarohith/quick-teams/internal/domain"
)

// TeamRepository persists join-request notifications and the mutual
// team-member links derived from accepted requests.
type TeamRepository struct {
	db *Postgres
}

func NewTeamRepository(db *Postgres) *TeamRepository {
	return &TeamRepository{db: db}
}

// AddPendingNotification records a pending team request from origin on the
// target member. The partial unique index on (member_id, origin_id) for
// pending rows makes this an atomic insert-if-absent: concurrent requests
// for the same pair cannot create a second pending notification.
func (r *TeamRepository) AddPendingNotification(ctx context.Context, targetID, originID string) error {
	query := `
        INSERT INTO notifications (member_id, origin_id, kind, status)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (member_id, origin_id) WHERE status = 'pending' DO NOTHING
    `
	_, err := r.db.GetQueryExecutor(ctx).Exec(ctx, query,
		targetID, originID, domain.NotificationKindTeamRequest, domain.NotificationStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to add notification: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetNotifications(ctx context.Context, memberID string) ([]domain.Notification, error) {
	query := `
        SELECT id, origin_id, kind, status, created_at
        FROM notifications
        WHERE member_id = $1
        ORDER BY id
    `
	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.OriginID, &n.Kind, &n.Status, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// AcceptNotification marks the pending notification from originID on the
// accepter as accepted. Zero affected rows is not an error: the membership
// mutation still proceeds even when no pending request exists.
func (r *TeamRepository) AcceptNotification(ctx context.Context, accepterID, originID string) error {
	query := `
        UPDATE notifications
        SET status = 'accepted'
        WHERE member_id = $1 AND origin_id = $2 AND status = 'pending'
    `
	_, err := r.db.GetQueryExecutor(ctx).Exec(ctx, query, accepterID, originID)
	if err != nil {
		return fmt.Errorf("failed to accept notification: %w", err)
	}
	return nil
}

// AddTeammate links teammateID into the member's team set, skipping
// duplicates. The table's primary key and self-reference CHECK back the
// membership-set invariants.
func (r *TeamRepository) AddTeammate(ctx context.Context, memberID, teammateID string) error {
	query := `
        INSERT INTO team_members (member_id, teammate_id)
        VALUES ($1, $2)
        ON CONFLICT (member_id, teammate_id) DO NOTHING
    `
	_, err := r.db.GetQueryExecutor(ctx).Exec(ctx, query, memberID, teammateID)
	if err != nil {
		return fmt.Errorf("failed to add teammate: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetTeammateIDs(ctx context.Context, memberID string) ([]string, error) {
	query := `
        SELECT teammate_id
        FROM team_members
        WHERE member_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teammates: %w", err)
	}
	defer rows.Close()

	var teammateIDs []string
	for rows.Next() {
		var teammateID string
		if err := rows.Scan(&teammateID); err != nil {
			return nil, fmt.Errorf("failed to scan teammate: %w", err)
		}
		teammateIDs = append(teammateIDs, teammateID)
	}
	return teammateIDs, nil
}
