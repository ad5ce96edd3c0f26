package inmemory

import (
	"context"
	"time"

	"github.com/katikarohith/quick-teams/internal/domain"
)

type TeamRepo struct {
	db *InMemoryStorage
}

func NewTeamRepo(db *InMemoryStorage) *TeamRepo {
	return &TeamRepo{db: db}
}

func (r *TeamRepo) AddPendingNotification(_ context.Context, targetID, originID string) error {
	for _, n := range r.db.Notifications[targetID] {
		if n.OriginID == originID && n.Status == domain.NotificationStatusPending {
			return nil
		}
	}

	r.db.nextNotificationID++
	r.db.Notifications[targetID] = append(r.db.Notifications[targetID], domain.Notification{
		ID:        r.db.nextNotificationID,
		OriginID:  originID,
		Kind:      domain.NotificationKindTeamRequest,
		Status:    domain.NotificationStatusPending,
		CreatedAt: time.Now(),
	})
	return nil
}

func (r *TeamRepo) GetNotifications(_ context.Context, memberID string) ([]domain.Notification, error) {
	notifications := make([]domain.Notification, len(r.db.Notifications[memberID]))
	copy(notifications, r.db.Notifications[memberID])
	return notifications, nil
}

func (r *TeamRepo) AcceptNotification(_ context.Context, accepterID, originID string) error {
	notifications := r.db.Notifications[accepterID]
	for i := range notifications {
		if notifications[i].OriginID == originID && notifications[i].Status == domain.NotificationStatusPending {
			notifications[i].Status = domain.NotificationStatusAccepted
			return nil
		}
	}
	return nil
}

func (r *TeamRepo) AddTeammate(_ context.Context, memberID, teammateID string) error {
	for _, existing := range r.db.Teammates[memberID] {
		if existing == teammateID {
			return nil
		}
	}
	r.db.Teammates[memberID] = append(r.db.Teammates[memberID], teammateID)
	return nil
}

func (r *TeamRepo) GetTeammateIDs(_ context.Context, memberID string) ([]string, error) {
	teammateIDs := make([]string, len(r.db.Teammates[memberID]))
	copy(teammateIDs, r.db.Teammates[memberID])
	return teammateIDs, nil
}
