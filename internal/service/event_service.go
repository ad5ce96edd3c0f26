package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"
)

// EventService serves the injected community events catalog and tracks which
// events a member has joined. The catalog itself is read-only.
type EventService struct {
	memberRepo MemberRepository
	catalog    []domain.Event
}

func NewEventService(memberRepo MemberRepository, catalog []domain.Event) *EventService {
	return &EventService{
		memberRepo: memberRepo,
		catalog:    catalog,
	}
}

func (s *EventService) ListEvents(_ context.Context) []domain.Event {
	events := make([]domain.Event, len(s.catalog))
	copy(events, s.catalog)
	return events
}

// JoinEvent appends the event to the member's joined set unless already
// present. Unknown events and unknown members resolve to silent no-ops,
// matching the join-request policy.
func (s *EventService) JoinEvent(ctx context.Context, memberID, eventID string) error {
	known := false
	for _, event := range s.catalog {
		if event.ID == eventID {
			known = true
			break
		}
	}
	if !known {
		return nil
	}

	if err := s.memberRepo.AddJoinedEvent(ctx, memberID, eventID); err != nil {
		if errors.Is(err, my_errors.ErrMemberNotFound) {
			return nil
		}
		return fmt.Errorf("failed to join event: %w", err)
	}
	return nil
}
