package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"
)

// TeamService drives the join-request lifecycle: a pending notification on
// the target, then a mutual team link once the target accepts. Teams are not
// a stored entity; two members are teamed iff each links the other.
//
// Guarded conditions (self-request, unknown member) resolve to silent no-ops.
// Callers get no signal distinguishing "already teamed" from "target missing";
// that permissive policy is intentional.
type TeamService struct {
	memberRepo MemberRepository
	teamRepo   TeamRepository
	txManager  TransactionManager
}

func NewTeamService(memberRepo MemberRepository, teamRepo TeamRepository, txManager TransactionManager) *TeamService {
	return &TeamService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		txManager:  txManager,
	}
}

// RequestJoin records a pending team request from requester on the target.
// Nothing is stored on the requester side until acceptance. Repeat calls for
// the same pair are absorbed by the repository's insert-if-absent.
func (s *TeamService) RequestJoin(ctx context.Context, requesterID, targetID string) error {
	if requesterID == targetID {
		return nil
	}

	if _, err := s.memberRepo.GetMemberByID(ctx, targetID); err != nil {
		if errors.Is(err, my_errors.ErrMemberNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load target: %w", err)
	}

	if err := s.teamRepo.AddPendingNotification(ctx, targetID, requesterID); err != nil {
		return fmt.Errorf("failed to record join request: %w", err)
	}
	return nil
}

// AcceptRequest resolves the pending notification from requester on the
// accepter and links both members into each other's team set. The membership
// mutation proceeds even when no pending notification is found. Both writes
// run in one transaction, accepter side first, so acceptance cannot leave a
// one-sided team link behind.
func (s *TeamService) AcceptRequest(ctx context.Context, accepterID, requesterID string) error {
	if accepterID == requesterID {
		return nil
	}

	if _, err := s.memberRepo.GetMemberByID(ctx, accepterID); err != nil {
		if errors.Is(err, my_errors.ErrMemberNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load accepter: %w", err)
	}
	if _, err := s.memberRepo.GetMemberByID(ctx, requesterID); err != nil {
		if errors.Is(err, my_errors.ErrMemberNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load requester: %w", err)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.teamRepo.AcceptNotification(ctx, accepterID, requesterID); err != nil {
			return err
		}
		if err := s.teamRepo.AddTeammate(ctx, accepterID, requesterID); err != nil {
			return err
		}
		return s.teamRepo.AddTeammate(ctx, requesterID, accepterID)
	})
	if err != nil {
		return fmt.Errorf("failed to accept join request: %w", err)
	}
	return nil
}

// Teammates returns the member's current team as full member records.
func (s *TeamService) Teammates(ctx context.Context, memberID string) ([]domain.Member, error) {
	teammateIDs, err := s.teamRepo.GetTeammateIDs(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teammates: %w", err)
	}

	teammates := make([]domain.Member, 0, len(teammateIDs))
	for _, teammateID := range teammateIDs {
		teammate, err := s.memberRepo.GetMemberByID(ctx, teammateID)
		if err != nil {
			if errors.Is(err, my_errors.ErrMemberNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load teammate: %w", err)
		}
		teammates = append(teammates, *teammate)
	}
	return teammates, nil
}

// Notifications returns the member's join-request history, oldest first.
func (s *TeamService) Notifications(ctx context.Context, memberID string) ([]domain.Notification, error) {
	notifications, err := s.teamRepo.GetNotifications(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}
