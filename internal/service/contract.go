package service

import (
	"context"
	"time"

	"github.com/katikarohith/quick-teams/internal/domain"
)

// MemberRepository is the member directory: lookup, listing and the
// profile/event mutations the services need.
type MemberRepository interface {
	CreateMember(ctx context.Context, member *domain.Member) error
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*domain.Member, error)
	UpdateProfile(ctx context.Context, member *domain.Member) error
	ListMembersExcept(ctx context.Context, excludeID string) ([]domain.Member, error)
	AddJoinedEvent(ctx context.Context, memberID, eventID string) error
}

type TeamRepository interface {
	AddPendingNotification(ctx context.Context, targetID, originID string) error
	GetNotifications(ctx context.Context, memberID string) ([]domain.Notification, error)
	AcceptNotification(ctx context.Context, accepterID, originID string) error
	AddTeammate(ctx context.Context, memberID, teammateID string) error
	GetTeammateIDs(ctx context.Context, memberID string) ([]string, error)
}

type AuthRepository interface {
	SaveToken(ctx context.Context, memberID, token string, expiresAt time.Time) error
	GetTokenByMemberID(ctx context.Context, memberID string) (*domain.AuthToken, error)
	ValidateToken(ctx context.Context, token string) (string, error)
}

type StatisticsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
