package inmemory

import (
	"context"
	"time"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"
)

type MemberRepo struct {
	db *InMemoryStorage
}

func NewMemberRepo(db *InMemoryStorage) *MemberRepo {
	return &MemberRepo{db: db}
}

func (r *MemberRepo) CreateMember(_ context.Context, member *domain.Member) error {
	for _, existing := range r.db.Members {
		if existing.Email == member.Email {
			return my_errors.ErrEmailTaken
		}
	}

	stored := *member
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.db.Members[member.MemberID] = &stored
	r.db.MemberOrder = append(r.db.MemberOrder, member.MemberID)
	return nil
}

func (r *MemberRepo) GetMemberByID(_ context.Context, memberID string) (*domain.Member, error) {
	member, exists := r.db.Members[memberID]
	if !exists {
		return nil, my_errors.ErrMemberNotFound
	}

	copied := *member
	return &copied, nil
}

func (r *MemberRepo) GetMemberByEmail(_ context.Context, email string) (*domain.Member, error) {
	for _, member := range r.db.Members {
		if member.Email == email {
			copied := *member
			return &copied, nil
		}
	}
	return nil, my_errors.ErrMemberNotFound
}

func (r *MemberRepo) UpdateProfile(_ context.Context, member *domain.Member) error {
	stored, exists := r.db.Members[member.MemberID]
	if !exists {
		return my_errors.ErrMemberNotFound
	}

	stored.Name = member.Name
	stored.Skills = member.Skills
	stored.Needs = member.Needs
	stored.Availability = member.Availability
	stored.UpdatedAt = time.Now()
	return nil
}

// ListMembersExcept walks members in insertion order, mirroring the
// created_at ordering of the Postgres implementation.
func (r *MemberRepo) ListMembersExcept(_ context.Context, excludeID string) ([]domain.Member, error) {
	members := []domain.Member{}
	for _, memberID := range r.db.MemberOrder {
		if memberID == excludeID {
			continue
		}
		if member, exists := r.db.Members[memberID]; exists {
			members = append(members, *member)
		}
	}
	return members, nil
}

func (r *MemberRepo) AddJoinedEvent(_ context.Context, memberID, eventID string) error {
	member, exists := r.db.Members[memberID]
	if !exists {
		return my_errors.ErrMemberNotFound
	}

	for _, joined := range member.JoinedEvents {
		if joined == eventID {
			return nil
		}
	}
	member.JoinedEvents = append(member.JoinedEvents, eventID)
	return nil
}
