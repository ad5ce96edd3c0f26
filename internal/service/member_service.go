package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"
)

type MemberService struct {
	memberRepo MemberRepository
}

func NewMemberService(memberRepo MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

func (s *MemberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrMemberNotFound)
	}
	return member, nil
}

// UpdateProfile replaces the member's name, availability and tag sets.
// Skills and needs arrive as comma-separated strings from the client.
func (s *MemberService) UpdateProfile(ctx context.Context, memberID, name, skills, needs, availability string) (*domain.Member, error) {
	member, err := s.memberRepo.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrMemberNotFound)
	}

	if name != "" {
		member.Name = name
	}
	member.Skills = splitTags(skills)
	member.Needs = splitTags(needs)
	member.Availability = availability

	if err := s.memberRepo.UpdateProfile(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return member, nil
}

// NormalizeEmail applies the directory's email shape: trimmed, lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
