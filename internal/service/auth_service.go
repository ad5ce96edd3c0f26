package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/jwt"
	"github.com/katikarohith/quick-teams/internal/my_errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour * 24

type AuthService struct {
	repo       AuthRepository
	memberRepo MemberRepository
	jwtSecret  string
}

func NewAuthService(repo AuthRepository, memberRepo MemberRepository, jwtSecret string) *AuthService {
	return &AuthService{
		repo:       repo,
		memberRepo: memberRepo,
		jwtSecret:  jwtSecret,
	}
}

// Register creates a member with a bcrypt password hash and returns it with
// a fresh token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Member, string, error) {
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("name, email, password: %w", my_errors.ErrEmptyField)
	}

	if _, err := s.memberRepo.GetMemberByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("%w", my_errors.ErrEmailTaken)
	} else if !errors.Is(err, my_errors.ErrMemberNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	member := &domain.Member{
		MemberID:     uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Skills:       []string{},
		Needs:        []string{},
		JoinedEvents: []string{},
	}

	if err := s.memberRepo.CreateMember(ctx, member); err != nil {
		return nil, "", fmt.Errorf("failed to create member: %w", err)
	}

	token, err := s.issueToken(ctx, member.MemberID)
	if err != nil {
		return nil, "", err
	}
	return member, token, nil
}

// Login verifies the password and returns a token, reusing a still-valid
// stored token when one exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Member, string, error) {
	member, err := s.memberRepo.GetMemberByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, "", fmt.Errorf("%w", my_errors.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w", my_errors.ErrInvalidCredentials)
	}

	existingToken, err := s.repo.GetTokenByMemberID(ctx, member.MemberID)
	if err == nil && existingToken.ExpiresAt.After(time.Now()) {
		return member, existingToken.Token, nil
	}

	token, err := s.issueToken(ctx, member.MemberID)
	if err != nil {
		return nil, "", err
	}
	return member, token, nil
}

func (s *AuthService) issueToken(ctx context.Context, memberID string) (string, error) {
	token, err := jwt.GenerateToken(memberID, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.repo.SaveToken(ctx, memberID, token, time.Now().Add(tokenTTL)); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}
	return token, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := jwt.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	memberID, err := s.repo.ValidateToken(ctx, tokenString)
	if err != nil {
		return "", fmt.Errorf("token not found: %w", err)
	}

	if memberID != claims.MemberID {
		return "", fmt.Errorf("%w", my_errors.ErrTokenMismatch)
	}

	if _, err := s.memberRepo.GetMemberByID(ctx, memberID); err != nil {
		return "", fmt.Errorf("%w", my_errors.ErrMemberNotFound)
	}

	return memberID, nil
}
