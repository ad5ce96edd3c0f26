package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/katikarohith/quick-teams/internal/domain"
)

type AuthRepository struct {
	db *Postgres
}

func NewAuthRepository(db *Postgres) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) SaveToken(ctx context.Context, memberID, token string, expiresAt time.Time) error {
	query := `
        INSERT INTO auth_tokens (member_id, token, expires_at)
        VALUES ($1, $2, $3)
    `
	_, err := r.db.GetQueryExecutor(ctx).Exec(ctx, query, memberID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (r *AuthRepository) GetTokenByMemberID(ctx context.Context, memberID string) (*domain.AuthToken, error) {
	query := `
        SELECT id, member_id, token, expires_at, created_at
        FROM auth_tokens
        WHERE member_id = $1 AND expires_at > NOW()
        ORDER BY created_at DESC
        LIMIT 1
    `
	var token domain.AuthToken
	err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, query, memberID).Scan(
		&token.ID,
		&token.MemberID,
		&token.Token,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

func (r *AuthRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	query := `
        SELECT member_id
        FROM auth_tokens
        WHERE token = $1 AND expires_at > NOW()
    `
	var memberID string
	err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, query, token).Scan(&memberID)
	if err != nil {
		return "", fmt.Errorf("failed to validate token: %w", err)
	}
	return memberID, nil
}
