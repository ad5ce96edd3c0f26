package inmemory

import (
	"context"
	"time"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"
)

type AuthRepo struct {
	db *InMemoryStorage
}

func NewAuthRepo(db *InMemoryStorage) *AuthRepo {
	return &AuthRepo{db: db}
}

func (r *AuthRepo) SaveToken(_ context.Context, memberID, token string, expiresAt time.Time) error {
	r.db.Tokens[token] = domain.AuthToken{
		MemberID:  memberID,
		Token:     token,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	return nil
}

func (r *AuthRepo) GetTokenByMemberID(_ context.Context, memberID string) (*domain.AuthToken, error) {
	for _, token := range r.db.Tokens {
		if token.MemberID == memberID && token.ExpiresAt.After(time.Now()) {
			copied := token
			return &copied, nil
		}
	}
	return nil, my_errors.ErrInvalidToken
}

func (r *AuthRepo) ValidateToken(_ context.Context, tokenString string) (string, error) {
	token, exists := r.db.Tokens[tokenString]
	if !exists || token.ExpiresAt.Before(time.Now()) {
		return "", my_errors.ErrInvalidToken
	}
	return token.MemberID, nil
}

// TxManager satisfies the transaction manager contract without real
// transaction semantics; map mutations are applied directly.
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (tm *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
