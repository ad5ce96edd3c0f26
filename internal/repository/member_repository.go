package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"

	"github.com/jackc/pgx/v5"
)

type MemberRepository struct {
	db *Postgres
}

func NewMemberRepository(db *Postgres) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) CreateMember(ctx context.Context, member *domain.Member) error {
	query := `
        INSERT INTO members (member_id, email, password_hash, name, skills, needs, availability, joined_events)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.GetQueryExecutor(ctx).Exec(ctx, query,
		member.MemberID,
		member.Email,
		member.PasswordHash,
		member.Name,
		member.Skills,
		member.Needs,
		member.Availability,
		member.JoinedEvents,
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *MemberRepository) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `
        SELECT member_id, email, password_hash, name, skills, needs, availability, joined_events, created_at, updated_at
        FROM members
        WHERE member_id = $1
    `
	return r.scanMember(r.db.GetQueryExecutor(ctx).QueryRow(ctx, query, memberID))
}

func (r *MemberRepository) GetMemberByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `
        SELECT member_id, email, password_hash, name, skills, needs, availability, joined_events, created_at, updated_at
        FROM members
        WHERE email = $1
    `
	return r.scanMember(r.db.GetQueryExecutor(ctx).QueryRow(ctx, query, email))
}

func (r *MemberRepository) scanMember(row pgx.Row) (*domain.Member, error) {
	var member domain.Member
	err := row.Scan(
		&member.MemberID,
		&member.Email,
		&member.PasswordHash,
		&member.Name,
		&member.Skills,
		&member.Needs,
		&member.Availability,
		&member.JoinedEvents,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, my_errors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &member, nil
}

func (r *MemberRepository) UpdateProfile(ctx context.Context, member *domain.Member) error {
	query := `
        UPDATE members
        SET name = $1, skills = $2, needs = $3, availability = $4, updated_at = NOW()
        WHERE member_id = $5
    `
	result, err := r.db.GetQueryExecutor(ctx).Exec(ctx, query,
		member.Name, member.Skills, member.Needs, member.Availability, member.MemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return my_errors.ErrMemberNotFound
	}
	return nil
}

// ListMembersExcept returns every member except the given one. The exclusion
// mirrors the directory contract used by the matchmaking view.
func (r *MemberRepository) ListMembersExcept(ctx context.Context, excludeID string) ([]domain.Member, error) {
	query := `
        SELECT member_id, email, password_hash, name, skills, needs, availability, joined_events, created_at, updated_at
        FROM members
        WHERE member_id != $1
        ORDER BY created_at
    `
	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, query, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(
			&member.MemberID,
			&member.Email,
			&member.PasswordHash,
			&member.Name,
			&member.Skills,
			&member.Needs,
			&member.Availability,
			&member.JoinedEvents,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	return members, nil
}

// AddJoinedEvent appends eventID to the member's joined events unless it is
// already present. The guard runs inside the statement, so a retry cannot
// produce a duplicate entry.
func (r *MemberRepository) AddJoinedEvent(ctx context.Context, memberID, eventID string) error {
	query := `
        UPDATE members
        SET joined_events = array_append(joined_events, $1), updated_at = NOW()
        WHERE member_id = $2 AND NOT ($1 = ANY(joined_events))
    `
	_, err := r.db.GetQueryExecutor(ctx).Exec(ctx, query, eventID, memberID)
	if err != nil {
		return fmt.Errorf("failed to add joined event: %w", err)
	}
	return nil
}
