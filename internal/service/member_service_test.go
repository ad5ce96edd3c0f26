package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"
	"github.com/katikarohith/quick-teams/internal/repository/inmemory"
	"github.com/katikarohith/quick-teams/internal/service"
)

func setupMember(t *testing.T) (*inmemory.InMemoryStorage, *service.MemberService) {
	t.Helper()
	storage := inmemory.NewStorage()
	memberRepo := inmemory.NewMemberRepo(storage)

	require.NoError(t, memberRepo.CreateMember(context.Background(), &domain.Member{
		MemberID: "a",
		Email:    "a@x.com",
		Name:     "Arshad",
	}))

	return storage, service.NewMemberService(memberRepo)
}

func TestUpdateProfileParsesTags(t *testing.T) {
	_, svc := setupMember(t)

	member, err := svc.UpdateProfile(context.Background(), "a", "Arshad", "React, Node.js, ", " MongoDB ,, UI Design", "Evenings")
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Node.js"}, member.Skills)
	assert.Equal(t, []string{"MongoDB", "UI Design"}, member.Needs)
	assert.Equal(t, "Evenings", member.Availability)
}

func TestUpdateProfileKeepsNameWhenEmpty(t *testing.T) {
	_, svc := setupMember(t)

	member, err := svc.UpdateProfile(context.Background(), "a", "", "Go", "", "")
	require.NoError(t, err)

	assert.Equal(t, "Arshad", member.Name)
	assert.Equal(t, []string{"Go"}, member.Skills)
	assert.Empty(t, member.Needs)
}

func TestUpdateProfileUnknownMember(t *testing.T) {
	_, svc := setupMember(t)

	_, err := svc.UpdateProfile(context.Background(), "ghost", "x", "", "", "")
	assert.ErrorIs(t, err, my_errors.ErrMemberNotFound)
}

func TestGetMemberUnknown(t *testing.T) {
	_, svc := setupMember(t)

	_, err := svc.GetMember(context.Background(), "ghost")
	assert.ErrorIs(t, err, my_errors.ErrMemberNotFound)
}
