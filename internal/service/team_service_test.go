package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/repository/inmemory"
	"github.com/katikarohith/quick-teams/internal/service"
)

type teamEnv struct {
	ctx        context.Context
	storage    *inmemory.InMemoryStorage
	memberRepo *inmemory.MemberRepo
	teamRepo   *inmemory.TeamRepo
	svc        *service.TeamService
}

func setupTeam(t *testing.T) teamEnv {
	t.Helper()
	storage := inmemory.NewStorage()
	memberRepo := inmemory.NewMemberRepo(storage)
	teamRepo := inmemory.NewTeamRepo(storage)

	return teamEnv{
		ctx:        context.Background(),
		storage:    storage,
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		svc:        service.NewTeamService(memberRepo, teamRepo, inmemory.NewTxManager()),
	}
}

func (e teamEnv) addMember(t *testing.T, memberID string) {
	t.Helper()
	require.NoError(t, e.memberRepo.CreateMember(e.ctx, &domain.Member{
		MemberID: memberID,
		Email:    memberID + "@x.com",
		Name:     memberID,
	}))
}

func TestRequestJoinIdempotent(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")
	e.addMember(t, "b")

	require.NoError(t, e.svc.RequestJoin(e.ctx, "a", "b"))
	require.NoError(t, e.svc.RequestJoin(e.ctx, "a", "b"))

	notifications := e.storage.Notifications["b"]
	require.Len(t, notifications, 1)
	assert.Equal(t, "a", notifications[0].OriginID)
	assert.Equal(t, domain.NotificationKindTeamRequest, notifications[0].Kind)
	assert.Equal(t, domain.NotificationStatusPending, notifications[0].Status)

	// nothing is tracked on the requester side before acceptance
	assert.Empty(t, e.storage.Notifications["a"])
	assert.Empty(t, e.storage.Teammates["a"])
}

func TestRequestJoinSelfNoOp(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")

	require.NoError(t, e.svc.RequestJoin(e.ctx, "a", "a"))
	assert.Empty(t, e.storage.Notifications["a"])
}

func TestRequestJoinUnknownTargetNoOp(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")

	require.NoError(t, e.svc.RequestJoin(e.ctx, "a", "ghost"))
	assert.Empty(t, e.storage.Notifications["ghost"])
}

func TestRequestJoinAfterRejectionOfNeither(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")
	e.addMember(t, "b")

	// a second distinct requester gets its own pending notification
	e.addMember(t, "c")
	require.NoError(t, e.svc.RequestJoin(e.ctx, "a", "b"))
	require.NoError(t, e.svc.RequestJoin(e.ctx, "c", "b"))

	require.Len(t, e.storage.Notifications["b"], 2)
}

func TestAcceptRequestSymmetric(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")
	e.addMember(t, "b")

	require.NoError(t, e.svc.RequestJoin(e.ctx, "b", "a"))
	require.NoError(t, e.svc.AcceptRequest(e.ctx, "a", "b"))

	assert.Equal(t, []string{"b"}, e.storage.Teammates["a"])
	assert.Equal(t, []string{"a"}, e.storage.Teammates["b"])

	notifications := e.storage.Notifications["a"]
	require.Len(t, notifications, 1)
	assert.Equal(t, domain.NotificationStatusAccepted, notifications[0].Status)
}

func TestAcceptRequestWithoutPendingStillTeams(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")
	e.addMember(t, "b")

	// no prior join request; membership mutation proceeds anyway
	require.NoError(t, e.svc.AcceptRequest(e.ctx, "a", "b"))

	assert.Equal(t, []string{"b"}, e.storage.Teammates["a"])
	assert.Equal(t, []string{"a"}, e.storage.Teammates["b"])
}

func TestAcceptRequestUnknownMemberNoOp(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")

	require.NoError(t, e.svc.AcceptRequest(e.ctx, "a", "ghost"))
	require.NoError(t, e.svc.AcceptRequest(e.ctx, "ghost", "a"))

	assert.Empty(t, e.storage.Teammates["a"])
	assert.Empty(t, e.storage.Teammates["ghost"])
}

func TestAcceptRequestIdempotent(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")
	e.addMember(t, "b")

	require.NoError(t, e.svc.RequestJoin(e.ctx, "b", "a"))
	require.NoError(t, e.svc.AcceptRequest(e.ctx, "a", "b"))
	require.NoError(t, e.svc.AcceptRequest(e.ctx, "a", "b"))

	assert.Equal(t, []string{"b"}, e.storage.Teammates["a"])
	assert.Equal(t, []string{"a"}, e.storage.Teammates["b"])
}

func TestAcceptRequestNoTransitivity(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")
	e.addMember(t, "b")
	e.addMember(t, "c")

	require.NoError(t, e.svc.AcceptRequest(e.ctx, "a", "b"))
	require.NoError(t, e.svc.AcceptRequest(e.ctx, "b", "c"))

	// a-b and b-c do not imply a-c
	assert.Equal(t, []string{"b"}, e.storage.Teammates["a"])
	assert.ElementsMatch(t, []string{"a", "c"}, e.storage.Teammates["b"])
	assert.Equal(t, []string{"b"}, e.storage.Teammates["c"])
}

func TestTeammatesResolvesMembers(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")
	e.addMember(t, "b")

	require.NoError(t, e.svc.AcceptRequest(e.ctx, "a", "b"))

	teammates, err := e.svc.Teammates(e.ctx, "a")
	require.NoError(t, err)
	require.Len(t, teammates, 1)
	assert.Equal(t, "b", teammates[0].MemberID)
}

func TestNotificationsHistoryIsAppendOnly(t *testing.T) {
	e := setupTeam(t)
	e.addMember(t, "a")
	e.addMember(t, "b")
	e.addMember(t, "c")

	require.NoError(t, e.svc.RequestJoin(e.ctx, "b", "a"))
	require.NoError(t, e.svc.AcceptRequest(e.ctx, "a", "b"))
	require.NoError(t, e.svc.RequestJoin(e.ctx, "c", "a"))

	notifications, err := e.svc.Notifications(e.ctx, "a")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, domain.NotificationStatusAccepted, notifications[0].Status)
	assert.Equal(t, domain.NotificationStatusPending, notifications[1].Status)
}
