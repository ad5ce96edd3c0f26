package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/katikarohith/quick-teams/internal/request"
	"github.com/katikarohith/quick-teams/internal/response"
	"github.com/katikarohith/quick-teams/pkg/config"

	"github.com/katikarohith/quick-teams/internal/handler"
	"github.com/katikarohith/quick-teams/internal/repository"
	"github.com/katikarohith/quick-teams/internal/router"
	"github.com/katikarohith/quick-teams/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type E2ETestSuite struct {
	pool   *pgxpool.Pool
	server *httptest.Server
}

func setupE2ETest(t *testing.T) *E2ETestSuite {
	if os.Getenv("POSTGRES_HOST") == "" {
		t.Skip("POSTGRES_HOST not set, skipping e2e tests")
	}

	ctx := context.Background()

	cfg, err := config.Load(".env.tests")
	require.NoError(t, err)

	pool, err := config.MustInitDB(ctx, *cfg)
	require.NoError(t, err)

	cleanupDB(t, pool)

	db := repository.NewPostgres(pool)

	authRepo := repository.NewAuthRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)
	txManager := repository.NewTransactionManager(db)

	validate := validator.New()

	authService := service.NewAuthService(authRepo, memberRepo, cfg.JWTSecret)
	memberService := service.NewMemberService(memberRepo)
	matchService := service.NewMatchService(memberRepo)
	teamService := service.NewTeamService(memberRepo, teamRepo, txManager)
	eventService := service.NewEventService(memberRepo, config.DefaultEvents())
	statsService := service.NewStatisticsService(statsRepo)

	authHandler := handler.NewAuthHandler(authService, validate)
	memberHandler := handler.NewMemberHandler(memberService, teamService, validate)
	matchHandler := handler.NewMatchHandler(matchService)
	teamHandler := handler.NewTeamHandler(teamService, validate)
	eventHandler := handler.NewEventHandler(eventService, memberService, validate)
	statisticsHandler := handler.NewStatisticsHandler(statsService)
	healthHandler := handler.NewHealthHandler()

	r := router.SetupRouter(
		authHandler,
		memberHandler,
		matchHandler,
		teamHandler,
		eventHandler,
		statisticsHandler,
		healthHandler,
		authService,
	)

	server := httptest.NewServer(r)

	return &E2ETestSuite{
		pool:   pool,
		server: server,
	}
}

func (s *E2ETestSuite) teardown() {
	cleanupDB(nil, s.pool)
	s.server.Close()
	s.pool.Close()
}

func cleanupDB(t testing.TB, pool *pgxpool.Pool) {
	ctx := context.Background()
	queries := []string{
		"TRUNCATE TABLE auth_tokens CASCADE",
		"TRUNCATE TABLE team_members CASCADE",
		"TRUNCATE TABLE notifications CASCADE",
		"TRUNCATE TABLE members CASCADE",
	}

	for _, query := range queries {
		_, err := pool.Exec(ctx, query)
		if t != nil {
			require.NoError(t, err)
		}
	}
}

func (s *E2ETestSuite) register(t *testing.T, name, email string) response.AuthResponse {
	reqBody := request.RegisterRequest{Name: name, Email: email, Password: "password123"}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(s.server.URL+"/auth/register", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var authResp response.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&authResp))
	return authResp
}

func (s *E2ETestSuite) do(t *testing.T, method, path, token string, payload any) *http.Response {
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req, err := http.NewRequest(method, s.server.URL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestE2ETeamFormationFlow(t *testing.T) {
	s := setupE2ETest(t)
	defer s.teardown()

	arshad := s.register(t, "Arshad", "arshad@example.com")
	sid := s.register(t, "Siddharth", "sid@example.com")

	// fill complementary profiles
	resp := s.do(t, http.MethodPut, "/dashboard/profile", arshad.Token, request.UpdateProfileRequest{
		Name: "Arshad", Skills: "React", Needs: "MongoDB", Availability: "Evenings",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodPut, "/dashboard/profile", sid.Token, request.UpdateProfileRequest{
		Name: "Siddharth", Skills: "MongoDB", Needs: "React", Availability: "Evenings",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// complementary ranking: mirror profiles score 3+2+1
	resp = s.do(t, http.MethodGet, "/match", arshad.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var matches response.MatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&matches))
	resp.Body.Close()
	require.Equal(t, 1, matches.Count)
	assert.Equal(t, sid.Member.MemberID, matches.Results[0].Member.MemberID)
	assert.Equal(t, 6, matches.Results[0].Score)

	// search mode is case-insensitive over skills
	resp = s.do(t, http.MethodGet, "/match/search?tags=mongodb", arshad.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var search response.MatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&search))
	resp.Body.Close()
	require.Equal(t, 1, search.Count)
	assert.Equal(t, sid.Member.MemberID, search.Results[0].Member.MemberID)

	// join request lands on the target; repeating it stays idempotent
	for i := 0; i < 2; i++ {
		resp = s.do(t, http.MethodPost, "/team/request", arshad.Token, request.JoinTeamRequest{
			TargetID: sid.Member.MemberID,
		})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()
	}

	resp = s.do(t, http.MethodGet, "/notifications", sid.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notifications response.NotificationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notifications))
	resp.Body.Close()
	require.Equal(t, 1, notifications.Count)
	assert.Equal(t, arshad.Member.MemberID, notifications.Notifications[0].OriginID)
	assert.Equal(t, "pending", notifications.Notifications[0].Status)

	// acceptance links both sides
	resp = s.do(t, http.MethodPost, "/team/accept", sid.Token, request.AcceptTeamRequest{
		RequesterID: arshad.Member.MemberID,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	for _, tc := range []struct {
		token    string
		expected string
	}{
		{arshad.Token, sid.Member.MemberID},
		{sid.Token, arshad.Member.MemberID},
	} {
		resp = s.do(t, http.MethodGet, "/team", tc.token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var team response.TeamResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&team))
		resp.Body.Close()
		require.Equal(t, 1, team.Count)
		assert.Equal(t, tc.expected, team.Teammates[0].MemberID)
	}

	// community events: duplicate join keeps a single entry
	for i := 0; i < 2; i++ {
		resp = s.do(t, http.MethodPost, "/community/join", arshad.Token, request.JoinEventRequest{
			EventID: "hack1",
		})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()
	}

	resp = s.do(t, http.MethodGet, "/community", arshad.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var events response.EventsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&events))
	resp.Body.Close()
	joinedCount := 0
	for _, event := range events.Events {
		if event.Joined {
			joinedCount++
			assert.Equal(t, "hack1", event.ID)
		}
	}
	assert.Equal(t, 1, joinedCount)

	// statistics reflect the formed pair and resolved request
	resp = s.do(t, http.MethodGet, "/statistics", arshad.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats response.StatisticsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	resp.Body.Close()
	assert.Equal(t, 2, stats.TotalMembers)
	assert.Equal(t, 0, stats.PendingRequests)
	assert.Equal(t, 1, stats.AcceptedRequests)
	assert.Equal(t, 1, stats.TeamedPairs)
	assert.Equal(t, 1, stats.EventJoins)
}

func TestE2ESelfRequestIgnored(t *testing.T) {
	s := setupE2ETest(t)
	defer s.teardown()

	member := s.register(t, "Solo", "solo@example.com")

	resp := s.do(t, http.MethodPost, "/team/request", member.Token, request.JoinTeamRequest{
		TargetID: member.Member.MemberID,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/notifications", member.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notifications response.NotificationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notifications))
	resp.Body.Close()
	assert.Equal(t, 0, notifications.Count)
}

func TestE2EUnauthorized(t *testing.T) {
	s := setupE2ETest(t)
	defer s.teardown()

	for _, path := range []string{"/dashboard", "/match", "/team", "/community"} {
		resp, err := http.Get(s.server.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, fmt.Sprintf("path %s", path))
		resp.Body.Close()
	}
}
