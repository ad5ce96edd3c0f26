package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "github.com/katikarohith/quick-teams/pkg/config"

	_ "github.com/katikarohith/quick-teams/docs"
	"github.com/katikarohith/quick-teams/internal/handler"
	"github.com/katikarohith/quick-teams/internal/repository"
	"github.com/katikarohith/quick-teams/internal/router"
	"github.com/katikarohith/quick-teams/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title QuickTeams API
// @version 1.0
// @description Matchmaking and team-formation service for skill-complementary partners
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	seed := flag.Bool("seed", false, "insert demo members and exit")
	flag.Parse()

	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	events, err := config2.LoadEvents(cfg)
	if err != nil {
		slog.Error("failed to load events catalog", "error", err)
		os.Exit(1)
	}

	// Connect to database
	pool, err := config2.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("successfully connected to database")

	db := repository.NewPostgres(pool)

	// Initialize repositories
	authRepo := repository.NewAuthRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)
	txManager := repository.NewTransactionManager(db)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	authService := service.NewAuthService(authRepo, memberRepo, cfg.JWTSecret)
	memberService := service.NewMemberService(memberRepo)
	matchService := service.NewMatchService(memberRepo)
	teamService := service.NewTeamService(memberRepo, teamRepo, txManager)
	eventService := service.NewEventService(memberRepo, events)
	statsService := service.NewStatisticsService(statsRepo)

	if *seed {
		if err := seedMembers(context.Background(), authService, memberService); err != nil {
			slog.Error("failed to seed members", "error", err)
			os.Exit(1)
		}
		slog.Info("seed members inserted")
		return
	}

	// Initialize handlers
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

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("starting http server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	slog.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

// seedMembers inserts the demo roster used for local development.
func seedMembers(ctx context.Context, authService *service.AuthService, memberService *service.MemberService) error {
	seeds := []struct {
		name         string
		email        string
		skills       string
		needs        string
		availability string
	}{
		{"Arshad", "arshad@example.com", "React, Node.js", "MongoDB, UI Design", "Evenings"},
		{"Siddharth", "sid@example.com", "MongoDB, Express", "React", "Weekends"},
		{"Ganesh", "ganesh@example.com", "Python, Machine Learning", "Frontend", "Mornings"},
		{"Rohith", "rohith@example.com", "UI/UX, Bootstrap", "Backend", "Anytime"},
	}

	for _, s := range seeds {
		member, _, err := authService.Register(ctx, s.name, s.email, "password123")
		if err != nil {
			slog.Warn("skipping seed member", "email", s.email, "error", err)
			continue
		}
		if _, err := memberService.UpdateProfile(ctx, member.MemberID, s.name, s.skills, s.needs, s.availability); err != nil {
			return err
		}
	}
	return nil
}
