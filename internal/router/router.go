package router

import (
	"net/http"
	"time"

	middleware2 "github.com/katikarohith/quick-teams/pkg/middleware"

	"github.com/katikarohith/quick-teams/internal/handler"
	"github.com/katikarohith/quick-teams/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	memberHandler *handler.MemberHandler,
	matchHandler *handler.MatchHandler,
	teamHandler *handler.TeamHandler,
	eventHandler *handler.EventHandler,
	statisticsHandler *handler.StatisticsHandler,
	healthHandler *handler.HealthHandler,
	authService middleware.AuthService,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(5 * time.Second))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Public endpoints
	r.Head("/health", healthHandler.Health)
	r.Get("/health", healthHandler.Health)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected endpoints (require JWT authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))

		// Member endpoints
		r.Get("/dashboard", memberHandler.Dashboard)
		r.Put("/dashboard/profile", memberHandler.UpdateProfile)
		r.Get("/notifications", memberHandler.Notifications)

		// Matchmaking endpoints
		r.Get("/match", matchHandler.ListMatches)
		r.Get("/match/search", matchHandler.SearchMatches)

		// Team endpoints
		r.Post("/team/request", teamHandler.RequestJoin)
		r.Post("/team/accept", teamHandler.AcceptRequest)
		r.Get("/team", teamHandler.GetTeam)

		// Community event endpoints
		r.Get("/community", eventHandler.ListEvents)
		r.Post("/community/join", eventHandler.JoinEvent)

		// Statistics endpoint
		r.Get("/statistics", statisticsHandler.GetStatistics)
	})

	return r
}
