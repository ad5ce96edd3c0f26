package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/katikarohith/quick-teams/internal/dto"
)

type AuthService interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

type contextKey string

const MemberIDKey contextKey = "member_id"

// AuthMiddleware checks the JWT token in Authorization and stores the
// authenticated member id in the request context.
func AuthMiddleware(authService AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeUnauthorized,
						Message: "missing authorization header",
					},
				})
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeUnauthorized,
						Message: "invalid authorization header format",
					},
				})
				return
			}

			token := parts[1]
			memberID, err := authService.ValidateToken(r.Context(), token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeUnauthorized,
						Message: "invalid or expired token",
					},
				})
				return
			}

			ctx := context.WithValue(r.Context(), MemberIDKey, memberID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MemberIDFromContext returns the authenticated member id set by
// AuthMiddleware.
func MemberIDFromContext(ctx context.Context) (string, bool) {
	memberID, ok := ctx.Value(MemberIDKey).(string)
	return memberID, ok
}

func respondError(w http.ResponseWriter, status int, errResp dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}
