package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/dto"
	"github.com/katikarohith/quick-teams/internal/mapper"
	"github.com/katikarohith/quick-teams/internal/middleware"
	"github.com/katikarohith/quick-teams/internal/my_errors"
	"github.com/katikarohith/quick-teams/internal/response"
)

type MatchService interface {
	ListComplementary(ctx context.Context, viewerID string) ([]domain.ScoredCandidate, error)
	SearchBySkills(ctx context.Context, viewerID, tags string) ([]domain.ScoredCandidate, error)
}

type MatchHandler struct {
	matchService MatchService
}

func NewMatchHandler(matchService MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// ListMatches godoc
// @Summary List complementary partners
// @Description Rank other members by skill/need complementarity and availability overlap
// @Tags Matchmaking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MatchResponse "Ranked candidates retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /match [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.MemberIDFromContext(r.Context())

	candidates, err := h.matchService.ListComplementary(r.Context(), viewerID)
	if err != nil {
		if errors.Is(err, my_errors.ErrMemberNotFound) {
			respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, my_errors.ErrMemberNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.MatchResponse{
		Mode:    domain.MatchModeComplementary,
		Results: mapper.MapScoredCandidatesToDTO(candidates),
		Count:   len(candidates),
	}

	respondJSON(w, http.StatusOK, resp)
}

// SearchMatches godoc
// @Summary Search members by skill tags
// @Description Match comma-separated tags against member skills, case-insensitively
// @Tags Matchmaking
// @Produce json
// @Security BearerAuth
// @Param tags query string true "Comma-separated skill tags"
// @Success 200 {object} response.MatchResponse "Matching candidates retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /match/search [get]
func (h *MatchHandler) SearchMatches(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.MemberIDFromContext(r.Context())
	tags := r.URL.Query().Get("tags")

	candidates, err := h.matchService.SearchBySkills(r.Context(), viewerID, tags)
	if err != nil {
		if errors.Is(err, my_errors.ErrEmptySearch) {
			respondJSON(w, http.StatusOK, response.MatchResponse{
				Mode:    domain.MatchModeSearch,
				Results: []dto.ScoredCandidateDTO{},
				Count:   0,
				Message: "provide at least one skill tag to search",
			})
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.MatchResponse{
		Mode:    domain.MatchModeSearch,
		Results: mapper.MapScoredCandidatesToDTO(candidates),
		Count:   len(candidates),
	}

	respondJSON(w, http.StatusOK, resp)
}
