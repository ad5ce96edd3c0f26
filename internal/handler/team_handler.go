package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/dto"
	"github.com/katikarohith/quick-teams/internal/mapper"
	"github.com/katikarohith/quick-teams/internal/middleware"
	"github.com/katikarohith/quick-teams/internal/request"
	"github.com/katikarohith/quick-teams/internal/response"

	"github.com/go-playground/validator/v10"
)

type TeamService interface {
	RequestJoin(ctx context.Context, requesterID, targetID string) error
	AcceptRequest(ctx context.Context, accepterID, requesterID string) error
	Teammates(ctx context.Context, memberID string) ([]domain.Member, error)
}

type TeamHandler struct {
	teamService TeamService
	validator   *validator.Validate
}

func NewTeamHandler(teamService TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		validator:   validator,
	}
}

// RequestJoin godoc
// @Summary Request to team up with a member
// @Description Record a pending team request on the target member. Self-requests and unknown targets are silently ignored.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.JoinTeamRequest true "Join request"
// @Success 204 "Request recorded (or silently ignored)"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /team/request [post]
func (h *TeamHandler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	requesterID, _ := middleware.MemberIDFromContext(r.Context())

	var req request.JoinTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	if err := h.teamService.RequestJoin(r.Context(), requesterID, req.TargetID); err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AcceptRequest godoc
// @Summary Accept a pending team request
// @Description Mark the notification accepted and link both members into each other's team
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.AcceptTeamRequest true "Accept request"
// @Success 204 "Request accepted (or silently ignored)"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /team/accept [post]
func (h *TeamHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	accepterID, _ := middleware.MemberIDFromContext(r.Context())

	var req request.AcceptTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	if err := h.teamService.AcceptRequest(r.Context(), accepterID, req.RequesterID); err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTeam godoc
// @Summary List own teammates
// @Description Get the members mutually teamed with the authenticated member
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.TeamResponse "Teammates retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /team [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFromContext(r.Context())

	teammates, err := h.teamService.Teammates(r.Context(), memberID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.TeamResponse{
		Teammates: mapper.MapDomainMembersToSummaryDTO(teammates),
		Count:     len(teammates),
	}

	respondJSON(w, http.StatusOK, resp)
}
