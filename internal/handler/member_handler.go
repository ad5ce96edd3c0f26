package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/dto"
	"github.com/katikarohith/quick-teams/internal/mapper"
	"github.com/katikarohith/quick-teams/internal/middleware"
	"github.com/katikarohith/quick-teams/internal/my_errors"
	"github.com/katikarohith/quick-teams/internal/request"
	"github.com/katikarohith/quick-teams/internal/response"

	"github.com/go-playground/validator/v10"
)

type MemberService interface {
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	UpdateProfile(ctx context.Context, memberID, name, skills, needs, availability string) (*domain.Member, error)
}

type TeamServiceForMember interface {
	Teammates(ctx context.Context, memberID string) ([]domain.Member, error)
	Notifications(ctx context.Context, memberID string) ([]domain.Notification, error)
}

type MemberHandler struct {
	memberService MemberService
	teamService   TeamServiceForMember
	validator     *validator.Validate
}

func NewMemberHandler(memberService MemberService, teamService TeamServiceForMember, validator *validator.Validate) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		teamService:   teamService,
		validator:     validator,
	}
}

// Dashboard godoc
// @Summary Get own dashboard
// @Description Get the authenticated member's profile, teammates and notifications
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.DashboardResponse "Dashboard retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (h *MemberHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFromContext(r.Context())

	member, err := h.memberService.GetMember(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, my_errors.ErrMemberNotFound) {
			respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, my_errors.ErrMemberNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	teammates, err := h.teamService.Teammates(r.Context(), memberID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	notifications, err := h.teamService.Notifications(r.Context(), memberID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.DashboardResponse{
		Member:        mapper.MapDomainMemberToDTO(member),
		Teammates:     mapper.MapDomainMembersToSummaryDTO(teammates),
		Notifications: mapper.MapDomainNotificationsToDTO(notifications),
	}

	respondJSON(w, http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Update name, availability and comma-separated skill/need tags
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} response.MemberResponse "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/profile [put]
func (h *MemberHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFromContext(r.Context())

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	member, err := h.memberService.UpdateProfile(r.Context(), memberID, req.Name, req.Skills, req.Needs, req.Availability)
	if err != nil {
		if errors.Is(err, my_errors.ErrMemberNotFound) {
			respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, my_errors.ErrMemberNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.MemberResponse{
		Member: mapper.MapDomainMemberToDTO(member),
	}

	respondJSON(w, http.StatusOK, resp)
}

// Notifications godoc
// @Summary List own notifications
// @Description Get the authenticated member's join-request notifications
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.NotificationsResponse "Notifications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications [get]
func (h *MemberHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFromContext(r.Context())

	notifications, err := h.teamService.Notifications(r.Context(), memberID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.NotificationsResponse{
		Notifications: mapper.MapDomainNotificationsToDTO(notifications),
		Count:         len(notifications),
	}

	respondJSON(w, http.StatusOK, resp)
}
