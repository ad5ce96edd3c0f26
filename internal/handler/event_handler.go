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

type EventService interface {
	ListEvents(ctx context.Context) []domain.Event
	JoinEvent(ctx context.Context, memberID, eventID string) error
}

type MemberServiceForEvent interface {
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
}

type EventHandler struct {
	eventService  EventService
	memberService MemberServiceForEvent
	validator     *validator.Validate
}

func NewEventHandler(eventService EventService, memberService MemberServiceForEvent, validator *validator.Validate) *EventHandler {
	return &EventHandler{
		eventService:  eventService,
		memberService: memberService,
		validator:     validator,
	}
}

// ListEvents godoc
// @Summary List community events
// @Description Get the community events catalog with joined flags for the authenticated member
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.EventsResponse "Events retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /community [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFromContext(r.Context())

	var joinedEvents []string
	if member, err := h.memberService.GetMember(r.Context(), memberID); err == nil {
		joinedEvents = member.JoinedEvents
	}

	events := h.eventService.ListEvents(r.Context())

	resp := response.EventsResponse{
		Events: mapper.MapDomainEventsToDTO(events, joinedEvents),
		Count:  len(events),
	}

	respondJSON(w, http.StatusOK, resp)
}

// JoinEvent godoc
// @Summary Join a community event
// @Description Add the event to the member's joined set; repeat joins are ignored
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.JoinEventRequest true "Join event request"
// @Success 204 "Event joined (or already joined)"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /community/join [post]
func (h *EventHandler) JoinEvent(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFromContext(r.Context())

	var req request.JoinEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	if err := h.eventService.JoinEvent(r.Context(), memberID, req.EventID); err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
