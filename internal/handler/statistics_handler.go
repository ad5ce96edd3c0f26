package handler

import (
	"context"
	"net/http"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/dto"
	"github.com/katikarohith/quick-teams/internal/mapper"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

type StatisticsHandler struct {
	statisticsService StatisticsService
}

func NewStatisticsHandler(statisticsService StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// GetStatistics godoc
// @Summary Get community statistics
// @Description Get aggregate counts for members, join requests, teamed pairs and event joins
// @Tags Statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StatisticsResponse "Statistics retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /statistics [get]
func (h *StatisticsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.GetStatistics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainStatisticsToDTO(stats))
}
