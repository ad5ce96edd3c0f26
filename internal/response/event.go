package response

import "github.com/katikarohith/quick-teams/internal/dto"

type EventsResponse struct {
	Events []dto.EventDTO `json:"events"`
	Count  int            `json:"count"`
}
