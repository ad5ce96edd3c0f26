package response

import "github.com/katikarohith/quick-teams/internal/dto"

type MatchResponse struct {
	Mode    string                   `json:"mode"`
	Results []dto.ScoredCandidateDTO `json:"results"`
	Count   int                      `json:"count"`
	Message string                   `json:"message,omitempty"`
}
