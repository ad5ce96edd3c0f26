package response

import "github.com/katikarohith/quick-teams/internal/dto"

type TeamResponse struct {
	Teammates []dto.MemberSummaryDTO `json:"teammates"`
	Count     int                    `json:"count"`
}
