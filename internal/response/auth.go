package response

import "github.com/katikarohith/quick-teams/internal/dto"

type AuthResponse struct {
	Token  string        `json:"token"`
	Member dto.MemberDTO `json:"member"`
}
