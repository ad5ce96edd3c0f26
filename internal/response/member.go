package response

import "github.com/katikarohith/quick-teams/internal/dto"

type MemberResponse struct {
	Member dto.MemberDTO `json:"member"`
}

// DashboardResponse is the member's own view: profile, team, notifications.
type DashboardResponse struct {
	Member        dto.MemberDTO          `json:"member"`
	Teammates     []dto.MemberSummaryDTO `json:"teammates"`
	Notifications []dto.NotificationDTO  `json:"notifications"`
}

type NotificationsResponse struct {
	Notifications []dto.NotificationDTO `json:"notifications"`
	Count         int                   `json:"count"`
}
