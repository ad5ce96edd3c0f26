package dto

import "time"

type MemberDTO struct {
	MemberID     string   `json:"member_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Availability string   `json:"availability"`
	Skills       []string `json:"skills"`
	Needs        []string `json:"needs"`
	JoinedEvents []string `json:"joined_events"`
}

// MemberSummaryDTO is the candidate shape exposed by the matchmaking views.
type MemberSummaryDTO struct {
	MemberID     string   `json:"member_id"`
	Name         string   `json:"name"`
	Availability string   `json:"availability"`
	Skills       []string `json:"skills"`
	Needs        []string `json:"needs"`
}

type ScoredCandidateDTO struct {
	Member MemberSummaryDTO `json:"member"`
	Score  int              `json:"score"`
}

type NotificationDTO struct {
	ID        int64     `json:"id"`
	OriginID  string    `json:"origin_id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
