package domain

import "time"

const (
	NotificationKindTeamRequest = "team-request"

	NotificationStatusPending  = "pending"
	NotificationStatusAccepted = "accepted"
	NotificationStatusRejected = "rejected"
)

type Member struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MemberID     string    `json:"member_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Availability string    `json:"availability"`
	Skills       []string  `json:"skills"`
	Needs        []string  `json:"needs"`
	JoinedEvents []string  `json:"joined_events"`
}

// Notification is a directed team-join request stored on the target member.
// Records are append-only; status is the only mutable field.
type Notification struct {
	CreatedAt time.Time `json:"created_at"`
	OriginID  string    `json:"origin_id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	ID        int64     `json:"id"`
}
