package domain

type Statistics struct {
	TotalMembers     int `json:"total_members"`
	PendingRequests  int `json:"pending_requests"`
	AcceptedRequests int `json:"accepted_requests"`
	TeamedPairs      int `json:"teamed_pairs"`
	EventJoins       int `json:"event_joins"`
}
