package request

type JoinTeamRequest struct {
	TargetID string `json:"target_id" validate:"required,min=1,max=255"`
}

type AcceptTeamRequest struct {
	RequesterID string `json:"requester_id" validate:"required,min=1,max=255"`
}
