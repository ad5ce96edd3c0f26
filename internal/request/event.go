package request

type JoinEventRequest struct {
	EventID string `json:"event_id" validate:"required,min=1,max=255"`
}
