package request

// UpdateProfileRequest carries skills and needs as comma-separated tag lists.
type UpdateProfileRequest struct {
	Name         string `json:"name" validate:"max=255"`
	Skills       string `json:"skills" validate:"max=2000"`
	Needs        string `json:"needs" validate:"max=2000"`
	Availability string `json:"availability" validate:"max=255"`
}
