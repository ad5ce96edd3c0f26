package domain

// Event is one entry of the read-only community events catalog.
// The catalog is injected at startup and identical across requests.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Desc  string `json:"desc"`
}
