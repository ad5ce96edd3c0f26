package dto

type EventDTO struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Desc   string `json:"desc"`
	Joined bool   `json:"joined"`
}
