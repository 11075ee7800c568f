package models

type News struct {
	OrganizationID string  `json:"organizationId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Date           string  `json:"date"`
	Category       string  `json:"category"`
	ImageURL       *string `json:"imageUrl"`
}
