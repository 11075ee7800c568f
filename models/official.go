package models

type Official struct {
	OrganizationID string  `json:"organizationId"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Service        string  `json:"service"`
	ImageURL       *string `json:"imageUrl"`
}
