package models

// Member statuses. Only active members are eligible for hosting duty.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusDismissed = "dismissed"
)

type Member struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	IsPaid         bool   `json:"isPaid"`
	Status         string `json:"status"`
	Role           string `json:"role"`
	Service        string `json:"service"`
}
