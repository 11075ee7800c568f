package models

type Meeting struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organizationId"`
	Title          string        `json:"title"`
	Date           string        `json:"date"`
	Location       string        `json:"location"`
	Attendees      int           `json:"attendees"`
	Minutes        string        `json:"minutes"`
	ActionPoints   []ActionPoint `json:"actionPoints"`
	Fines          []Fine        `json:"fines"`
}

type ActionPoint struct {
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

type Fine struct {
	MemberName string  `json:"memberName"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason"`
}
