package models

import "time"

// HostingPeriod is a 14-day rotation window and the members assigned to
// host it. It is computed on demand and never stored.
type HostingPeriod struct {
	ID                 string    `json:"id"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	Hosts              []Member  `json:"hosts"`
	AllMembers         []Member  `json:"allMembers"`
	ContributionAmount float64   `json:"contributionAmount"`
}
