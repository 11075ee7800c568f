package models

type User struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Password        string   `json:"-"`
	Name            string   `json:"name"`
	OrganizationIDs []string `json:"organizationIds,omitempty"`
}

// BelongsTo reports whether the user is a member of the given organization.
func (u User) BelongsTo(organizationID string) bool {
	for _, id := range u.OrganizationIDs {
		if id == organizationID {
			return true
		}
	}
	return false
}
