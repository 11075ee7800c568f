package models

type Constitution struct {
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	Articles         []Article `json:"articles"`
	Adopted          string    `json:"adopted"`
	LastAmended      string    `json:"lastAmended"`
}

type Article struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}
