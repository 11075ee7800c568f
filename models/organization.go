package models

type Organization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
