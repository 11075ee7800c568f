package models

type SoccerMatch struct {
	MatchDay          string       `json:"matchDay"`
	HomeTeam          string       `json:"homeTeam"`
	AwayTeam          string       `json:"awayTeam"`
	HomeScore         int          `json:"homeScore"`
	AwayScore         int          `json:"awayScore"`
	Referee           string       `json:"referee"`
	AssistantReferee1 string       `json:"assistantReferee1"`
	AssistantReferee2 string       `json:"assistantReferee2"`
	Goals             []MatchEvent `json:"goals"`
	Assists           []MatchEvent `json:"assists"`
	YellowCards       []CardEvent  `json:"yellowCards"`
	RedCards          []CardEvent  `json:"redCards"`
}

type MatchEvent struct {
	PlayerName string `json:"playerName"`
	Minute     string `json:"minute"`
	Team       string `json:"team"`
}

type CardEvent struct {
	PlayerName string `json:"playerName"`
	Minute     string `json:"minute"`
	Team       string `json:"team"`
	Reason     string `json:"reason"`
}
