package players

// Player is the normalized player shape. Roster entries leave the biographical fields empty.
type Player struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	JerseyNumber string `json:"jersey_number"`
	College      string `json:"college,omitempty"`
	Country      string `json:"country,omitempty"`
	DraftYear    *int   `json:"draft_year,omitempty"`
	DraftRound   *int   `json:"draft_round,omitempty"`
	DraftNumber  *int   `json:"draft_number,omitempty"`
	Team         string `json:"team,omitempty"`
	TeamName     string `json:"team_name,omitempty"`
	TeamID       int    `json:"-"`
	HeadshotURL  string `json:"headshot_url"`
}

// SeasonAverages is the payload returned by /players/{id}.
type SeasonAverages struct {
	PlayerID    int     `json:"player_id"`
	Season      int     `json:"season"`
	GamesPlayed int     `json:"games_played"`
	Minutes     string  `json:"minutes"`
	Points      float64 `json:"points"`
	Rebounds    float64 `json:"rebounds"`
	Assists     float64 `json:"assists"`
	Steals      float64 `json:"steals"`
	Blocks      float64 `json:"blocks"`
	Turnovers   float64 `json:"turnovers"`
	FGPct       float64 `json:"fg_pct"`
	FG3Pct      float64 `json:"fg3_pct"`
	FTPct       float64 `json:"ft_pct"`
	HeadshotURL string  `json:"headshot_url"`
}

// Roster is the payload returned by /teams/{id}/roster.
type Roster struct {
	TeamID  int      `json:"team_id"`
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}

// SearchResult is the payload returned by /players.
type SearchResult struct {
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}
