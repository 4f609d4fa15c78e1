package games

// PlayerLine is one player's box score row.
type PlayerLine struct {
	PlayerID     int    `json:"player_id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Minutes      string `json:"minutes"`
	Points       int    `json:"points"`
	Rebounds     int    `json:"rebounds"`
	Assists      int    `json:"assists"`
	Steals       int    `json:"steals"`
	Blocks       int    `json:"blocks"`
	Turnovers    int    `json:"turnovers"`
	FGMade       int    `json:"fg_made"`
	FGAttempted  int    `json:"fg_attempted"`
	FG3Made      int    `json:"fg3_made"`
	FG3Attempted int    `json:"fg3_attempted"`
	FTMade       int    `json:"ft_made"`
	FTAttempted  int    `json:"ft_attempted"`
	HeadshotURL  string `json:"headshot_url"`
}

// BoxScore is the payload returned by /games/{id}/boxscore.
type BoxScore struct {
	GameID      int          `json:"game_id"`
	HomeTeam    string       `json:"home_team,omitempty"`
	AwayTeam    string       `json:"away_team,omitempty"`
	HomePlayers []PlayerLine `json:"home_players"`
	AwayPlayers []PlayerLine `json:"away_players"`
}

// EmptyBoxScore returns a box score with empty player lists.
func EmptyBoxScore(gameID int) BoxScore {
	return BoxScore{GameID: gameID, HomePlayers: []PlayerLine{}, AwayPlayers: []PlayerLine{}}
}
