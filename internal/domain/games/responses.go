package games

import "github.com/preston-bernstein/nba-predictor-service/internal/domain/players"

// Source names which tier answered a games listing.
type Source string

const (
	SourceAPI    Source = "balldontlie_api"
	SourceCache  Source = "cache"
	SourceStatic Source = "static"
)

// Listing is the payload returned by /games.
type Listing struct {
	Source Source `json:"source"`
	Count  int    `json:"count"`
	Games  []Game `json:"games"`
}

// NewListing builds a Listing with the count derived from games.
func NewListing(source Source, games []Game) Listing {
	if games == nil {
		games = []Game{}
	}
	return Listing{Source: source, Count: len(games), Games: games}
}

// TodayListing is the payload returned by /games/today.
type TodayListing struct {
	Count int    `json:"count"`
	Games []Game `json:"games"`
}

// PastListing is the payload returned by /games/past.
type PastListing struct {
	Count    int    `json:"count"`
	DaysBack int    `json:"days_back"`
	Games    []Game `json:"games"`
}

// TeamDetails groups roster and schedule for one side of a game.
type TeamDetails struct {
	Abbreviation  string           `json:"abbreviation"`
	Name          string           `json:"name"`
	LogoURL       string           `json:"logo_url"`
	LogoURLSmall  string           `json:"logo_url_small"`
	Roster        []players.Player `json:"roster"`
	UpcomingGames []Game           `json:"upcoming_games"`
}

// Details is the payload returned by /games/{id}/details.
type Details struct {
	Game            Game        `json:"game"`
	HomeTeamDetails TeamDetails `json:"home_team_details"`
	AwayTeamDetails TeamDetails `json:"away_team_details"`
}
