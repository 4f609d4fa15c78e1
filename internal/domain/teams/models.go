package teams

import "github.com/preston-bernstein/nba-predictor-service/internal/domain/games"

// Team is the normalized team shape, decorated with CDN logo URLs.
type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	LogoURL      string `json:"logo_url"`
	LogoURLSmall string `json:"logo_url_small"`
}

// Listing is the payload returned by /teams.
type Listing struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
	Teams  any    `json:"teams"`
}

// Logo is the payload returned by /teams/{abbr}/logo.
type Logo struct {
	Team    string `json:"team"`
	Size    string `json:"size"`
	LogoURL string `json:"logo_url"`
}

// Schedule is the payload returned by /teams/{id}/upcoming.
type Schedule struct {
	TeamID int          `json:"team_id"`
	Count  int          `json:"count"`
	Games  []games.Game `json:"games"`
}
