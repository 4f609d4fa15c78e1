package games

import (
	"errors"
	"strings"
)

// GameStatus is the normalized lifecycle state used for filtering. Payloads carry the upstream status string.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// ErrGameNotFound is returned when no source knows the requested game.
var ErrGameNotFound = errors.New("game not found")

// DefaultSeason is assumed for fallback games that carry no season.
const DefaultSeason = 2025

// Game is the flat game record exposed by the API.
type Game struct {
	ID int `json:"id"`

	HomeTeam           string `json:"home_team"`
	HomeTeamName       string `json:"home_team_name"`
	HomeTeamID         int    `json:"home_team_id,omitempty"`
	HomeTeamCity       string `json:"home_team_city,omitempty"`
	HomeTeamConference string `json:"home_team_conference,omitempty"`
	HomeTeamDivision   string `json:"home_team_division,omitempty"`
	HomeTeamLogo       string `json:"home_team_logo"`
	HomeTeamLogoSmall  string `json:"home_team_logo_small,omitempty"`

	AwayTeam           string `json:"away_team"`
	AwayTeamName       string `json:"away_team_name"`
	AwayTeamID         int    `json:"away_team_id,omitempty"`
	AwayTeamCity       string `json:"away_team_city,omitempty"`
	AwayTeamConference string `json:"away_team_conference,omitempty"`
	AwayTeamDivision   string `json:"away_team_division,omitempty"`
	AwayTeamLogo       string `json:"away_team_logo"`
	AwayTeamLogoSmall  string `json:"away_team_logo_small,omitempty"`

	GameDate      string `json:"game_date"`
	GameTime      string `json:"game_time,omitempty"`
	Status        string `json:"status"`
	Period        int    `json:"period,omitempty"`
	TimeRemaining string `json:"time_remaining,omitempty"`
	Postseason    bool   `json:"postseason,omitempty"`
	Season        int    `json:"season,omitempty"`
	HomeScore     int    `json:"home_score"`
	AwayScore     int    `json:"away_score"`

	Winner     string `json:"winner,omitempty"`
	WinnerLogo string `json:"winner_logo,omitempty"`

	Tickets *TicketLinks `json:"tickets,omitempty"`
}

// TicketLinks is the placeholder attached to single-game payloads.
type TicketLinks struct {
	Available             bool   `json:"available"`
	Note                  string `json:"note"`
	TicketmasterSearchURL string `json:"ticketmaster_search_url"`
	SeatGeekSearchURL     string `json:"seatgeek_search_url"`
}

// NormalizeStatus maps an upstream status string to a GameStatus.
func NormalizeStatus(status string) GameStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "final", "ended":
		return StatusFinal
	case "in progress", "halftime", "end of period":
		return StatusInProgress
	case "postponed":
		return StatusPostponed
	case "canceled", "cancelled":
		return StatusCanceled
	default:
		return StatusScheduled
	}
}

// IsFinal reports whether the game's status is final.
func (g Game) IsFinal() bool {
	return NormalizeStatus(g.Status) == StatusFinal
}

// HomeWon reports whether the home side outscored the away side.
func (g Game) HomeWon() bool {
	return g.HomeScore > g.AwayScore
}

// Matchup formats the game as "{away} @ {home}".
func (g Game) Matchup() string {
	return g.AwayTeam + " @ " + g.HomeTeam
}
