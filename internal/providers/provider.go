package providers

import (
	"context"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/tickets"
)

// GameQuery filters a games listing. Dates are YYYY-MM-DD; empty values are not sent upstream.
// PerPage > 0 asks for a single page of that size instead of walking every page.
type GameQuery struct {
	StartDate string
	EndDate   string
	TeamIDs   []int
	PerPage   int
}

// PlayerQuery filters a players listing.
type PlayerQuery struct {
	Search  string
	TeamIDs []int
	PerPage int
}

// TicketQuery identifies an event on a ticket marketplace.
type TicketQuery struct {
	HomeTeam string
	AwayTeam string
	GameDate string
}

// GameProvider defines how upstream game data is fetched and normalized.
type GameProvider interface {
	FetchGames(ctx context.Context, q GameQuery) ([]games.Game, error)
	// FetchGame returns the full single-game record or ErrNotFound.
	FetchGame(ctx context.Context, id int) (games.Game, error)
}

// TeamProvider fetches normalized teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// PlayerProvider fetches normalized players and their season averages.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, q PlayerQuery) ([]players.Player, error)
	// FetchSeasonAverages returns ok=false when the player has no averages for the season.
	FetchSeasonAverages(ctx context.Context, playerID, season int) (players.SeasonAverages, bool, error)
}

// BoxScoreProvider fetches per-player stat lines for a game.
type BoxScoreProvider interface {
	FetchBoxScore(ctx context.Context, gameID int) (games.BoxScore, error)
}

// DataProvider combines all sports-data capabilities.
type DataProvider interface {
	GameProvider
	TeamProvider
	PlayerProvider
	BoxScoreProvider
}

// TicketProvider looks up marketplace listings for a game. Failures are reported inside the
// returned Info rather than as errors.
type TicketProvider interface {
	FetchTickets(ctx context.Context, q TicketQuery) tickets.Info
}
