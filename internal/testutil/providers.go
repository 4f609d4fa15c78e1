package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/tickets"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

// StubProvider is a configurable providers.DataProvider. Zero values answer with empty data.
type StubProvider struct {
	Games     []games.Game
	GamesErr  error
	GamesFunc func(q providers.GameQuery) ([]games.Game, error)

	Game    map[int]games.Game
	GameErr error

	Teams    []teams.Team
	TeamsErr error

	Players    []players.Player
	PlayersErr error

	Averages    map[int]players.SeasonAverages
	AveragesErr error

	BoxScore    *games.BoxScore
	BoxScoreErr error

	// Notify is closed on the first FetchGames call.
	Notify chan struct{}

	mu            sync.Mutex
	gameQueries   []providers.GameQuery
	playerQueries []providers.PlayerQuery
	gameCalls     int
}

var _ providers.DataProvider = (*StubProvider)(nil)

func (s *StubProvider) FetchGames(ctx context.Context, q providers.GameQuery) ([]games.Game, error) {
	s.mu.Lock()
	s.gameQueries = append(s.gameQueries, q)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	fn, list, err := s.GamesFunc, s.Games, s.GamesErr
	s.mu.Unlock()

	if fn != nil {
		return fn(q)
	}
	if err != nil {
		return nil, err
	}
	return append([]games.Game(nil), list...), nil
}

func (s *StubProvider) FetchGame(ctx context.Context, id int) (games.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameCalls++
	if s.GameErr != nil {
		return games.Game{}, s.GameErr
	}
	if g, ok := s.Game[id]; ok {
		return g, nil
	}
	return games.Game{}, providers.ErrNotFound
}

func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if s.TeamsErr != nil {
		return nil, s.TeamsErr
	}
	return s.Teams, nil
}

func (s *StubProvider) FetchPlayers(ctx context.Context, q providers.PlayerQuery) ([]players.Player, error) {
	s.mu.Lock()
	s.playerQueries = append(s.playerQueries, q)
	s.mu.Unlock()
	if s.PlayersErr != nil {
		return nil, s.PlayersErr
	}
	out := s.Players
	if q.PerPage > 0 && len(out) > q.PerPage {
		out = out[:q.PerPage]
	}
	return out, nil
}

func (s *StubProvider) FetchSeasonAverages(ctx context.Context, playerID, season int) (players.SeasonAverages, bool, error) {
	if s.AveragesErr != nil {
		return players.SeasonAverages{}, false, s.AveragesErr
	}
	avg, ok := s.Averages[playerID]
	return avg, ok, nil
}

func (s *StubProvider) FetchBoxScore(ctx context.Context, gameID int) (games.BoxScore, error) {
	if s.BoxScoreErr != nil {
		return games.BoxScore{}, s.BoxScoreErr
	}
	if s.BoxScore != nil {
		return *s.BoxScore, nil
	}
	return games.EmptyBoxScore(gameID), nil
}

// GameQueries returns every FetchGames query received.
func (s *StubProvider) GameQueries() []providers.GameQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]providers.GameQuery(nil), s.gameQueries...)
}

// PlayerQueries returns every FetchPlayers query received.
func (s *StubProvider) PlayerQueries() []providers.PlayerQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]providers.PlayerQuery(nil), s.playerQueries...)
}

// GameCalls counts FetchGame calls.
func (s *StubProvider) GameCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameCalls
}

// StubTicketProvider returns Info and records the last query.
type StubTicketProvider struct {
	Info tickets.Info
	Last providers.TicketQuery
}

func (s *StubTicketProvider) FetchTickets(ctx context.Context, q providers.TicketQuery) tickets.Info {
	s.Last = q
	return s.Info
}
