package providers

import (
	"context"
	"errors"
	"sync"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
)

// flakeyProvider fails the first failures calls of every operation with err.
type flakeyProvider struct {
	mu       sync.Mutex
	failures int
	err      error
	calls    int
}

func (f *flakeyProvider) attempt() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return f.err
		}
		return errors.New("boom")
	}
	return nil
}

func (f *flakeyProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *flakeyProvider) FetchGames(ctx context.Context, q GameQuery) ([]games.Game, error) {
	if err := f.attempt(); err != nil {
		return nil, err
	}
	return []games.Game{{ID: 1}}, nil
}

func (f *flakeyProvider) FetchGame(ctx context.Context, id int) (games.Game, error) {
	if err := f.attempt(); err != nil {
		return games.Game{}, err
	}
	return games.Game{ID: id}, nil
}

func (f *flakeyProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := f.attempt(); err != nil {
		return nil, err
	}
	return []teams.Team{{ID: 2, Abbreviation: "BOS"}}, nil
}

func (f *flakeyProvider) FetchPlayers(ctx context.Context, q PlayerQuery) ([]players.Player, error) {
	if err := f.attempt(); err != nil {
		return nil, err
	}
	return []players.Player{{ID: 3}}, nil
}

func (f *flakeyProvider) FetchSeasonAverages(ctx context.Context, playerID, season int) (players.SeasonAverages, bool, error) {
	if err := f.attempt(); err != nil {
		return players.SeasonAverages{}, false, err
	}
	return players.SeasonAverages{PlayerID: playerID, Season: season}, true, nil
}

func (f *flakeyProvider) FetchBoxScore(ctx context.Context, gameID int) (games.BoxScore, error) {
	if err := f.attempt(); err != nil {
		return games.BoxScore{}, err
	}
	return games.EmptyBoxScore(gameID), nil
}

var _ DataProvider = (*flakeyProvider)(nil)
