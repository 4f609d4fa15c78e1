package snapshots

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

func simpleGames(date string) []games.Game {
	return []games.Game{
		{ID: 2, HomeTeam: "LAL", AwayTeam: "GSW", GameDate: date, Status: "scheduled"},
		{ID: 1, HomeTeam: "BOS", AwayTeam: "MIA", GameDate: date, Status: "scheduled"},
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	path := filepath.Join(w.BasePath(), "games", date+".json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

type fakeProvider struct {
	mu      sync.Mutex
	queries []providers.GameQuery
	games   []games.Game
	err     error
}

func (p *fakeProvider) FetchGames(ctx context.Context, q providers.GameQuery) ([]games.Game, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = append(p.queries, q)
	return p.games, p.err
}

func (p *fakeProvider) FetchGame(ctx context.Context, id int) (games.Game, error) {
	return games.Game{}, errors.New("not used")
}

func (p *fakeProvider) Queries() []providers.GameQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]providers.GameQuery(nil), p.queries...)
}
