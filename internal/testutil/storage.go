package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/results"
)

// WriteFallback writes list as a bare JSON array to a temp games file and returns its path.
func WriteFallback(t *testing.T, list []games.Game) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.json")
	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("failed to encode fallback games: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write fallback games: %v", err)
	}
	return path
}

// NewResultsStore opens an in-memory results store closed at test cleanup.
func NewResultsStore(t *testing.T) *results.Store {
	t.Helper()
	s, err := results.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open results store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
