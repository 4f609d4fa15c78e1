package server

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/config"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers/fixture"
)

func TestBuildSnapshotsRespectsConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Data: config.DataConfig{GamesPath: filepath.Join(dir, "games.json")},
		Snapshots: config.SnapshotConfig{
			Enabled:       false,
			Dir:           filepath.Join(dir, "snapshots"),
			RetentionDays: 1,
		},
	}
	components := buildSnapshots(cfg, fixture.New(), time.UTC, nil, nil)
	if components.fallback == nil || components.writer == nil || components.syncer == nil {
		t.Fatalf("expected snapshots components to be initialized")
	}
	if components.writer.BasePath() != cfg.Snapshots.Dir {
		t.Fatalf("expected writer rooted at %s, got %s", cfg.Snapshots.Dir, components.writer.BasePath())
	}
	if components.writer.FallbackPath() != cfg.Data.GamesPath || components.fallback.Path() != cfg.Data.GamesPath {
		t.Fatalf("expected writer and store to share the fallback file")
	}
}
