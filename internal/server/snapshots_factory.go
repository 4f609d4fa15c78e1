package server

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/config"
	"github.com/preston-bernstein/nba-predictor-service/internal/metrics"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
	"github.com/preston-bernstein/nba-predictor-service/internal/snapshots"
)

type snapshotComponents struct {
	fallback *snapshots.FSStore
	writer   *snapshots.Writer
	syncer   *snapshots.Syncer
}

func buildSnapshots(cfg config.Config, provider providers.GameProvider, loc *time.Location, logger *slog.Logger, recorder *metrics.Recorder) snapshotComponents {
	writer := snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Data.GamesPath, cfg.Snapshots.RetentionDays)
	syncer := snapshots.NewSyncer(provider, writer, snapshots.SyncConfig{
		Enabled:    cfg.Snapshots.Enabled,
		Schedule:   cfg.Snapshots.Schedule,
		FutureDays: cfg.Snapshots.FutureDays,
		Location:   loc,
	}, logger, recorder)

	return snapshotComponents{
		fallback: snapshots.NewFSStore(cfg.Data.GamesPath),
		writer:   writer,
		syncer:   syncer,
	}
}
