package server

import (
	"context"

	"github.com/preston-bernstein/nba-predictor-service/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// SnapshotSyncer is the scheduled fallback-file refresher.
type SnapshotSyncer interface {
	Start(ctx context.Context) error
	Stop()
}
