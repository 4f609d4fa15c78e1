package snapshots

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/metrics"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
	"github.com/preston-bernstein/nba-predictor-service/internal/timeutil"
)

const (
	defaultSchedule   = "0 6 * * *"
	defaultFutureDays = 7
	syncTimeout       = 5 * time.Minute
)

// ErrNoGames is returned when the upstream window is empty; the fallback file is left untouched.
var ErrNoGames = errors.New("no games returned for snapshot window")

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled    bool
	Schedule   string
	FutureDays int
	Location   *time.Location
}

// Result summarizes one sync run.
type Result struct {
	Date    string `json:"date"`
	Start   string `json:"start_date"`
	End     string `json:"end_date"`
	Count   int    `json:"count"`
	Changed bool   `json:"changed"`
}

// Syncer refreshes the fallback file on a cron schedule.
type Syncer struct {
	provider providers.GameProvider
	writer   *Writer
	cfg      SyncConfig
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	mu     sync.Mutex
	cron   *cron.Cron
	runMu  sync.Mutex
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(provider providers.GameProvider, writer *Writer, cfg SyncConfig, logger *slog.Logger, recorder *metrics.Recorder) *Syncer {
	if cfg.Schedule == "" {
		cfg.Schedule = defaultSchedule
	}
	if cfg.FutureDays <= 0 {
		cfg.FutureDays = defaultFutureDays
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Syncer{
		provider: provider,
		writer:   writer,
		cfg:      cfg,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Start registers the cron job and, when the fallback file is missing, syncs once in the
// background. It is a no-op when disabled or already started.
func (s *Syncer) Start(ctx context.Context) error {
	if s == nil || !s.cfg.Enabled || s.writer == nil || s.provider == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	c := cron.New(cron.WithLocation(s.cfg.Location))
	if _, err := c.AddFunc(s.cfg.Schedule, func() { s.scheduled(runCtx) }); err != nil {
		cancel()
		return fmt.Errorf("invalid snapshot schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron = c
	s.cancel = cancel
	c.Start()

	logging.Info(s.logger, "snapshot sync scheduled",
		"schedule", s.cfg.Schedule,
		"timezone", s.cfg.Location.String(),
		"future_days", s.cfg.FutureDays,
	)

	if !fileExists(s.writer.FallbackPath()) {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.scheduled(runCtx)
		}()
	}
	return nil
}

// Stop halts the schedule and waits for in-flight runs.
func (s *Syncer) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	c, cancel := s.cron, s.cancel
	s.cron, s.cancel = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if c != nil {
		<-c.Stop().Done()
	}
	s.wg.Wait()
}

func (s *Syncer) scheduled(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()
	if _, err := s.SyncOnce(ctx); err != nil {
		logging.Warn(s.logger, "snapshot sync failed", logging.FieldError, err)
	}
}

// SyncOnce fetches upcoming games for [today, today+FutureDays] and writes them.
func (s *Syncer) SyncOnce(ctx context.Context) (Result, error) {
	if s == nil || s.writer == nil || s.provider == nil {
		return Result{}, providers.ErrProviderUnavailable
	}
	s.runMu.Lock()
	defer s.runMu.Unlock()

	start := time.Now()
	now := s.now()
	from, to := timeutil.Window(now, s.cfg.Location, 0, s.cfg.FutureDays)
	result := Result{Date: from, Start: from, End: to}
	logging.Debug(s.logger, "snapshot window", "start_date", from, "end_date", to)

	list, err := s.provider.FetchGames(ctx, providers.GameQuery{StartDate: from, EndDate: to})
	if err != nil {
		s.recorder.RecordSnapshotWrite(0, err)
		return result, err
	}
	if len(list) == 0 {
		s.recorder.RecordSnapshotWrite(0, ErrNoGames)
		return result, ErrNoGames
	}

	changed, err := s.writer.WriteGames(from, list)
	s.recorder.RecordSnapshotWrite(len(list), err)
	if err != nil {
		return result, err
	}
	result.Count = len(list)
	result.Changed = changed
	logging.Info(s.logger, "snapshot written",
		logging.FieldDate, from,
		logging.FieldCount, len(list),
		"changed", changed,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return result, nil
}

func fileExists(path string) bool {
	return NewFSStore(path).Exists()
}
