package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a DataProvider with exponential backoff and per-attempt metrics.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, q GameQuery) ([]games.Game, error) {
	return retry(ctx, r, "games", func(ctx context.Context) ([]games.Game, error) {
		return r.inner.FetchGames(ctx, q)
	})
}

func (r *retryingProvider) FetchGame(ctx context.Context, id int) (games.Game, error) {
	return retry(ctx, r, "game", func(ctx context.Context) (games.Game, error) {
		return r.inner.FetchGame(ctx, id)
	})
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return retry(ctx, r, "teams", r.inner.FetchTeams)
}

func (r *retryingProvider) FetchPlayers(ctx context.Context, q PlayerQuery) ([]players.Player, error) {
	return retry(ctx, r, "players", func(ctx context.Context) ([]players.Player, error) {
		return r.inner.FetchPlayers(ctx, q)
	})
}

type seasonAveragesResult struct {
	avg players.SeasonAverages
	ok  bool
}

func (r *retryingProvider) FetchSeasonAverages(ctx context.Context, playerID, season int) (players.SeasonAverages, bool, error) {
	res, err := retry(ctx, r, "season_averages", func(ctx context.Context) (seasonAveragesResult, error) {
		avg, ok, err := r.inner.FetchSeasonAverages(ctx, playerID, season)
		return seasonAveragesResult{avg: avg, ok: ok}, err
	})
	return res.avg, res.ok, err
}

func (r *retryingProvider) FetchBoxScore(ctx context.Context, gameID int) (games.BoxScore, error) {
	return retry(ctx, r, "box_score", func(ctx context.Context) (games.BoxScore, error) {
		return r.inner.FetchBoxScore(ctx, gameID)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, operation string, fn func(context.Context) (T, error)) (T, error) {
	policy := &retryAfterBackOff{delegate: r.newBackOff()}
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	op := func() (T, error) {
		attempt++
		start := time.Now()
		res, err := fn(ctx)
		r.recorder.RecordProviderAttempt(r.name, operation, time.Since(start), err)
		if err == nil {
			return res, nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.name, rl.RetryAfter)
			policy.retryAfter = rl.RetryAfter
		}
		if IsPermanent(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}
	notify := func(err error, wait time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			"operation", operation, "attempt", attempt, "max_attempts", r.maxAttempts, "wait", wait, "err", err)
	}

	res, err := backoff.RetryNotifyWithData(op, b, notify)
	if err != nil && !IsPermanent(err) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			"operation", operation, "attempts", attempt, "err", err)
	}
	return res, err
}

// retryAfterBackOff prefers an upstream Retry-After hint over the delegate's next interval.
type retryAfterBackOff struct {
	delegate   backoff.BackOff
	retryAfter time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.delegate.NextBackOff()
	if b.retryAfter > 0 {
		if next == backoff.Stop {
			return next
		}
		next = b.retryAfter
		b.retryAfter = 0
	}
	return next
}

func (b *retryAfterBackOff) Reset() {
	b.retryAfter = 0
	b.delegate.Reset()
}
