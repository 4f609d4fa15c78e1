package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval between upstream calls.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	logger   *slog.Logger
	name     string

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewRateLimitedProvider returns a DataProvider that spaces calls at least interval apart.
// The first call is not delayed.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger, name string) DataProvider {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		name:     name,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return ErrProviderUnavailable
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if delay := p.last.Add(p.interval).Sub(p.now()); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "rate-limited fetch canceled")
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	p.last = p.now()
	return nil
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, q GameQuery) ([]games.Game, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchGames(ctx, q)
}

func (p *rateLimitedProvider) FetchGame(ctx context.Context, id int) (games.Game, error) {
	if err := p.wait(ctx); err != nil {
		return games.Game{}, err
	}
	return p.next.FetchGame(ctx, id)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx)
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context, q PlayerQuery) ([]players.Player, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx, q)
}

func (p *rateLimitedProvider) FetchSeasonAverages(ctx context.Context, playerID, season int) (players.SeasonAverages, bool, error) {
	if err := p.wait(ctx); err != nil {
		return players.SeasonAverages{}, false, err
	}
	return p.next.FetchSeasonAverages(ctx, playerID, season)
}

func (p *rateLimitedProvider) FetchBoxScore(ctx context.Context, gameID int) (games.BoxScore, error) {
	if err := p.wait(ctx); err != nil {
		return games.BoxScore{}, err
	}
	return p.next.FetchBoxScore(ctx, gameID)
}
