package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-predictor-service/internal/config"
	"github.com/preston-bernstein/nba-predictor-service/internal/metrics"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

// wrap spaces upstream calls to respect the free-tier quota, then retries transient failures.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider, base)
	limited := providers.NewRateLimitedProvider(base, cfg.Balldontlie.MinInterval, f.logger, name)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, name, cfg.Balldontlie.RetryAttempts, 0)
}
