package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-predictor-service/internal/config"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers/seatgeek"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch normalizeProviderName(cfg.Provider, nil) {
	case "fixture":
		return fixture.New()
	case "balldontlie":
		if !cfg.Balldontlie.APIKeyConfigured() {
			logging.Warn(logger, "BALL_API_KEY not set, upstream calls will be rejected", logging.FieldProvider, "balldontlie")
		}
		return balldontlie.NewClient(balldontlie.Config{
			BaseURL:  cfg.Balldontlie.BaseURL,
			APIKey:   cfg.Balldontlie.APIKey,
			MaxPages: cfg.Balldontlie.MaxPages,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return fixture.New()
	}
}

func selectTicketProvider(cfg config.Config, logger *slog.Logger) providers.TicketProvider {
	return seatgeek.NewClient(seatgeek.Config{
		BaseURL:  cfg.SeatGeek.BaseURL,
		ClientID: cfg.SeatGeek.ClientID,
		Logger:   logger,
	})
}
