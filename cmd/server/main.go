package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-predictor-service/internal/config"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	dotEnvErr := config.LoadDotEnv("")
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nba-predictor-service",
		Version: appVersion,
	})
	if dotEnvErr != nil {
		logging.Warn(logger, "failed to read .env file", "err", dotEnvErr)
	}
	logging.Info(logger, "configuration loaded",
		logging.FieldProvider, cfg.Provider,
		"port", cfg.Port,
		"api_key_configured", cfg.Balldontlie.APIKeyConfigured(),
		"poll_enabled", cfg.PollEnabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
