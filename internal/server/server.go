package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/app/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/predictions"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/config"
	httpserver "github.com/preston-bernstein/nba-predictor-service/internal/http"
	"github.com/preston-bernstein/nba-predictor-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-predictor-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/metrics"
	"github.com/preston-bernstein/nba-predictor-service/internal/model"
	"github.com/preston-bernstein/nba-predictor-service/internal/poller"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
	"github.com/preston-bernstein/nba-predictor-service/internal/results"
	"github.com/preston-bernstein/nba-predictor-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg                config.Config
	logger             *slog.Logger
	metrics            *metrics.Recorder
	store              *store.MemoryStore
	results            *results.Store
	gamesService       *games.Service
	teamsService       *teams.Service
	playersService     *players.Service
	predictionsService *predictions.Service
	httpServer         httpServer
	metricsServer      httpServer
	poller             Poller
	syncer             SnapshotSyncer
	metricsStop        func(context.Context) error
}

// New constructs a server with default provider, model, storage and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), cfg.Balldontlie.RetryAttempts, 0)
	}

	loc := providers.ResolveTimezone(cfg.Balldontlie.Timezone)
	if loc == nil {
		loc = time.UTC
	}
	bundle := loadModel(cfg.Data.ModelPath, logger)
	history := openResults(cfg.Data.ResultsPath, logger)
	snaps := buildSnapshots(cfg, provider, loc, logger, recorder)
	memoryStore := store.NewMemoryStore()

	// a nil *results.Store must not reach the services as a non-nil interface
	var outcomes games.OutcomeRecorder
	var records predictions.History
	if history != nil {
		outcomes = history
		records = history
	}

	gameSvc := games.NewService(games.Deps{
		Provider: provider,
		Tickets:  selectTicketProvider(cfg, logger),
		Store:    memoryStore,
		Fallback: snaps.fallback,
		Outcomes: outcomes,
		Logger:   logger,
		Metrics:  recorder,
		Location: loc,
	})
	var modelTeams teams.ModelTeams
	if bundle != nil {
		modelTeams = bundle
	}
	teamSvc := teams.NewService(provider, gameSvc, modelTeams, logger)
	playerSvc := players.NewService(provider)
	predictionSvc := predictions.NewService(predictions.Deps{
		Model:    bundle,
		Provider: provider,
		Store:    memoryStore,
		Fallback: snaps.fallback,
		History:  records,
		Logger:   logger,
		Metrics:  recorder,
	})

	var plr Poller
	var statusFn func() poller.Status
	if cfg.PollEnabled {
		p := poller.New(provider, memoryStore, logger, recorder, cfg.PollInterval, loc)
		plr = p
		statusFn = p.Status
	}

	handler := handlers.NewHandler(handlers.Services{
		Games:            gameSvc,
		Teams:            teamSvc,
		Players:          playerSvc,
		Predictions:      predictionSvc,
		APIKeyConfigured: cfg.Balldontlie.APIKeyConfigured(),
	}, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.Admin.Enabled() {
		admin = handlers.NewAdminHandler(snaps.syncer, cfg.Admin, logger)
	}
	httpSrv := buildHTTPServer(cfg, handler, admin, logger, recorder)

	return &Server{
		cfg:                cfg,
		logger:             logger,
		metrics:            recorder,
		store:              memoryStore,
		results:            history,
		gamesService:       gameSvc,
		teamsService:       teamSvc,
		playersService:     playerSvc,
		predictionsService: predictionSvc,
		httpServer:         httpSrv,
		metricsServer:      metricsSrv,
		poller:             plr,
		syncer:             snaps.syncer,
		metricsStop:        metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller, syncer SnapshotSyncer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
		syncer:     syncer,
	}
}

// loadModel reads the model bundle; the API still serves games, teams and players without one.
func loadModel(path string, logger *slog.Logger) *model.Bundle {
	bundle, err := model.Load(path)
	if err != nil {
		if errors.Is(err, model.ErrModelNotFound) {
			logging.Warn(logger, "model file not found, predictions disabled", logging.FieldModelPath, path)
		} else {
			logging.Error(logger, "model load failed, predictions disabled", err, logging.FieldModelPath, path)
		}
		return nil
	}
	logging.Info(logger, "model loaded",
		logging.FieldModelPath, path,
		"features", len(bundle.FeatureCols),
		"teams", len(bundle.Teams()),
	)
	return bundle
}

// openResults opens prediction history; without it /results serves the sample payload.
func openResults(path string, logger *slog.Logger) *results.Store {
	if path == "" {
		return nil
	}
	s, err := results.Open(path)
	if err != nil {
		logging.Error(logger, "results store unavailable, prediction history disabled", err, "path", path)
		return nil
	}
	return s
}

func buildHTTPServer(cfg config.Config, handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	router := httpserver.NewRouter(handler, admin)
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.CORS(router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller, snapshot sync and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.poller != nil {
		s.poller.Start(ctx)
	}
	if s.syncer != nil {
		if err := s.syncer.Start(ctx); err != nil {
			logging.Warn(s.logger, "snapshot sync not started", logging.FieldError, err)
		}
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if s.syncer != nil {
		s.syncer.Stop()
	}

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop poller", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.results != nil {
		if err := s.results.Close(); err != nil {
			logging.Warn(s.logger, "results store close failed", logging.FieldError, err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}
	if rec == nil {
		rec = metrics.NewRecorder()
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
