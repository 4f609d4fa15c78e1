package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-predictor-service/internal/app/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/predictions"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/poller"
)

const apiTitle = "NBA Game Predictor API"

// Services groups the application services the HTTP layer serves.
type Services struct {
	Games       *games.Service
	Teams       *teams.Service
	Players     *players.Service
	Predictions *predictions.Service

	APIKeyConfigured bool
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	games       *games.Service
	teams       *teams.Service
	players     *players.Service
	predictions *predictions.Service

	apiKeyConfigured bool
	logger           *slog.Logger
	statusFn         func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when polling is disabled.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		games:            svc.Games,
		teams:            svc.Teams,
		players:          svc.Players,
		predictions:      svc.Predictions,
		apiKeyConfigured: svc.APIKeyConfigured,
		logger:           logger,
		statusFn:         statusFn,
	}
}

// Root describes the API.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":            apiTitle,
		"api_key_configured": h.apiKeyConfigured,
		"model_loaded":       h.predictions.ModelLoaded(),
		"endpoints":          endpointIndex,
	}, h.logger)
}

var endpointIndex = map[string]any{
	"games": map[string]string{
		"upcoming": "GET /games?days=7",
		"today":    "GET /games/today",
		"past":     "GET /games/past?days=7",
		"single":   "GET /games/{id}",
		"details":  "GET /games/{id}/details",
		"boxscore": "GET /games/{id}/boxscore",
		"tickets":  "GET /games/{id}/tickets",
	},
	"predictions": map[string]string{
		"game":    "POST /predict/{game_id}",
		"matchup": "GET /predict/teams/{home}/{away}",
		"results": "GET /results",
	},
	"teams": map[string]string{
		"list":     "GET /teams",
		"logo":     "GET /teams/{abbr}/logo?size=L",
		"roster":   "GET /teams/{team_id}/roster",
		"upcoming": "GET /teams/{team_id}/upcoming?limit=5",
	},
	"players": map[string]string{
		"search": "GET /players?search=&per_page=25",
		"single": "GET /players/{player_id}?season=2024",
	},
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers paths outside the route table.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}
