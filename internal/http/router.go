package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-predictor-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil when no admin credential is configured.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/{$}", h.Root)
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)

	mux.HandleFunc("/games", h.Games)
	mux.HandleFunc("/games/today", h.GamesToday)
	mux.HandleFunc("/games/past", h.GamesPast)
	mux.HandleFunc("/games/{id}", h.Game)
	mux.HandleFunc("/games/{id}/details", h.GameDetails)
	mux.HandleFunc("/games/{id}/boxscore", h.GameBoxScore)
	mux.HandleFunc("/games/{id}/tickets", h.GameTickets)

	mux.HandleFunc("/predict/{id}", h.PredictGame)
	mux.HandleFunc("/predict/teams/{home}/{away}", h.PredictMatchup)
	mux.HandleFunc("/results", h.Results)

	mux.HandleFunc("/teams", h.Teams)
	mux.HandleFunc("/teams/{team}/logo", h.TeamLogo)
	mux.HandleFunc("/teams/{team}/roster", h.TeamRoster)
	mux.HandleFunc("/teams/{team}/upcoming", h.TeamUpcoming)

	mux.HandleFunc("/players", h.Players)
	mux.HandleFunc("/players/{id}", h.Player)

	if admin != nil {
		mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshots)
	}
	mux.HandleFunc("/", h.NotFound)
	return mux
}
