package handlers

import (
	"net/http"

	"github.com/preston-bernstein/nba-predictor-service/internal/app/players"
)

// Players searches players by name.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	perPage, ok := queryInt(w, r, "per_page", players.DefaultPerPage, h.logger)
	if !ok {
		return
	}
	res, err := h.players.Search(r.Context(), r.URL.Query().Get("search"), perPage)
	if err != nil {
		h.upstreamError(w, r, "players", err)
		return
	}
	writeJSON(w, http.StatusOK, res, h.logger)
}

// Player returns one player's season averages.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}
	season, ok := queryInt(w, r, "season", players.DefaultSeason, h.logger)
	if !ok {
		return
	}
	avg, err := h.players.Get(r.Context(), id, season)
	if err != nil {
		h.upstreamError(w, r, "player", err)
		return
	}
	writeJSON(w, http.StatusOK, avg, h.logger)
}
