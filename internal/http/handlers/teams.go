package handlers

import (
	"errors"
	"net/http"

	"github.com/preston-bernstein/nba-predictor-service/internal/app/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/model"
)

// Teams lists teams from the API or the loaded model.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	list, err := h.teams.List(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrNotLoaded) {
			writeError(w, r, http.StatusInternalServerError, "Model not loaded", h.logger)
			return
		}
		h.upstreamError(w, r, "teams", err)
		return
	}
	writeJSON(w, http.StatusOK, list, h.logger)
}

// TeamLogo returns the CDN logo URL for a team abbreviation.
func (h *Handler) TeamLogo(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logo, err := h.teams.Logo(r.PathValue("team"), r.URL.Query().Get("size"))
	if err != nil {
		var notFound *teams.TeamNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, r, http.StatusNotFound, notFound.Error(), h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, logo, h.logger)
}

// TeamRoster lists a team's players.
func (h *Handler) TeamRoster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := pathInt(w, r, "team", h.logger)
	if !ok {
		return
	}
	roster, err := h.teams.Roster(r.Context(), id)
	if err != nil {
		h.upstreamError(w, r, "roster", err)
		return
	}
	writeJSON(w, http.StatusOK, roster, h.logger)
}

// TeamUpcoming lists a team's next games.
func (h *Handler) TeamUpcoming(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := pathInt(w, r, "team", h.logger)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", 0, h.logger)
	if !ok {
		return
	}
	schedule, err := h.teams.Upcoming(r.Context(), id, limit)
	if err != nil {
		h.upstreamError(w, r, "upcoming games", err)
		return
	}
	writeJSON(w, http.StatusOK, schedule, h.logger)
}
