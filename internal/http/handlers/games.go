package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/preston-bernstein/nba-predictor-service/internal/app/games"
	domaingames "github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
)

// Games lists upcoming games with the tier that answered.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	days, ok := queryInt(w, r, "days", games.DefaultDays, h.logger)
	if !ok {
		return
	}
	listing := h.games.Upcoming(r.Context(), days)
	logging.Info(loggerFromContext(r, h.logger), "served upcoming games",
		logging.FieldSource, listing.Source,
		logging.FieldCount, listing.Count,
	)
	writeJSON(w, http.StatusOK, listing, h.logger)
}

// GamesToday lists today's games from the live API.
func (h *Handler) GamesToday(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	list, err := h.games.Today(r.Context())
	if err != nil {
		h.upstreamError(w, r, "today's games", err)
		return
	}
	writeJSON(w, http.StatusOK, domaingames.TodayListing{Count: len(list), Games: list}, h.logger)
}

// GamesPast lists recently completed games.
func (h *Handler) GamesPast(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	days, ok := queryInt(w, r, "days", games.DefaultDays, h.logger)
	if !ok {
		return
	}
	list, err := h.games.Past(r.Context(), days)
	if err != nil {
		h.upstreamError(w, r, "past games", err)
		return
	}
	writeJSON(w, http.StatusOK, domaingames.PastListing{Count: len(list), DaysBack: days, Games: list}, h.logger)
}

// Game returns a single game.
func (h *Handler) Game(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}
	g, err := h.games.Game(r.Context(), id)
	if err != nil {
		h.gameError(w, r, "game", err)
		return
	}
	writeJSON(w, http.StatusOK, g, h.logger)
}

// GameDetails returns a game with both teams' rosters and schedules.
func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}
	details, err := h.games.Details(r.Context(), id)
	if err != nil {
		h.gameError(w, r, "game details", err)
		return
	}
	writeJSON(w, http.StatusOK, details, h.logger)
}

// GameBoxScore returns per-player stat lines for a game.
func (h *Handler) GameBoxScore(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}
	box, err := h.games.BoxScore(r.Context(), id)
	if err != nil {
		h.upstreamError(w, r, "box score", err)
		return
	}
	writeJSON(w, http.StatusOK, box, h.logger)
}

// GameTickets returns marketplace ticket info for a game.
func (h *Handler) GameTickets(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}
	info, err := h.games.Tickets(r.Context(), id)
	if err != nil {
		h.gameError(w, r, "tickets", err)
		return
	}
	writeJSON(w, http.StatusOK, info, h.logger)
}

func (h *Handler) gameError(w http.ResponseWriter, r *http.Request, what string, err error) {
	if errors.Is(err, games.ErrGameNotFound) {
		writeError(w, r, http.StatusNotFound, "Game not found", h.logger)
		return
	}
	h.upstreamError(w, r, what, err)
}

func (h *Handler) upstreamError(w http.ResponseWriter, r *http.Request, what string, err error) {
	logger := loggerFromContext(r, h.logger)
	logging.Warn(logger, "upstream fetch failed", "resource", what, "err", err)
	writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch %s: %v", what, err), logger)
}
