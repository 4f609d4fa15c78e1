package handlers

import (
	"errors"
	"net/http"

	"github.com/preston-bernstein/nba-predictor-service/internal/app/predictions"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
)

// PredictGame predicts the outcome of a known game.
func (h *Handler) PredictGame(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	id, ok := pathInt(w, r, "id", h.logger)
	if !ok {
		return
	}
	p, err := h.predictions.PredictGame(r.Context(), id)
	if err != nil {
		h.predictionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

// PredictMatchup predicts an arbitrary home/away pairing.
func (h *Handler) PredictMatchup(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	p, err := h.predictions.PredictMatchup(r.Context(), r.PathValue("home"), r.PathValue("away"))
	if err != nil {
		h.predictionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

// Results reports prediction accuracy.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.predictions.Results(r.Context()), h.logger)
}

func (h *Handler) predictionError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	var missing *predictions.MissingStatsError
	switch {
	case errors.Is(err, predictions.ErrModelNotLoaded):
		writeError(w, r, http.StatusInternalServerError, "Model not loaded", logger)
	case errors.Is(err, predictions.ErrGameNotFound):
		writeError(w, r, http.StatusNotFound, "Game not found", logger)
	case errors.As(err, &missing):
		writeError(w, r, http.StatusBadRequest, missing.Error(), logger)
	default:
		logging.Error(logger, "prediction failed", err)
		writeError(w, r, http.StatusInternalServerError, "Prediction failed: "+err.Error(), logger)
	}
}
