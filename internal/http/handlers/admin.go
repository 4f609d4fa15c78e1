package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/preston-bernstein/nba-predictor-service/internal/config"
	"github.com/preston-bernstein/nba-predictor-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/snapshots"
)

// SnapshotSyncer refreshes the fallback games file on demand.
type SnapshotSyncer interface {
	SyncOnce(ctx context.Context) (snapshots.Result, error)
}

// AdminHandler exposes admin-only endpoints (e.g., snapshot refresh).
type AdminHandler struct {
	syncer    SnapshotSyncer
	token     string
	tokenHash []byte
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. A bcrypt TokenHash takes precedence over a plain Token.
func NewAdminHandler(syncer SnapshotSyncer, creds config.AdminConfig, logger *slog.Logger) *AdminHandler {
	h := &AdminHandler{
		syncer: syncer,
		token:  creds.Token,
		logger: logger,
	}
	if creds.TokenHash != "" {
		h.tokenHash = []byte(creds.TokenHash)
	}
	return h
}

// RefreshSnapshots fetches the upcoming window and rewrites the fallback games file.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			logging.FieldPath, r.URL.Path,
			"client_ip", requestutil.ClientIP(r),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.syncer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", logger)
		return
	}

	res, err := h.syncer.SyncOnce(r.Context())
	if err != nil {
		logging.Warn(logger, "admin snapshot refresh failed",
			logging.FieldDate, res.Date,
			"err", err,
		)
		if errors.Is(err, snapshots.ErrNoGames) {
			writeError(w, r, http.StatusBadRequest, "no games to snapshot", logger)
			return
		}
		writeError(w, r, http.StatusBadGateway, "failed to refresh snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"snapshot": res,
	}, logger)
	logging.Info(logger, "admin snapshot written",
		logging.FieldDate, res.Date,
		logging.FieldCount, res.Count,
		"changed", res.Changed,
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || presented == "" {
		return false
	}
	if len(h.tokenHash) > 0 {
		return bcrypt.CompareHashAndPassword(h.tokenHash, []byte(presented)) == nil
	}
	if h.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.token)) == 1
}
