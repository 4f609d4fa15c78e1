package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-predictor-service/internal/app/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/predictions"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/config"
	domaingames "github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-predictor-service/internal/store"
	"github.com/preston-bernstein/nba-predictor-service/internal/testutil"
)

func newTestRouter(t *testing.T, admin *handlers.AdminHandler) http.Handler {
	t.Helper()
	provider := &testutil.StubProvider{
		Games: []domaingames.Game{testutil.SampleGame(1, "LAL", "GSW", "2024-01-16")},
	}
	ms := store.NewMemoryStore()
	ms.SetGames(provider.Games)
	bundle := testutil.SampleBundle()
	gamesSvc := games.NewService(games.Deps{Provider: provider, Store: ms})
	h := handlers.NewHandler(handlers.Services{
		Games:       gamesSvc,
		Teams:       teams.NewService(provider, gamesSvc, bundle, nil),
		Players:     players.NewService(provider),
		Predictions: predictions.NewService(predictions.Deps{Model: bundle, Provider: provider, Store: ms}),
	}, nil, nil)
	return NewRouter(h, admin)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/games", http.StatusOK},
		{http.MethodGet, "/games/today", http.StatusOK},
		{http.MethodGet, "/games/past", http.StatusOK},
		{http.MethodGet, "/games/1", http.StatusOK},
		{http.MethodGet, "/games/foo", http.StatusBadRequest},
		{http.MethodGet, "/games/2", http.StatusNotFound},
		{http.MethodGet, "/games/1/boxscore", http.StatusOK},
		{http.MethodGet, "/games/1/tickets", http.StatusOK},
		{http.MethodPost, "/predict/1", http.StatusOK},
		{http.MethodGet, "/predict/1", http.StatusMethodNotAllowed},
		{http.MethodGet, "/predict/teams/LAL/GSW", http.StatusOK},
		{http.MethodGet, "/results", http.StatusOK},
		{http.MethodGet, "/teams", http.StatusOK},
		{http.MethodGet, "/teams/LAL/logo", http.StatusOK},
		{http.MethodGet, "/teams/14/roster", http.StatusOK},
		{http.MethodGet, "/teams/14/upcoming", http.StatusOK},
		{http.MethodGet, "/players", http.StatusOK},
		{http.MethodGet, "/players/237", http.StatusOK},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json 404, got %s", got)
	}
}

func TestRouterMountsAdminOnlyWhenConfigured(t *testing.T) {
	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh", nil)
		r.Header.Set("Authorization", "Bearer secret")
		return r
	}

	rr := testutil.ServeRequest(newTestRouter(t, nil), req())
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	admin := handlers.NewAdminHandler(nil, config.AdminConfig{Token: "secret"}, nil)
	rr = testutil.ServeRequest(newTestRouter(t, admin), req())
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
