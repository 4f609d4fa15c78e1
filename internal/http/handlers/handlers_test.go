package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/app/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/predictions"
	"github.com/preston-bernstein/nba-predictor-service/internal/app/teams"
	domaingames "github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/model"
	"github.com/preston-bernstein/nba-predictor-service/internal/poller"
	"github.com/preston-bernstein/nba-predictor-service/internal/snapshots"
	"github.com/preston-bernstein/nba-predictor-service/internal/store"
	"github.com/preston-bernstein/nba-predictor-service/internal/testutil"
)

type fixture struct {
	h        *Handler
	provider *testutil.StubProvider
	store    *store.MemoryStore
}

func newFixture(t *testing.T, bundle *model.Bundle, statusFn func() poller.Status) fixture {
	t.Helper()
	provider := &testutil.StubProvider{}
	ms := store.NewMemoryStore()
	fallback := snapshots.NewFSStore(testutil.WriteFallback(t, []domaingames.Game{}))
	history := testutil.NewResultsStore(t)

	gamesSvc := games.NewService(games.Deps{
		Provider: provider,
		Store:    ms,
		Fallback: fallback,
		Outcomes: history,
	})
	var modelTeams teams.ModelTeams
	if bundle != nil {
		modelTeams = bundle
	}
	h := NewHandler(Services{
		Games:       gamesSvc,
		Teams:       teams.NewService(provider, gamesSvc, modelTeams, nil),
		Players:     players.NewService(provider),
		Predictions: predictions.NewService(predictions.Deps{Model: bundle, Provider: provider, Store: ms, Fallback: fallback, History: history}),

		APIKeyConfigured: true,
	}, nil, statusFn)
	return fixture{h: h, provider: provider, store: ms}
}

// serve routes req to fn with the given path wildcards set.
func serve(fn http.HandlerFunc, req *http.Request, pathValues ...string) *httptest.ResponseRecorder {
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	return testutil.ServeRequest(fn, req)
}

func get(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	return body["error"]
}

func TestRootDescribesAPI(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.Root, get("/"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if resp["message"] != apiTitle {
		t.Fatalf("expected title, got %v", resp["message"])
	}
	if resp["api_key_configured"] != true || resp["model_loaded"] != false {
		t.Fatalf("unexpected flags: %v", resp)
	}
	if _, ok := resp["endpoints"].(map[string]any); !ok {
		t.Fatalf("expected endpoints index, got %T", resp["endpoints"])
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.Health, get("/health"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rr := serve(f.h.Health, get("/health").WithContext(ctx))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestHealthRejectsWrongMethod(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.Health, httptest.NewRequest(http.MethodPost, "/health", nil))
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	if got := rr.Header().Get("Allow"); got != http.MethodGet {
		t.Fatalf("expected Allow GET, got %s", got)
	}
}

func TestReady(t *testing.T) {
	f := newFixture(t, nil, nil)
	testutil.AssertStatus(t, serve(f.h.Ready, get("/ready")), http.StatusOK)

	ready := newFixture(t, nil, func() poller.Status {
		return poller.Status{LastSuccess: time.Now()}
	})
	testutil.AssertStatus(t, serve(ready.h.Ready, get("/ready")), http.StatusOK)

	failing := newFixture(t, nil, func() poller.Status {
		return poller.Status{LastError: "upstream down", ConsecutiveFailures: 3}
	})
	rr := serve(failing.h.Ready, get("/ready"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	if got := errorBody(t, rr); got != "upstream down" {
		t.Fatalf("expected last error, got %s", got)
	}
}

func TestGamesServesLiveListing(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.Games = []domaingames.Game{testutil.SampleGame(1, "LAL", "GSW", "2024-01-16")}

	rr := serve(f.h.Games, get("/games?days=3"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.Listing
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Source != domaingames.SourceAPI || resp.Count != 1 {
		t.Fatalf("expected live listing of one, got %+v", resp)
	}
	if len(f.store.ListGames()) != 1 {
		t.Fatalf("expected cache replaced by live listing")
	}
}

func TestGamesFallsBackToCache(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.GamesErr = errors.New("boom")
	f.store.SetGames([]domaingames.Game{testutil.SampleGame(2, "BOS", "MIA", "2024-01-17")})

	rr := serve(f.h.Games, get("/games"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.Listing
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Source != domaingames.SourceCache || resp.Count != 1 {
		t.Fatalf("expected cached listing, got %+v", resp)
	}
}

func TestGamesRejectsInvalidDays(t *testing.T) {
	f := newFixture(t, nil, nil)
	testutil.AssertStatus(t, serve(f.h.Games, get("/games?days=soon")), http.StatusBadRequest)
	testutil.AssertStatus(t, serve(f.h.GamesPast, get("/games/past?days=-2")), http.StatusBadRequest)
}

func TestGamesTodayUpstreamFailure(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.GamesErr = errors.New("boom")

	rr := serve(f.h.GamesToday, get("/games/today"))
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if got := errorBody(t, rr); !strings.HasPrefix(got, "Failed to fetch today's games") {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestGamesTodayCountsGames(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.Games = []domaingames.Game{
		testutil.SampleGame(1, "LAL", "GSW", "2024-01-16"),
		testutil.SampleGame(2, "BOS", "MIA", "2024-01-16"),
	}

	rr := serve(f.h.GamesToday, get("/games/today"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.TodayListing
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 2 || len(resp.Games) != 2 {
		t.Fatalf("expected two games, got %+v", resp)
	}
}

func TestGamesPastReportsDaysBack(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.Games = []domaingames.Game{
		testutil.FinalGame(3, "LAL", "GSW", "2024-01-14", 110, 101),
		testutil.SampleGame(4, "BOS", "MIA", "2024-01-15"),
	}

	rr := serve(f.h.GamesPast, get("/games/past?days=3"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.PastListing
	testutil.DecodeJSON(t, rr, &resp)
	if resp.DaysBack != 3 || resp.Count != 1 {
		t.Fatalf("expected one completed game over 3 days, got %+v", resp)
	}
	if resp.Games[0].Winner != "LAL" {
		t.Fatalf("expected LAL winner, got %s", resp.Games[0].Winner)
	}
}

func TestGamesPastZeroDaysEchoesEmptyWindow(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.Games = []domaingames.Game{testutil.FinalGame(3, "LAL", "GSW", "2024-01-14", 110, 101)}

	rr := serve(f.h.GamesPast, get("/games/past?days=0"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.PastListing
	testutil.DecodeJSON(t, rr, &resp)
	if resp.DaysBack != 0 || resp.Count != 0 || len(resp.Games) != 0 {
		t.Fatalf("expected empty zero-day listing, got %+v", resp)
	}
}

func TestGameByID(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.store.SetGames([]domaingames.Game{testutil.SampleGame(5, "LAL", "GSW", "2024-01-16")})

	rr := serve(f.h.Game, get("/games/5"), "id", "5")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var g domaingames.Game
	testutil.DecodeJSON(t, rr, &g)
	if g.ID != 5 || g.Tickets == nil {
		t.Fatalf("expected cached game with ticket links, got %+v", g)
	}
}

func TestGameByIDNotFound(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.Game, get("/games/99"), "id", "99")
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if got := errorBody(t, rr); got != "Game not found" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestGameRoutesRejectNonIntegerIDs(t *testing.T) {
	f := newFixture(t, nil, nil)
	for name, fn := range map[string]http.HandlerFunc{
		"game":     f.h.Game,
		"details":  f.h.GameDetails,
		"boxscore": f.h.GameBoxScore,
		"tickets":  f.h.GameTickets,
		"player":   f.h.Player,
	} {
		rr := serve(fn, get("/x/abc"), "id", "abc")
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rr.Code)
		}
	}
}

func TestGameDetailsNotFound(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.GameDetails, get("/games/8/details"), "id", "8")
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestGameDetails(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.Game = map[int]domaingames.Game{8: testutil.SampleGame(8, "LAL", "GSW", "2024-01-16")}

	rr := serve(f.h.GameDetails, get("/games/8/details"), "id", "8")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var d domaingames.Details
	testutil.DecodeJSON(t, rr, &d)
	if d.Game.ID != 8 || d.HomeTeamDetails.Abbreviation != "LAL" {
		t.Fatalf("unexpected details %+v", d)
	}
}

func TestGameBoxScore(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.GameBoxScore, get("/games/9/boxscore"), "id", "9")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var b domaingames.BoxScore
	testutil.DecodeJSON(t, rr, &b)
	if b.GameID != 9 || b.HomePlayers == nil {
		t.Fatalf("expected empty box score for game 9, got %+v", b)
	}

	f.provider.BoxScoreErr = errors.New("timeout")
	rr = serve(f.h.GameBoxScore, get("/games/9/boxscore"), "id", "9")
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if got := errorBody(t, rr); !strings.HasPrefix(got, "Failed to fetch box score") {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestGameTickets(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.Game = map[int]domaingames.Game{10: testutil.SampleGame(10, "BOS", "MIA", "2024-01-20")}

	rr := serve(f.h.GameTickets, get("/games/10/tickets"), "id", "10")
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = serve(f.h.GameTickets, get("/games/11/tickets"), "id", "11")
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestPredictGameRequiresPost(t *testing.T) {
	f := newFixture(t, testutil.SampleBundle(), nil)
	rr := serve(f.h.PredictGame, get("/predict/1"), "id", "1")
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestPredictGameWithoutModel(t *testing.T) {
	f := newFixture(t, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/predict/1", nil)
	rr := serve(f.h.PredictGame, req, "id", "1")
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if got := errorBody(t, rr); got != "Model not loaded" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestPredictGame(t *testing.T) {
	f := newFixture(t, testutil.SampleBundle(), nil)
	f.store.SetGames([]domaingames.Game{testutil.SampleGame(12, "LAL", "GSW", "2024-01-16")})

	req := httptest.NewRequest(http.MethodPost, "/predict/12", nil)
	rr := serve(f.h.PredictGame, req, "id", "12")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var p struct {
		GameID          int     `json:"game_id"`
		PredictedWinner string  `json:"predicted_winner"`
		HomeWinProb     float64 `json:"home_win_probability"`
	}
	testutil.DecodeJSON(t, rr, &p)
	if p.GameID != 12 || p.PredictedWinner != "LAL" || p.HomeWinProb <= 0.5 {
		t.Fatalf("unexpected prediction %+v", p)
	}
}

func TestPredictGameUnknownGame(t *testing.T) {
	f := newFixture(t, testutil.SampleBundle(), nil)
	req := httptest.NewRequest(http.MethodPost, "/predict/404", nil)
	rr := serve(f.h.PredictGame, req, "id", "404")
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestPredictMatchup(t *testing.T) {
	f := newFixture(t, testutil.SampleBundle(), nil)
	rr := serve(f.h.PredictMatchup, get("/predict/teams/bos/lal"), "home", "bos", "away", "lal")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var p struct {
		GameID          int    `json:"game_id"`
		HomeTeam        string `json:"home_team"`
		PredictedWinner string `json:"predicted_winner"`
	}
	testutil.DecodeJSON(t, rr, &p)
	if p.GameID != 0 || p.HomeTeam != "BOS" || p.PredictedWinner != "LAL" {
		t.Fatalf("unexpected matchup prediction %+v", p)
	}
}

func TestPredictMatchupMissingStats(t *testing.T) {
	f := newFixture(t, testutil.SampleBundle(), nil)
	rr := serve(f.h.PredictMatchup, get("/predict/teams/lal/XXX"), "home", "lal", "away", "XXX")
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	if got := errorBody(t, rr); got != "Missing stats for teams: lal or XXX" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestResultsServesSampleWithoutResolvedPredictions(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.Results, get("/results"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res struct {
		Source string `json:"source"`
	}
	testutil.DecodeJSON(t, rr, &res)
	if res.Source != "sample" {
		t.Fatalf("expected sample results, got %s", res.Source)
	}
}

func TestTeamsFallsBackToModel(t *testing.T) {
	f := newFixture(t, testutil.SampleBundle(), nil)
	f.provider.TeamsErr = errors.New("boom")

	rr := serve(f.h.Teams, get("/teams"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Source string   `json:"source"`
		Count  int      `json:"count"`
		Teams  []string `json:"teams"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Source != teams.SourceModel || resp.Count != 3 {
		t.Fatalf("expected three model teams, got %+v", resp)
	}
}

func TestTeamsWithoutModelOrAPI(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.TeamsErr = errors.New("boom")

	rr := serve(f.h.Teams, get("/teams"))
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if got := errorBody(t, rr); got != "Model not loaded" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestTeamLogo(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.TeamLogo, get("/teams/bos/logo?size=D"), "team", "bos")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var logo struct {
		Team    string `json:"team"`
		Size    string `json:"size"`
		LogoURL string `json:"logo_url"`
	}
	testutil.DecodeJSON(t, rr, &logo)
	if logo.Team != "BOS" || logo.Size != "D" || logo.LogoURL == "" {
		t.Fatalf("unexpected logo %+v", logo)
	}

	rr = serve(f.h.TeamLogo, get("/teams/xyz/logo"), "team", "xyz")
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if got := errorBody(t, rr); got != "Team not found: xyz" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestTeamRosterAndUpcoming(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.Players = append(f.provider.Players, testutil.SamplePlayer(1, "Jayson Tatum", "F"))
	f.provider.Games = []domaingames.Game{testutil.SampleGame(1, "BOS", "MIA", "2024-01-20")}

	rr := serve(f.h.TeamRoster, get("/teams/2/roster"), "team", "2")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var roster struct {
		TeamID int `json:"team_id"`
		Count  int `json:"count"`
	}
	testutil.DecodeJSON(t, rr, &roster)
	if roster.TeamID != 2 || roster.Count != 1 {
		t.Fatalf("unexpected roster %+v", roster)
	}

	rr = serve(f.h.TeamUpcoming, get("/teams/2/upcoming?limit=3"), "team", "2")
	testutil.AssertStatus(t, rr, http.StatusOK)
	if q := f.provider.GameQueries(); len(q) == 0 || q[len(q)-1].PerPage != 3 {
		t.Fatalf("expected limit forwarded to provider, got %+v", q)
	}

	testutil.AssertStatus(t, serve(f.h.TeamRoster, get("/teams/bos/roster"), "team", "bos"), http.StatusBadRequest)
}

func TestTeamRosterUpstreamFailure(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.PlayersErr = errors.New("boom")
	rr := serve(f.h.TeamRoster, get("/teams/2/roster"), "team", "2")
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if got := errorBody(t, rr); !strings.HasPrefix(got, "Failed to fetch roster") {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestPlayers(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.provider.Players = append(f.provider.Players,
		testutil.SamplePlayer(237, "LeBron James", "F"),
		testutil.SamplePlayer(115, "Stephen Curry", "G"),
	)

	rr := serve(f.h.Players, get("/players?search=james&per_page=1"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	q := f.provider.PlayerQueries()
	if len(q) != 1 || q[0].Search != "james" || q[0].PerPage != 1 {
		t.Fatalf("unexpected player query %+v", q)
	}

	rr = serve(f.h.Player, get("/players/237"), "id", "237")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var avg struct {
		PlayerID    int    `json:"player_id"`
		Season      int    `json:"season"`
		HeadshotURL string `json:"headshot_url"`
	}
	testutil.DecodeJSON(t, rr, &avg)
	if avg.PlayerID != 237 || avg.Season != players.DefaultSeason || avg.HeadshotURL == "" {
		t.Fatalf("unexpected averages %+v", avg)
	}
}

func TestNotFound(t *testing.T) {
	f := newFixture(t, nil, nil)
	rr := serve(f.h.NotFound, get("/nope"))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
