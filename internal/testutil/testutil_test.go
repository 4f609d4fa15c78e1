package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/tickets"
	"github.com/preston-bernstein/nba-predictor-service/internal/model"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
	"github.com/preston-bernstein/nba-predictor-service/internal/snapshots"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestFixturesHelper(t *testing.T) {
	g := SampleGame(1, "LAL", "GSW", "2024-01-16")
	if g.HomeTeamName != "Los Angeles Lakers" || g.AwayTeamLogo == "" {
		t.Fatalf("unexpected game fixture %+v", g)
	}
	final := FinalGame(2, "BOS", "MIA", "2024-01-15", 99, 101)
	if !final.IsFinal() || final.HomeWon() {
		t.Fatalf("expected away win, got %+v", final)
	}
	team := SampleTeam(2, "BOS")
	if team.FullName != "Boston Celtics" || team.LogoURLSmall == "" {
		t.Fatalf("unexpected team fixture %+v", team)
	}
	if p := SamplePlayer(237, "LeBron James", "F"); p.HeadshotURL == "" {
		t.Fatalf("expected headshot on player fixture")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestLoggerHelper(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
}

func TestStubProvider(t *testing.T) {
	ctx := context.Background()
	p := &StubProvider{
		Games:  []games.Game{SampleGame(1, "LAL", "GSW", "2024-01-16")},
		Game:   map[int]games.Game{1: SampleGame(1, "LAL", "GSW", "2024-01-16")},
		Notify: make(chan struct{}),
	}

	list, err := p.FetchGames(ctx, providers.GameQuery{StartDate: "2024-01-16", EndDate: "2024-01-16"})
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one game, got %d err=%v", len(list), err)
	}
	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify closed on first fetch")
	}
	if _, err := p.FetchGames(ctx, providers.GameQuery{}); err != nil {
		t.Fatalf("expected repeated fetch to succeed: %v", err)
	}
	if q := p.GameQueries(); len(q) != 2 || q[0].StartDate != "2024-01-16" {
		t.Fatalf("unexpected recorded queries %+v", q)
	}

	if _, err := p.FetchGame(ctx, 1); err != nil {
		t.Fatalf("expected known game, got %v", err)
	}
	if _, err := p.FetchGame(ctx, 2); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if p.GameCalls() != 2 {
		t.Fatalf("expected two game calls, got %d", p.GameCalls())
	}

	box, err := p.FetchBoxScore(ctx, 5)
	if err != nil || box.GameID != 5 || box.HomePlayers == nil {
		t.Fatalf("expected empty box score, got %+v err=%v", box, err)
	}

	p.GamesFunc = func(q providers.GameQuery) ([]games.Game, error) {
		return nil, errors.New("boom")
	}
	if _, err := p.FetchGames(ctx, providers.GameQuery{}); err == nil {
		t.Fatalf("expected GamesFunc error")
	}
}

func TestStubTicketProvider(t *testing.T) {
	s := &StubTicketProvider{Info: tickets.Info{Available: true}}
	info := s.FetchTickets(context.Background(), providers.TicketQuery{HomeTeam: "Boston Celtics"})
	if !info.Available || s.Last.HomeTeam != "Boston Celtics" {
		t.Fatalf("unexpected ticket stub state %+v / %+v", info, s.Last)
	}
}

func TestStorageHelpers(t *testing.T) {
	path := WriteFallback(t, []games.Game{SampleGame(3, "BOS", "MIA", "2024-01-17")})
	g, ok, err := snapshots.NewFSStore(path).GetGame(3)
	if err != nil || !ok || g.HomeTeam != "BOS" {
		t.Fatalf("expected fallback game, got %+v ok=%v err=%v", g, ok, err)
	}

	store := NewResultsStore(t)
	res, err := store.Results(context.Background(), 10)
	if err != nil || res.TotalPredictions != 0 {
		t.Fatalf("expected empty results, got %+v err=%v", res, err)
	}
}

func TestModelHelpers(t *testing.T) {
	b, err := model.Load(WriteBundle(t))
	if err != nil {
		t.Fatalf("expected bundle to load: %v", err)
	}
	if got := b.Teams(); len(got) != 3 {
		t.Fatalf("expected three teams, got %v", got)
	}
}
