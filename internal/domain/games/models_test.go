package games

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]GameStatus{
		"Final":                StatusFinal,
		"ended":                StatusFinal,
		"In Progress":          StatusInProgress,
		"Halftime":             StatusInProgress,
		"postponed":            StatusPostponed,
		"Cancelled":            StatusCanceled,
		"2025-01-05T00:30:00Z": StatusScheduled,
		"":                     StatusScheduled,
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Fatalf("NormalizeStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestGameHelpers(t *testing.T) {
	g := Game{HomeTeam: "BOS", AwayTeam: "LAL", HomeScore: 110, AwayScore: 101, Status: "Final"}
	if !g.IsFinal() || !g.HomeWon() {
		t.Fatalf("expected final home win")
	}
	if g.Matchup() != "LAL @ BOS" {
		t.Fatalf("unexpected matchup %q", g.Matchup())
	}
}

func TestListGameOmitsDetailFields(t *testing.T) {
	data, err := json.Marshal(Game{ID: 1, HomeTeam: "BOS", AwayTeam: "LAL", Status: "scheduled"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	for _, field := range []string{"home_team_city", "tickets", "winner"} {
		if strings.Contains(body, field) {
			t.Fatalf("expected %s to be omitted, got %s", field, body)
		}
	}
	if !strings.Contains(body, `"home_score":0`) {
		t.Fatalf("expected scores always present, got %s", body)
	}
}

func TestNewListingNeverNil(t *testing.T) {
	l := NewListing(SourceStatic, nil)
	if l.Games == nil || l.Count != 0 || l.Source != SourceStatic {
		t.Fatalf("unexpected listing %+v", l)
	}
	if EmptyBoxScore(5).HomePlayers == nil {
		t.Fatalf("expected empty player slices")
	}
}
