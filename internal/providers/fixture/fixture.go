// Package fixture serves a deterministic schedule, rosters and stats for offline runs.
package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/cdn"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

const (
	dateLayout   = "2006-01-02"
	scheduleDays = 30
	season       = 2025
)

// Provider returns a static set of sports data useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

var _ providers.DataProvider = (*Provider)(nil)

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewWithClock creates a fixture provider pinned to a clock.
func NewWithClock(now func() time.Time) *Provider {
	return &Provider{now: now}
}

var fixtureTeams = []teams.Team{
	{ID: 2, Abbreviation: "BOS", City: "Boston", Name: "Celtics", FullName: "Boston Celtics", Conference: "East", Division: "Atlantic"},
	{ID: 8, Abbreviation: "DEN", City: "Denver", Name: "Nuggets", FullName: "Denver Nuggets", Conference: "West", Division: "Northwest"},
	{ID: 10, Abbreviation: "GSW", City: "Golden State", Name: "Warriors", FullName: "Golden State Warriors", Conference: "West", Division: "Pacific"},
	{ID: 14, Abbreviation: "LAL", City: "Los Angeles", Name: "Lakers", FullName: "Los Angeles Lakers", Conference: "West", Division: "Pacific"},
	{ID: 16, Abbreviation: "MIA", City: "Miami", Name: "Heat", FullName: "Miami Heat", Conference: "East", Division: "Southeast"},
	{ID: 24, Abbreviation: "PHX", City: "Phoenix", Name: "Suns", FullName: "Phoenix Suns", Conference: "West", Division: "Pacific"},
}

// matchups rotate by day in disjoint pairs; each entry is home, away.
var matchups = [][2]int{{3, 2}, {0, 4}, {5, 1}, {2, 0}, {4, 5}, {1, 3}}

var positions = []string{"G", "G", "F", "F", "C", "G-F", "F-C"}

func (p *Provider) today() time.Time {
	now := p.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// schedule spans scheduleDays either side of today with two games per day.
func (p *Provider) schedule() []gameFixture {
	today := p.today()
	out := make([]gameFixture, 0, 4*scheduleDays)
	for d := -scheduleDays; d <= scheduleDays; d++ {
		day := today.AddDate(0, 0, d)
		for slot := 0; slot < 2; slot++ {
			m := matchups[2*(dayIndex(day)%3)+slot]
			out = append(out, gameFixture{
				id:    gameID(day, slot),
				day:   day,
				home:  fixtureTeams[m[0]],
				away:  fixtureTeams[m[1]],
				final: d < 0,
			})
		}
	}
	return out
}

type gameFixture struct {
	id    int
	day   time.Time
	home  teams.Team
	away  teams.Team
	final bool
}

func dayIndex(day time.Time) int {
	return int(day.Unix() / 86400)
}

func gameID(day time.Time, slot int) int {
	return (day.Year()*10000+int(day.Month())*100+day.Day())*10 + slot + 1
}

func (g gameFixture) toGame() games.Game {
	out := games.Game{
		ID:                g.id,
		HomeTeam:          g.home.Abbreviation,
		HomeTeamName:      g.home.FullName,
		HomeTeamLogo:      cdn.LogoURL(g.home.Abbreviation, cdn.LogoLarge),
		HomeTeamLogoSmall: cdn.LogoURL(g.home.Abbreviation, cdn.LogoSmall),
		AwayTeam:          g.away.Abbreviation,
		AwayTeamName:      g.away.FullName,
		AwayTeamLogo:      cdn.LogoURL(g.away.Abbreviation, cdn.LogoLarge),
		AwayTeamLogoSmall: cdn.LogoURL(g.away.Abbreviation, cdn.LogoSmall),
		GameDate:          g.day.Format(dateLayout),
		Status:            "scheduled",
		Season:            season,
	}
	if g.final {
		out.Status = "Final"
		out.HomeScore = 100 + g.id%23
		out.AwayScore = 100 + (g.id/7)%23
		if out.HomeScore == out.AwayScore {
			out.HomeScore++
		}
	}
	return out
}

// FetchGames returns fixture games inside the query window.
func (p *Provider) FetchGames(ctx context.Context, q providers.GameQuery) ([]games.Game, error) {
	_ = ctx
	start, end := q.StartDate, q.EndDate
	out := make([]games.Game, 0)
	for _, g := range p.schedule() {
		date := g.day.Format(dateLayout)
		if start != "" && date < start {
			continue
		}
		if end != "" && date > end {
			continue
		}
		if len(q.TeamIDs) > 0 && !containsID(q.TeamIDs, g.home.ID) && !containsID(q.TeamIDs, g.away.ID) {
			continue
		}
		out = append(out, g.toGame())
		if q.PerPage > 0 && len(out) >= q.PerPage {
			break
		}
	}
	return out, nil
}

// FetchGame returns the detailed fixture game or ErrNotFound.
func (p *Provider) FetchGame(ctx context.Context, id int) (games.Game, error) {
	_ = ctx
	for _, g := range p.schedule() {
		if g.id != id {
			continue
		}
		game := g.toGame()
		game.HomeTeamID = g.home.ID
		game.HomeTeamCity = g.home.City
		game.HomeTeamConference = g.home.Conference
		game.HomeTeamDivision = g.home.Division
		game.AwayTeamID = g.away.ID
		game.AwayTeamCity = g.away.City
		game.AwayTeamConference = g.away.Conference
		game.AwayTeamDivision = g.away.Division
		game.GameTime = "7:30 PM ET"
		if g.final {
			game.Period = 4
		}
		return game, nil
	}
	return games.Game{}, providers.ErrNotFound
}

// FetchTeams returns the fixture teams with logos.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	out := make([]teams.Team, 0, len(fixtureTeams))
	for _, t := range fixtureTeams {
		t.LogoURL = cdn.LogoURL(t.Abbreviation, cdn.LogoLarge)
		t.LogoURLSmall = cdn.LogoURL(t.Abbreviation, cdn.LogoSmall)
		out = append(out, t)
	}
	return out, nil
}

func roster(t teams.Team) []players.Player {
	out := make([]players.Player, 0, len(positions))
	for i, pos := range positions {
		id := t.ID*100 + i + 1
		first := t.Name
		last := "Player " + string(rune('A'+i))
		out = append(out, players.Player{
			ID:           id,
			FirstName:    first,
			LastName:     last,
			FullName:     first + " " + last,
			Position:     pos,
			Height:       "6-7",
			Weight:       "220",
			JerseyNumber: string(rune('0' + i)),
			Team:         t.Abbreviation,
			TeamName:     t.FullName,
			TeamID:       t.ID,
			HeadshotURL:  cdn.HeadshotURL(id, ""),
		})
	}
	return out
}

// FetchPlayers filters fixture rosters by team and case-insensitive name search.
func (p *Provider) FetchPlayers(ctx context.Context, q providers.PlayerQuery) ([]players.Player, error) {
	_ = ctx
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]players.Player, 0)
	for _, t := range fixtureTeams {
		if len(q.TeamIDs) > 0 && !containsID(q.TeamIDs, t.ID) {
			continue
		}
		for _, pl := range roster(t) {
			if search != "" && !strings.Contains(strings.ToLower(pl.FullName), search) {
				continue
			}
			out = append(out, pl)
			if q.PerPage > 0 && len(out) >= q.PerPage {
				return out, nil
			}
		}
	}
	return out, nil
}

// FetchSeasonAverages returns stable averages for fixture players only.
func (p *Provider) FetchSeasonAverages(ctx context.Context, playerID, season int) (players.SeasonAverages, bool, error) {
	_ = ctx
	if playerID < 100 || playerID%100 == 0 || playerID%100 > len(positions) {
		return players.SeasonAverages{}, false, nil
	}
	k := float64(playerID % 100)
	return players.SeasonAverages{
		PlayerID:    playerID,
		Season:      season,
		GamesPlayed: 60 + playerID%20,
		Minutes:     "32:00",
		Points:      28 - 2*k,
		Rebounds:    4 + k,
		Assists:     8 - k,
		Steals:      1.2,
		Blocks:      0.4 + 0.2*k,
		Turnovers:   2.1,
		FGPct:       0.48,
		FG3Pct:      0.37,
		FTPct:       0.82,
		HeadshotURL: cdn.HeadshotURL(playerID, ""),
	}, true, nil
}

// FetchBoxScore returns lines for final fixture games and empty lists otherwise.
func (p *Provider) FetchBoxScore(ctx context.Context, gameID int) (games.BoxScore, error) {
	_ = ctx
	for _, g := range p.schedule() {
		if g.id != gameID {
			continue
		}
		if !g.final {
			return games.EmptyBoxScore(gameID), nil
		}
		game := g.toGame()
		return games.BoxScore{
			GameID:      gameID,
			HomeTeam:    g.home.Abbreviation,
			AwayTeam:    g.away.Abbreviation,
			HomePlayers: lines(roster(g.home), game.HomeScore),
			AwayPlayers: lines(roster(g.away), game.AwayScore),
		}, nil
	}
	return games.EmptyBoxScore(gameID), nil
}

func lines(rs []players.Player, total int) []games.PlayerLine {
	out := make([]games.PlayerLine, 0, len(rs))
	remaining := total
	for i, pl := range rs {
		pts := remaining / (len(rs) - i + 1)
		if i == len(rs)-1 {
			pts = remaining
		}
		remaining -= pts
		out = append(out, games.PlayerLine{
			PlayerID:    pl.ID,
			Name:        pl.FullName,
			Position:    pl.Position,
			Minutes:     "30",
			Points:      pts,
			Rebounds:    3 + i,
			Assists:     6 - i%6,
			FGMade:      pts / 2,
			FGAttempted: pts,
			HeadshotURL: pl.HeadshotURL,
		})
	}
	return out
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
