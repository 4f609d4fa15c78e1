package testutil

import (
	"github.com/preston-bernstein/nba-predictor-service/internal/cdn"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
)

// SampleGame returns a scheduled game between two catalog teams.
func SampleGame(id int, home, away, date string) games.Game {
	return games.Game{
		ID:           id,
		HomeTeam:     home,
		HomeTeamName: teams.FullName(home),
		HomeTeamLogo: cdn.LogoURL(home, cdn.LogoLarge),
		AwayTeam:     away,
		AwayTeamName: teams.FullName(away),
		AwayTeamLogo: cdn.LogoURL(away, cdn.LogoLarge),
		GameDate:     date,
		Status:       "scheduled",
		Season:       games.DefaultSeason,
	}
}

// FinalGame returns a completed game with the given score.
func FinalGame(id int, home, away, date string, homeScore, awayScore int) games.Game {
	g := SampleGame(id, home, away, date)
	g.Status = "Final"
	g.HomeScore = homeScore
	g.AwayScore = awayScore
	return g
}

// SampleTeam returns a catalog team with logos.
func SampleTeam(id int, abbr string) teams.Team {
	return teams.Team{
		ID:           id,
		Abbreviation: abbr,
		FullName:     teams.FullName(abbr),
		LogoURL:      cdn.LogoURL(abbr, cdn.LogoLarge),
		LogoURLSmall: cdn.LogoURL(abbr, cdn.LogoSmall),
	}
}

// SamplePlayer returns a roster player at a position.
func SamplePlayer(id int, name, position string) players.Player {
	return players.Player{
		ID:          id,
		FullName:    name,
		Position:    position,
		HeadshotURL: cdn.HeadshotURL(id, ""),
	}
}
