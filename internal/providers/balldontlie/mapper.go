package balldontlie

import (
	"strings"

	"github.com/preston-bernstein/nba-predictor-service/internal/cdn"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/tickets"
)

// mapGame builds the listing shape: abbreviations, names, logos, date, status and scores.
func mapGame(g gameResponse) games.Game {
	home := g.HomeTeam.Abbreviation
	away := g.VisitorTeam.Abbreviation
	status := g.Status
	if status == "" {
		status = "scheduled"
	}
	return games.Game{
		ID:                g.ID,
		HomeTeam:          home,
		HomeTeamName:      g.HomeTeam.FullName,
		HomeTeamLogo:      cdn.LogoURL(home, cdn.LogoLarge),
		HomeTeamLogoSmall: cdn.LogoURL(home, cdn.LogoSmall),
		AwayTeam:          away,
		AwayTeamName:      g.VisitorTeam.FullName,
		AwayTeamLogo:      cdn.LogoURL(away, cdn.LogoLarge),
		AwayTeamLogoSmall: cdn.LogoURL(away, cdn.LogoSmall),
		GameDate:          gameDate(g.Date),
		Status:            status,
		HomeScore:         g.HomeTeamScore,
		AwayScore:         g.VisitorTeamScore,
		Season:            g.Season,
	}
}

// mapGameDetail adds team metadata, clock, season flags and ticket links to the listing shape.
func mapGameDetail(g gameResponse) games.Game {
	game := mapGame(g)
	game.HomeTeamID = g.HomeTeam.ID
	game.HomeTeamCity = g.HomeTeam.City
	game.HomeTeamConference = g.HomeTeam.Conference
	game.HomeTeamDivision = g.HomeTeam.Division
	game.AwayTeamID = g.VisitorTeam.ID
	game.AwayTeamCity = g.VisitorTeam.City
	game.AwayTeamConference = g.VisitorTeam.Conference
	game.AwayTeamDivision = g.VisitorTeam.Division
	game.GameTime = strings.TrimSpace(g.Time)
	game.TimeRemaining = strings.TrimSpace(g.Time)
	game.Period = g.Period
	game.Postseason = g.Postseason
	game.Tickets = TicketLinks(game.HomeTeam, g.HomeTeam.FullName)
	return game
}

// TicketLinks builds the marketplace search placeholder attached to single-game payloads.
func TicketLinks(homeAbbr, homeFullName string) *games.TicketLinks {
	return &games.TicketLinks{
		Available:             false,
		Note:                  ticketNote,
		TicketmasterSearchURL: tickets.TicketmasterSearchURL(homeFullName),
		SeatGeekSearchURL:     tickets.SeatGeekSearchURL(homeAbbr),
	}
}

func gameDate(raw string) string {
	if len(raw) > 10 {
		return raw[:10]
	}
	return raw
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:           t.ID,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Name:         t.Name,
		FullName:     t.FullName,
		Conference:   t.Conference,
		Division:     t.Division,
		LogoURL:      cdn.LogoURL(t.Abbreviation, cdn.LogoLarge),
		LogoURLSmall: cdn.LogoURL(t.Abbreviation, cdn.LogoSmall),
	}
}

func mapPlayer(p playerResponse) players.Player {
	return players.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		FullName:     strings.TrimSpace(p.FirstName + " " + p.LastName),
		Position:     p.Position,
		Height:       p.Height,
		Weight:       p.Weight,
		JerseyNumber: p.JerseyNumber,
		College:      p.College,
		Country:      p.Country,
		DraftYear:    p.DraftYear,
		DraftRound:   p.DraftRound,
		DraftNumber:  p.DraftNumber,
		Team:         p.Team.Abbreviation,
		TeamName:     p.Team.FullName,
		TeamID:       p.Team.ID,
		HeadshotURL:  cdn.HeadshotURL(p.ID, ""),
	}
}

func mapSeasonAverages(playerID, season int, s seasonAveragesResponse) players.SeasonAverages {
	return players.SeasonAverages{
		PlayerID:    playerID,
		Season:      season,
		GamesPlayed: s.GamesPlayed,
		Minutes:     s.Min,
		Points:      s.Pts,
		Rebounds:    s.Reb,
		Assists:     s.Ast,
		Steals:      s.Stl,
		Blocks:      s.Blk,
		Turnovers:   s.Turnover,
		FGPct:       s.FGPct,
		FG3Pct:      s.FG3Pct,
		FTPct:       s.FTPct,
		HeadshotURL: cdn.HeadshotURL(playerID, ""),
	}
}

func mapBoxScore(gameID int, b boxScoreResponse) games.BoxScore {
	homeRows := b.HomeTeamStats
	if len(homeRows) == 0 {
		homeRows = b.HomeTeam.Players
	}
	awayRows := b.VisitorTeamStats
	if len(awayRows) == 0 {
		awayRows = b.VisitorTeam.Players
	}
	return games.BoxScore{
		GameID:      gameID,
		HomeTeam:    b.HomeTeam.Abbreviation,
		AwayTeam:    b.VisitorTeam.Abbreviation,
		HomePlayers: mapLines(homeRows),
		AwayPlayers: mapLines(awayRows),
	}
}

func mapLines(rows []statResponse) []games.PlayerLine {
	lines := make([]games.PlayerLine, 0, len(rows))
	for _, s := range rows {
		lines = append(lines, games.PlayerLine{
			PlayerID:     s.Player.ID,
			Name:         s.Player.FirstName + " " + s.Player.LastName,
			Position:     s.Player.Position,
			Minutes:      s.Min,
			Points:       s.Pts,
			Rebounds:     s.Reb,
			Assists:      s.Ast,
			Steals:       s.Stl,
			Blocks:       s.Blk,
			Turnovers:    s.Turnover,
			FGMade:       s.FGM,
			FGAttempted:  s.FGA,
			FG3Made:      s.FG3M,
			FG3Attempted: s.FG3A,
			FTMade:       s.FTM,
			FTAttempted:  s.FTA,
			HeadshotURL:  cdn.HeadshotURL(s.Player.ID, ""),
		})
	}
	return lines
}
