package games

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/cdn"
	domaingames "github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/tickets"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/metrics"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-predictor-service/internal/timeutil"
)

const (
	DefaultDays = 7

	teamWindowDays    = 30
	teamUpcomingLimit = 5
	rosterPageSize    = 50
)

// ErrGameNotFound is returned when no source knows the requested game.
var ErrGameNotFound = domaingames.ErrGameNotFound

// Store is the in-memory cache of the last good upcoming listing.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id int) (domaingames.Game, bool)
	SetGames(games []domaingames.Game)
	AddGame(game domaingames.Game)
}

// Fallback serves the static games file.
type Fallback interface {
	LoadGames() ([]domaingames.Game, error)
	GetGame(id int) (domaingames.Game, bool, error)
}

// OutcomeRecorder receives observed results of completed games.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, gameID int, homeWon bool) (int64, error)
}

// Deps wires the games service.
type Deps struct {
	Provider providers.DataProvider
	Tickets  providers.TicketProvider
	Store    Store
	Fallback Fallback
	Outcomes OutcomeRecorder
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Location *time.Location
}

// Service answers game queries across the live API, the cache and the fallback file.
type Service struct {
	provider providers.DataProvider
	tickets  providers.TicketProvider
	store    Store
	fallback Fallback
	outcomes OutcomeRecorder
	logger   *slog.Logger
	metrics  *metrics.Recorder
	location *time.Location
	now      func() time.Time
}

// NewService constructs a Service. A nil location means UTC.
func NewService(d Deps) *Service {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		provider: d.Provider,
		tickets:  d.Tickets,
		store:    d.Store,
		fallback: d.Fallback,
		outcomes: d.Outcomes,
		logger:   d.Logger,
		metrics:  d.Metrics,
		location: loc,
		now:      time.Now,
	}
}

// Upcoming lists games for [today, today+days]. A non-empty live listing replaces the cache;
// otherwise the cache and then the fallback file answer.
func (s *Service) Upcoming(ctx context.Context, days int) domaingames.Listing {
	if days < 0 {
		days = DefaultDays
	}
	from, to := timeutil.Window(s.now(), s.location, 0, days)
	list, err := s.fetchGames(ctx, providers.GameQuery{StartDate: from, EndDate: to})
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "upcoming games fetch failed, degrading",
			"err", err,
			logging.FieldDate, from,
		)
	}
	if err == nil && len(list) > 0 {
		if s.store != nil {
			s.store.SetGames(list)
		}
		return s.listing(domaingames.SourceAPI, list)
	}

	if s.store != nil {
		if cached := s.store.ListGames(); len(cached) > 0 {
			return s.listing(domaingames.SourceCache, cached)
		}
	}

	static := []domaingames.Game{}
	if s.fallback != nil {
		loaded, ferr := s.fallback.LoadGames()
		if ferr != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "fallback games unreadable", "err", ferr)
		} else {
			static = loaded
		}
	}
	return s.listing(domaingames.SourceStatic, static)
}

func (s *Service) listing(source domaingames.Source, list []domaingames.Game) domaingames.Listing {
	s.metrics.RecordGamesSource(string(source))
	return domaingames.NewListing(source, list)
}

// Today lists today's games from the live API only.
func (s *Service) Today(ctx context.Context) ([]domaingames.Game, error) {
	day, _ := timeutil.Window(s.now(), s.location, 0, 0)
	list, err := s.fetchGames(ctx, providers.GameQuery{StartDate: day, EndDate: day})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Past lists completed games for [today-days, yesterday], newest first, with the winner set.
// Only games the upstream reports as final are sent to the outcome recorder. Zero days is an
// empty window.
func (s *Service) Past(ctx context.Context, days int) ([]domaingames.Game, error) {
	if days < 0 {
		days = DefaultDays
	}
	if days == 0 {
		return []domaingames.Game{}, nil
	}
	from, to := timeutil.Window(s.now(), s.location, -days, -1)
	list, err := s.fetchGames(ctx, providers.GameQuery{StartDate: from, EndDate: to})
	if err != nil {
		return nil, err
	}

	out := make([]domaingames.Game, 0, len(list))
	for _, g := range list {
		final := g.IsFinal()
		if !final && g.HomeScore == 0 {
			continue
		}
		g.Winner = g.AwayTeam
		if g.HomeWon() {
			g.Winner = g.HomeTeam
		}
		g.WinnerLogo = cdn.LogoURL(g.Winner, cdn.LogoLarge)
		g.Status = "Final"
		out = append(out, g)
		if final {
			s.recordOutcome(ctx, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GameDate > out[j].GameDate
	})
	return out, nil
}

func (s *Service) recordOutcome(ctx context.Context, g domaingames.Game) {
	if s.outcomes == nil {
		return
	}
	if _, err := s.outcomes.RecordOutcome(ctx, g.ID, g.HomeWon()); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "failed to record game outcome",
			logging.FieldGameID, g.ID,
			"err", err,
		)
	}
}

// Game resolves a full game record from the API, then the cache, then the fallback file.
func (s *Service) Game(ctx context.Context, id int) (domaingames.Game, error) {
	if s.provider != nil {
		g, err := s.provider.FetchGame(ctx, id)
		if err == nil {
			return g, nil
		}
		if !errors.Is(err, providers.ErrNotFound) {
			logging.Warn(logging.FromContext(ctx, s.logger), "game fetch failed, checking cache",
				logging.FieldGameID, id,
				"err", err,
			)
		}
	}
	if s.store != nil {
		if g, ok := s.store.GetGame(id); ok {
			return withDefaults(g), nil
		}
	}
	if s.fallback != nil {
		g, ok, err := s.fallback.GetGame(id)
		if err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "fallback games unreadable", "err", err)
		}
		if ok {
			return withDefaults(g), nil
		}
	}
	return domaingames.Game{}, ErrGameNotFound
}

// withDefaults fills the fields a cached or static listing entry does not carry.
func withDefaults(g domaingames.Game) domaingames.Game {
	if g.Status == "" {
		g.Status = "scheduled"
	}
	if g.Season == 0 {
		g.Season = domaingames.DefaultSeason
	}
	if g.Tickets == nil {
		g.Tickets = balldontlie.TicketLinks(g.HomeTeam, g.HomeTeamName)
	}
	return g
}

// Details returns the live game with both teams' rosters and upcoming schedules. Roster and
// schedule failures leave those lists empty.
func (s *Service) Details(ctx context.Context, id int) (domaingames.Details, error) {
	if s.provider == nil {
		return domaingames.Details{}, ErrGameNotFound
	}
	g, err := s.provider.FetchGame(ctx, id)
	if err != nil {
		if !errors.Is(err, providers.ErrNotFound) {
			logging.Warn(logging.FromContext(ctx, s.logger), "game details fetch failed",
				logging.FieldGameID, id,
				"err", err,
			)
		}
		return domaingames.Details{}, ErrGameNotFound
	}
	return domaingames.Details{
		Game:            g,
		HomeTeamDetails: s.teamDetails(ctx, g.HomeTeam, g.HomeTeamName, g.HomeTeamLogo, g.HomeTeamID),
		AwayTeamDetails: s.teamDetails(ctx, g.AwayTeam, g.AwayTeamName, g.AwayTeamLogo, g.AwayTeamID),
	}, nil
}

func (s *Service) teamDetails(ctx context.Context, abbr, name, logo string, teamID int) domaingames.TeamDetails {
	d := domaingames.TeamDetails{
		Abbreviation:  abbr,
		Name:          name,
		LogoURL:       logo,
		LogoURLSmall:  cdn.LogoURL(abbr, cdn.LogoSmall),
		Roster:        []players.Player{},
		UpcomingGames: []domaingames.Game{},
	}
	if teamID == 0 {
		return d
	}
	roster, err := s.provider.FetchPlayers(ctx, providers.PlayerQuery{TeamIDs: []int{teamID}, PerPage: rosterPageSize})
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "roster fetch failed", logging.FieldTeam, abbr, "err", err)
	}
	if roster != nil {
		d.Roster = roster
	}
	upcoming, err := s.TeamUpcoming(ctx, teamID, teamUpcomingLimit)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "team schedule fetch failed", logging.FieldTeam, abbr, "err", err)
	}
	if upcoming != nil {
		d.UpcomingGames = upcoming
	}
	return d
}

// TeamUpcoming lists up to limit games for a team over the next 30 days.
func (s *Service) TeamUpcoming(ctx context.Context, teamID, limit int) ([]domaingames.Game, error) {
	if limit <= 0 {
		limit = teamUpcomingLimit
	}
	from, to := timeutil.Window(s.now(), s.location, 0, teamWindowDays)
	list, err := s.fetchGames(ctx, providers.GameQuery{
		StartDate: from,
		EndDate:   to,
		TeamIDs:   []int{teamID},
		PerPage:   limit,
	})
	if err != nil {
		return nil, err
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// BoxScore returns per-player lines; lists are empty when the upstream has no rows.
func (s *Service) BoxScore(ctx context.Context, id int) (domaingames.BoxScore, error) {
	if s.provider == nil {
		return domaingames.BoxScore{}, providers.ErrProviderUnavailable
	}
	b, err := s.provider.FetchBoxScore(ctx, id)
	if err != nil {
		return domaingames.BoxScore{}, err
	}
	if b.HomePlayers == nil {
		b.HomePlayers = []domaingames.PlayerLine{}
	}
	if b.AwayPlayers == nil {
		b.AwayPlayers = []domaingames.PlayerLine{}
	}
	return b, nil
}

// Tickets resolves the game and looks up marketplace listings for it.
func (s *Service) Tickets(ctx context.Context, id int) (tickets.GameTickets, error) {
	g, err := s.Game(ctx, id)
	if err != nil {
		return tickets.GameTickets{}, err
	}
	info := tickets.Unavailable(g.HomeTeamName, "Ticket provider not configured", "")
	if s.tickets != nil {
		info = s.tickets.FetchTickets(ctx, providers.TicketQuery{
			HomeTeam: g.HomeTeamName,
			AwayTeam: g.AwayTeamName,
			GameDate: g.GameDate,
		})
	}
	return tickets.GameTickets{
		GameID:   id,
		Matchup:  g.Matchup(),
		GameDate: g.GameDate,
		Tickets:  info,
	}, nil
}

func (s *Service) fetchGames(ctx context.Context, q providers.GameQuery) ([]domaingames.Game, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	list, err := s.provider.FetchGames(ctx, q)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domaingames.Game{}
	}
	return list, nil
}
