package teams

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-predictor-service/internal/cdn"
	domaingames "github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/model"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

const (
	SourceAPI   = "balldontlie_api"
	SourceModel = "model"

	rosterPageSize       = 50
	defaultUpcomingLimit = 5
)

// ErrTeamNotFound is returned for abbreviations outside the catalog.
var ErrTeamNotFound = errors.New("team not found")

// TeamNotFoundError names the unknown abbreviation as requested.
type TeamNotFoundError struct {
	Abbreviation string
}

func (e *TeamNotFoundError) Error() string {
	return fmt.Sprintf("Team not found: %s", e.Abbreviation)
}

func (e *TeamNotFoundError) Unwrap() error { return ErrTeamNotFound }

// ModelTeams lists the teams a loaded model has averages for.
type ModelTeams interface {
	Teams() []string
}

// Schedule lists a team's upcoming games.
type Schedule interface {
	TeamUpcoming(ctx context.Context, teamID, limit int) ([]domaingames.Game, error)
}

// Service answers team queries.
type Service struct {
	provider providers.DataProvider
	schedule Schedule
	model    ModelTeams
	logger   *slog.Logger
}

// NewService constructs a Service. model is nil when no bundle is loaded.
func NewService(provider providers.DataProvider, schedule Schedule, model ModelTeams, logger *slog.Logger) *Service {
	return &Service{provider: provider, schedule: schedule, model: model, logger: logger}
}

// List returns teams from the API, or the model's team keys when the API is unavailable.
func (s *Service) List(ctx context.Context) (teams.Listing, error) {
	if s.provider != nil {
		list, err := s.provider.FetchTeams(ctx)
		if err == nil && len(list) > 0 {
			return teams.Listing{Source: SourceAPI, Count: len(list), Teams: list}, nil
		}
		if err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "teams fetch failed, using model teams", "err", err)
		}
	}

	if s.model == nil {
		return teams.Listing{}, model.ErrNotLoaded
	}
	keys := s.model.Teams()
	return teams.Listing{Source: SourceModel, Count: len(keys), Teams: keys}, nil
}

// Logo returns the CDN logo for an abbreviation. Sizes other than S (any case) mean L.
func (s *Service) Logo(abbr, size string) (teams.Logo, error) {
	upper := strings.ToUpper(strings.TrimSpace(abbr))
	size = cdn.NormalizeLogoSize(size)
	url := cdn.LogoURL(upper, size)
	if url == "" {
		return teams.Logo{}, &TeamNotFoundError{Abbreviation: abbr}
	}
	return teams.Logo{Team: upper, Size: size, LogoURL: url}, nil
}

// Roster lists a team's players.
func (s *Service) Roster(ctx context.Context, teamID int) (players.Roster, error) {
	if s.provider == nil {
		return players.Roster{}, providers.ErrProviderUnavailable
	}
	list, err := s.provider.FetchPlayers(ctx, providers.PlayerQuery{TeamIDs: []int{teamID}, PerPage: rosterPageSize})
	if err != nil {
		return players.Roster{}, err
	}
	if list == nil {
		list = []players.Player{}
	}
	return players.Roster{TeamID: teamID, Count: len(list), Players: list}, nil
}

// Upcoming lists up to limit games for a team over the next 30 days.
func (s *Service) Upcoming(ctx context.Context, teamID, limit int) (teams.Schedule, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	if s.schedule == nil {
		return teams.Schedule{}, providers.ErrProviderUnavailable
	}
	list, err := s.schedule.TeamUpcoming(ctx, teamID, limit)
	if err != nil {
		return teams.Schedule{}, err
	}
	if list == nil {
		list = []domaingames.Game{}
	}
	return teams.Schedule{TeamID: teamID, Count: len(list), Games: list}, nil
}
