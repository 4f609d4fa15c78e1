package players

import (
	"context"
	"strings"

	"github.com/preston-bernstein/nba-predictor-service/internal/cdn"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

const (
	DefaultPerPage = 25
	DefaultSeason  = 2024
)

// Service answers player queries.
type Service struct {
	provider providers.PlayerProvider
}

// NewService constructs a Service over a player provider.
func NewService(provider providers.PlayerProvider) *Service {
	return &Service{provider: provider}
}

// Search finds players by name; an empty query lists players.
func (s *Service) Search(ctx context.Context, query string, perPage int) (players.SearchResult, error) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if s.provider == nil {
		return players.SearchResult{}, providers.ErrProviderUnavailable
	}
	list, err := s.provider.FetchPlayers(ctx, providers.PlayerQuery{Search: strings.TrimSpace(query), PerPage: perPage})
	if err != nil {
		return players.SearchResult{}, err
	}
	if list == nil {
		list = []players.Player{}
	}
	return players.SearchResult{Count: len(list), Players: list}, nil
}

// Get returns a player's season averages with a headshot. A player without averages gets a
// zeroed record.
func (s *Service) Get(ctx context.Context, playerID, season int) (players.SeasonAverages, error) {
	if season <= 0 {
		season = DefaultSeason
	}
	if s.provider == nil {
		return players.SeasonAverages{}, providers.ErrProviderUnavailable
	}
	avg, ok, err := s.provider.FetchSeasonAverages(ctx, playerID, season)
	if err != nil {
		return players.SeasonAverages{}, err
	}
	if !ok {
		avg = players.SeasonAverages{PlayerID: playerID, Season: season}
	}
	avg.HeadshotURL = cdn.HeadshotURL(playerID, "")
	return avg, nil
}
