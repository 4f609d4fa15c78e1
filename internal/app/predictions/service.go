package predictions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-predictor-service/internal/cdn"
	domaingames "github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/predictions"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/metrics"
	"github.com/preston-bernstein/nba-predictor-service/internal/model"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

const (
	keyPlayerLimit = 3
	rosterPageSize = 50
	maxFactors     = 4
	reboundMargin  = 3
	resultsLimit   = 50
)

var (
	// ErrModelNotLoaded is returned when no bundle is available.
	ErrModelNotLoaded = model.ErrNotLoaded
	// ErrGameNotFound is returned when no source knows the requested game.
	ErrGameNotFound = domaingames.ErrGameNotFound
)

// MissingStatsError reports a matchup the model has no averages for.
type MissingStatsError struct {
	Home string
	Away string
}

func (e *MissingStatsError) Error() string {
	return fmt.Sprintf("Missing stats for teams: %s or %s", e.Home, e.Away)
}

// Store is the upcoming-games cache; games fetched on demand are appended to it.
type Store interface {
	GetGame(id int) (domaingames.Game, bool)
	AddGame(game domaingames.Game)
}

// Fallback serves the static games file.
type Fallback interface {
	GetGame(id int) (domaingames.Game, bool, error)
}

// History persists issued predictions and summarizes resolved ones.
type History interface {
	RecordPrediction(ctx context.Context, p predictions.Prediction) error
	Results(ctx context.Context, limit int) (predictions.Results, error)
}

// Deps wires the predictions service.
type Deps struct {
	Model    *model.Bundle
	Provider providers.DataProvider
	Store    Store
	Fallback Fallback
	History  History
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Service predicts game outcomes with the loaded bundle.
type Service struct {
	model    *model.Bundle
	provider providers.DataProvider
	store    Store
	fallback Fallback
	history  History
	logger   *slog.Logger
	metrics  *metrics.Recorder
	newID    func() string
}

// NewService constructs a Service. A nil Model makes every prediction fail with ErrModelNotLoaded.
func NewService(d Deps) *Service {
	return &Service{
		model:    d.Model,
		provider: d.Provider,
		store:    d.Store,
		fallback: d.Fallback,
		history:  d.History,
		logger:   d.Logger,
		metrics:  d.Metrics,
		newID:    func() string { return uuid.NewString() },
	}
}

// ModelLoaded reports whether a bundle is available.
func (s *Service) ModelLoaded() bool {
	return s != nil && s.model != nil
}

// PredictGame predicts a known game, found in the cache, then the fallback file, then the API.
func (s *Service) PredictGame(ctx context.Context, id int) (predictions.Prediction, error) {
	if !s.ModelLoaded() {
		return predictions.Prediction{}, ErrModelNotLoaded
	}
	g, err := s.findGame(ctx, id)
	if err != nil {
		return predictions.Prediction{}, err
	}

	p, err := s.probability(g.HomeTeam, g.AwayTeam)
	if err != nil {
		return predictions.Prediction{}, err
	}

	homeName := orDefault(g.HomeTeamName, g.HomeTeam)
	awayName := orDefault(g.AwayTeamName, g.AwayTeam)
	homeLogo := orDefault(g.HomeTeamLogo, cdn.LogoURL(g.HomeTeam, cdn.LogoLarge))
	awayLogo := orDefault(g.AwayTeamLogo, cdn.LogoURL(g.AwayTeam, cdn.LogoLarge))

	out := build(id, g.HomeTeam, homeName, homeLogo, g.AwayTeam, awayName, awayLogo, p)
	winnerID := g.AwayTeamID
	if out.HomePicked() {
		winnerID = g.HomeTeamID
	}
	return s.finish(ctx, out, p, winnerID), nil
}

// PredictMatchup predicts an arbitrary pairing of team abbreviations.
func (s *Service) PredictMatchup(ctx context.Context, home, away string) (predictions.Prediction, error) {
	if !s.ModelLoaded() {
		return predictions.Prediction{}, ErrModelNotLoaded
	}
	homeAbbr := strings.ToUpper(strings.TrimSpace(home))
	awayAbbr := strings.ToUpper(strings.TrimSpace(away))

	p, err := s.probability(homeAbbr, awayAbbr)
	if err != nil {
		var missing *MissingStatsError
		if errors.As(err, &missing) {
			// message echoes the caller's spelling
			return predictions.Prediction{}, &MissingStatsError{Home: home, Away: away}
		}
		return predictions.Prediction{}, err
	}

	out := build(0,
		homeAbbr, teams.FullName(homeAbbr), cdn.LogoURL(homeAbbr, cdn.LogoLarge),
		awayAbbr, teams.FullName(awayAbbr), cdn.LogoURL(awayAbbr, cdn.LogoLarge),
		p,
	)
	winnerID, _ := teams.BalldontlieID(out.PredictedWinner)
	return s.finish(ctx, out, p, winnerID), nil
}

// Results reports accuracy over resolved predictions, or the reference sample when none exist.
func (s *Service) Results(ctx context.Context) predictions.Results {
	if s.history == nil {
		return predictions.SampleResults()
	}
	res, err := s.history.Results(ctx, resultsLimit)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "results query failed", "err", err)
		return predictions.SampleResults()
	}
	if res.TotalPredictions == 0 {
		return predictions.SampleResults()
	}
	return res
}

func (s *Service) findGame(ctx context.Context, id int) (domaingames.Game, error) {
	if s.store != nil {
		if g, ok := s.store.GetGame(id); ok {
			return g, nil
		}
	}
	if s.fallback != nil {
		g, ok, err := s.fallback.GetGame(id)
		if err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "fallback games unreadable", "err", err)
		}
		if ok {
			return g, nil
		}
	}
	if s.provider != nil {
		g, err := s.provider.FetchGame(ctx, id)
		if err == nil {
			if s.store != nil {
				s.store.AddGame(g)
			}
			return g, nil
		}
		if !errors.Is(err, providers.ErrNotFound) {
			logging.Warn(logging.FromContext(ctx, s.logger), "game fetch failed",
				logging.FieldGameID, id,
				"err", err,
			)
		}
	}
	return domaingames.Game{}, ErrGameNotFound
}

func (s *Service) probability(home, away string) (float64, error) {
	p, ok, err := s.model.PredictMatchup(home, away)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &MissingStatsError{Home: home, Away: away}
	}
	return p, nil
}

func build(gameID int, home, homeName, homeLogo, away, awayName, awayLogo string, p float64) predictions.Prediction {
	out := predictions.Prediction{
		GameID:             gameID,
		HomeTeam:           home,
		HomeTeamName:       homeName,
		HomeTeamLogo:       homeLogo,
		AwayTeam:           away,
		AwayTeamName:       awayName,
		AwayTeamLogo:       awayLogo,
		HomeWinProbability: round3(p),
		AwayWinProbability: round3(1 - p),
		Confidence:         model.Confidence(p),
	}
	if p > 0.5 {
		out.PredictedWinner, out.PredictedWinnerName, out.PredictedWinnerLogo = home, homeName, homeLogo
	} else {
		out.PredictedWinner, out.PredictedWinnerName, out.PredictedWinnerLogo = away, awayName, awayLogo
	}
	return out
}

// finish attaches key players and factors, assigns an id and records the prediction.
func (s *Service) finish(ctx context.Context, out predictions.Prediction, homeWinProb float64, winnerTeamID int) predictions.Prediction {
	if winnerTeamID != 0 {
		if kp := s.keyPlayers(ctx, winnerTeamID); len(kp) > 0 {
			out.KeyPlayers = kp
		}
	}
	if f := s.factors(out.HomeTeam, out.AwayTeam, homeWinProb); len(f) > 0 {
		out.PredictionFactors = f
	}

	out.PredictionID = s.newID()
	s.metrics.RecordPrediction(out.Confidence)
	if s.history != nil {
		if err := s.history.RecordPrediction(ctx, out); err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "failed to record prediction",
				logging.FieldGameID, out.GameID,
				logging.FieldError, err,
			)
		}
	}
	logging.Info(logging.FromContext(ctx, s.logger), "prediction issued",
		logging.FieldGameID, out.GameID,
		logging.FieldHomeTeam, out.HomeTeam,
		logging.FieldAwayTeam, out.AwayTeam,
		logging.FieldProb, out.HomeWinProbability,
		logging.FieldConfidence, out.Confidence,
	)
	return out
}

var impactReasons = map[string]string{
	"G":   "Floor General",
	"F":   "Two-Way Threat",
	"C":   "Rim Protector",
	"G-F": "Versatile Scorer",
	"F-G": "Playmaking Forward",
	"F-C": "Interior Presence",
	"C-F": "Stretch Big",
}

// keyPlayers picks up to three roster players from the first six, skipping a repeated position
// once more than one has been chosen. Roster failures yield none.
func (s *Service) keyPlayers(ctx context.Context, teamID int) []predictions.KeyPlayer {
	if s.provider == nil {
		return nil
	}
	roster, err := s.provider.FetchPlayers(ctx, providers.PlayerQuery{TeamIDs: []int{teamID}, PerPage: rosterPageSize})
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "key players unavailable", "team_id", teamID, "err", err)
		return nil
	}
	if len(roster) > 2*keyPlayerLimit {
		roster = roster[:2*keyPlayerLimit]
	}

	out := make([]predictions.KeyPlayer, 0, keyPlayerLimit)
	seen := make(map[string]bool)
	for _, pl := range roster {
		if len(out) >= keyPlayerLimit {
			break
		}
		if seen[pl.Position] && len(out) > 1 {
			continue
		}
		seen[pl.Position] = true
		reason, ok := impactReasons[pl.Position]
		if !ok {
			reason = "Key Contributor"
		}
		headshot := pl.HeadshotURL
		if headshot == "" {
			headshot = cdn.HeadshotURL(pl.ID, "")
		}
		out = append(out, predictions.KeyPlayer{
			ID:           pl.ID,
			Name:         pl.FullName,
			Position:     pl.Position,
			HeadshotURL:  headshot,
			ImpactReason: reason,
		})
	}
	return out
}

func (s *Service) factors(home, away string, homeWinProb float64) []string {
	homeStats, okHome := s.model.HomeStats(home)
	awayStats, okAway := s.model.AwayStats(away)
	if !okHome || !okAway || len(homeStats) == 0 || len(awayStats) == 0 {
		return nil
	}

	var out []string
	if homeStats["pts_home"] > awayStats["pts_away"] {
		out = append(out, home+" averages more points per game")
	} else {
		out = append(out, away+" averages more points per game")
	}
	if homeWinProb > 0.5 {
		out = append(out, "Home court advantage favors "+home)
	}
	homeReb, awayReb := homeStats["reb_home"], awayStats["reb_away"]
	switch {
	case homeReb > awayReb+reboundMargin:
		out = append(out, home+" dominates on the boards")
	case awayReb > homeReb+reboundMargin:
		out = append(out, away+" dominates on the boards")
	}
	if len(out) > maxFactors {
		out = out[:maxFactors]
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
