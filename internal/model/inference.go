package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/predictions"
)

// FeatureVector assembles the inference row for a matchup. Columns containing "_home" read the
// home team's home averages, "_away" the away team's away averages, anything else the home
// averages. Missing columns are 0. ok is false when either team has no averages.
func (b *Bundle) FeatureVector(home, away string) ([]float64, bool) {
	homeStats, okHome := b.TeamStatsHome[home]
	awayStats, okAway := b.TeamStatsAway[away]
	if !okHome || !okAway {
		return nil, false
	}
	x := make([]float64, len(b.FeatureCols))
	for i, col := range b.FeatureCols {
		switch {
		case strings.Contains(col, "_home"):
			x[i] = homeStats[col]
		case strings.Contains(col, "_away"):
			x[i] = awayStats[col]
		default:
			x[i] = homeStats[col]
		}
	}
	return x, true
}

// PredictProba returns the home-win probability for a raw feature row.
func (b *Bundle) PredictProba(x []float64) (float64, error) {
	if len(x) != len(b.FeatureCols) {
		return 0, fmt.Errorf("feature row has %d values, model expects %d", len(x), len(b.FeatureCols))
	}
	z := b.Intercept
	for i, v := range x {
		z += b.Coef[i] * (v - b.Scaler.Mean[i]) / b.Scaler.Scale[i]
	}
	return sigmoid(z), nil
}

// PredictMatchup assembles features and returns the home-win probability.
func (b *Bundle) PredictMatchup(home, away string) (float64, bool, error) {
	x, ok := b.FeatureVector(home, away)
	if !ok {
		return 0, false, nil
	}
	p, err := b.PredictProba(x)
	return p, true, err
}

// Confidence buckets the winning side's probability.
func Confidence(homeWinProb float64) string {
	p := math.Max(homeWinProb, 1-homeWinProb)
	switch {
	case p >= 0.7:
		return predictions.ConfidenceHigh
	case p >= 0.55:
		return predictions.ConfidenceMedium
	default:
		return predictions.ConfidenceLow
	}
}

func sigmoid(z float64) float64 {
	if z > 35 {
		return 1
	}
	if z < -35 {
		return 0
	}
	return 1 / (1 + math.Exp(-z))
}
