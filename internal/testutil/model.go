package testutil

import (
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/nba-predictor-service/internal/model"
)

// SampleBundle returns a two-feature model where home points raise and away points lower the home
// win probability. LAL and BOS have home averages; GSW and LAL have away averages.
func SampleBundle() *model.Bundle {
	return &model.Bundle{
		FeatureCols: []string{"pts_home", "pts_away"},
		LabelColumn: model.LabelColumn,
		Scaler:      model.Scaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}},
		Coef:        []float64{0.1, -0.1},
		TeamStatsHome: map[string]model.TeamStats{
			"LAL": {"pts_home": 120, "reb_home": 50},
			"BOS": {"pts_home": 100, "reb_home": 40},
		},
		TeamStatsAway: map[string]model.TeamStats{
			"GSW": {"pts_away": 100, "reb_away": 40},
			"LAL": {"pts_away": 115, "reb_away": 48},
		},
	}
}

// WriteBundle saves SampleBundle to a temp file and returns its path.
func WriteBundle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model", "nba_model.json")
	if err := SampleBundle().Save(path); err != nil {
		t.Fatalf("failed to write model bundle: %v", err)
	}
	return path
}
