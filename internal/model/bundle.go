// Package model loads the pre-trained logistic regression bundle and runs inference for matchups.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrModelNotFound is returned when the bundle file does not exist.
var ErrModelNotFound = errors.New("model bundle not found")

// ErrNotLoaded is returned by callers that need a bundle when none was loaded.
var ErrNotLoaded = errors.New("model not loaded")

// TeamStats maps a feature column to a team's historical average for it.
type TeamStats map[string]float64

// Scaler holds standardisation parameters, one entry per feature column.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Metrics captures held-out evaluation from training.
type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	AUC       float64 `json:"auc"`
	TrainRows int     `json:"train_rows"`
	TestRows  int     `json:"test_rows"`
}

// Bundle is the serialized model: pipeline parameters plus per-team feature averages.
type Bundle struct {
	FeatureCols   []string             `json:"feature_cols"`
	LabelColumn   string               `json:"label_column"`
	Scaler        Scaler               `json:"scaler"`
	Coef          []float64            `json:"coef"`
	Intercept     float64              `json:"intercept"`
	TeamStatsHome map[string]TeamStats `json:"team_stats_home"`
	TeamStatsAway map[string]TeamStats `json:"team_stats_away"`
	Metrics       Metrics              `json:"metrics"`
	TrainedAt     time.Time            `json:"trained_at"`
}

// Load reads and validates a bundle from disk.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, err
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode model bundle: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Save writes the bundle as indented JSON, creating parent directories.
func (b *Bundle) Save(path string) error {
	if err := b.validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (b *Bundle) validate() error {
	n := len(b.FeatureCols)
	if n == 0 {
		return errors.New("model bundle has no feature columns")
	}
	if len(b.Coef) != n {
		return fmt.Errorf("model bundle has %d coefficients for %d features", len(b.Coef), n)
	}
	if len(b.Scaler.Mean) != n || len(b.Scaler.Scale) != n {
		return fmt.Errorf("model bundle scaler does not match %d features", n)
	}
	for i, s := range b.Scaler.Scale {
		if s == 0 {
			b.Scaler.Scale[i] = 1
		}
	}
	if b.TeamStatsHome == nil {
		b.TeamStatsHome = map[string]TeamStats{}
	}
	if b.TeamStatsAway == nil {
		b.TeamStatsAway = map[string]TeamStats{}
	}
	return nil
}

// Teams returns the sorted union of teams with home or away averages.
func (b *Bundle) Teams() []string {
	seen := make(map[string]struct{}, len(b.TeamStatsHome))
	for team := range b.TeamStatsHome {
		seen[team] = struct{}{}
	}
	for team := range b.TeamStatsAway {
		seen[team] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for team := range seen {
		out = append(out, team)
	}
	sort.Strings(out)
	return out
}

// HomeStats returns the home-side averages for a team.
func (b *Bundle) HomeStats(team string) (TeamStats, bool) {
	stats, ok := b.TeamStatsHome[team]
	return stats, ok
}

// AwayStats returns the away-side averages for a team.
func (b *Bundle) AwayStats(team string) (TeamStats, bool) {
	stats, ok := b.TeamStatsAway[team]
	return stats, ok
}
