package model

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FeatureColumns are the training inputs expected in the CSV.
var FeatureColumns = []string{
	"off_rating_home",
	"off_rating_away",
	"def_rating_home",
	"def_rating_away",
	"net_rating_home",
	"net_rating_away",
	"pace_home",
	"pace_away",
	"home_rest_days",
	"away_rest_days",
	"home_last10_win_pct",
	"away_last10_win_pct",
	"home_starters_out",
	"away_starters_out",
}

// LabelColumn is 1 when the home team won.
const LabelColumn = "home_win"

const (
	homeTeamColumn = "home_team"
	awayTeamColumn = "away_team"
)

// Row is one parsed training example.
type Row struct {
	HomeTeam string
	AwayTeam string
	// Values holds every numeric column by name, including the feature columns.
	Values map[string]float64
	Label  float64
}

// Dataset is a parsed training CSV.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// ReadCSV parses training rows. The feature columns and label are required; home_team and
// away_team are optional and feed per-team averages.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range append(append([]string{}, FeatureColumns...), LabelColumn) {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns in CSV: %v", missing)
	}

	ds := &Dataset{}
	for _, name := range header {
		ds.Columns = append(ds.Columns, strings.TrimSpace(name))
	}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row := Row{Values: make(map[string]float64, len(record))}
		for i, raw := range record {
			name := ds.Columns[i]
			raw = strings.TrimSpace(raw)
			switch name {
			case homeTeamColumn:
				row.HomeTeam = strings.ToUpper(raw)
				continue
			case awayTeamColumn:
				row.AwayTeam = strings.ToUpper(raw)
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				if isRequired(name) {
					return nil, fmt.Errorf("line %d column %s: %w", line, name, err)
				}
				continue
			}
			row.Values[name] = v
		}
		row.Label = row.Values[LabelColumn]
		ds.Rows = append(ds.Rows, row)
	}
	if len(ds.Rows) == 0 {
		return nil, fmt.Errorf("training data has no rows")
	}
	return ds, nil
}

func isRequired(name string) bool {
	if name == LabelColumn {
		return true
	}
	for _, col := range FeatureColumns {
		if col == name {
			return true
		}
	}
	return false
}

func (r Row) features(cols []string) []float64 {
	x := make([]float64, len(cols))
	for i, col := range cols {
		x[i] = r.Values[col]
	}
	return x
}
