package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/predictions"
)

// SourceDatabase marks results computed from recorded predictions.
const SourceDatabase = "database"

const defaultRecordLimit = 50

const schema = `
CREATE TABLE IF NOT EXISTS predictions (
	prediction_id        TEXT PRIMARY KEY,
	game_id              INTEGER NOT NULL,
	home_team            TEXT NOT NULL,
	away_team            TEXT NOT NULL,
	home_win_probability REAL NOT NULL,
	predicted_winner     TEXT NOT NULL,
	confidence           TEXT NOT NULL,
	created_at           TEXT NOT NULL,
	actual_home_win      INTEGER,
	resolved_at          TEXT
);
CREATE INDEX IF NOT EXISTS idx_predictions_game_id ON predictions(game_id);
`

// ErrMissingPredictionID is returned when a prediction has no id to key on.
var ErrMissingPredictionID = errors.New("prediction id required")

// Store keeps issued predictions and their observed outcomes in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open connects to the SQLite database at path, creating the file and schema as needed.
// ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}
	memory := strings.HasPrefix(path, ":memory:")
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create results dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if memory {
		// one connection: each sqlite connection gets its own in-memory database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply results schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordPrediction stores an issued prediction keyed by its prediction id.
func (s *Store) RecordPrediction(ctx context.Context, p predictions.Prediction) error {
	if s == nil || s.db == nil {
		return nil
	}
	if p.PredictionID == "" {
		return ErrMissingPredictionID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO predictions(prediction_id, game_id, home_team, away_team, home_win_probability, predicted_winner, confidence, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PredictionID, p.GameID, p.HomeTeam, p.AwayTeam, p.HomeWinProbability, p.PredictedWinner, p.Confidence,
		s.now().UTC().Format(time.RFC3339),
	)
	return err
}

// RecordOutcome resolves every open prediction for gameID. Matchup predictions (game id 0) are
// never resolved. It returns the number of predictions updated.
func (s *Store) RecordOutcome(ctx context.Context, gameID int, homeWon bool) (int64, error) {
	if s == nil || s.db == nil || gameID == 0 {
		return 0, nil
	}
	actual := 0
	if homeWon {
		actual = 1
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE predictions SET actual_home_win = ?, resolved_at = ?
		 WHERE game_id = ? AND actual_home_win IS NULL`,
		actual, s.now().UTC().Format(time.RFC3339), gameID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Results summarizes resolved predictions, newest first. TotalPredictions is zero when nothing
// has been resolved yet.
func (s *Store) Results(ctx context.Context, limit int) (predictions.Results, error) {
	out := predictions.Results{Source: SourceDatabase, Records: []predictions.Record{}}
	if s == nil || s.db == nil {
		return out, nil
	}
	if limit <= 0 {
		limit = defaultRecordLimit
	}

	var total, correct int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN (home_win_probability > 0.5) = (actual_home_win = 1) THEN 1 ELSE 0 END), 0)
		 FROM predictions WHERE actual_home_win IS NOT NULL`,
	).Scan(&total, &correct)
	if err != nil {
		return out, err
	}
	out.TotalPredictions = total
	if total == 0 {
		return out, nil
	}
	out.Accuracy = math.Round(float64(correct)/float64(total)*1000) / 1000

	rows, err := s.db.QueryContext(ctx,
		`SELECT home_team, away_team, home_win_probability, actual_home_win
		 FROM predictions WHERE actual_home_win IS NOT NULL
		 ORDER BY resolved_at DESC, created_at DESC LIMIT ?`, limit)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			home, away string
			prob       float64
			actual     int
		)
		if err := rows.Scan(&home, &away, &prob, &actual); err != nil {
			return out, err
		}
		out.Records = append(out.Records, predictions.Record{
			Game:      home + " vs " + away,
			Predicted: prob,
			Actual:    actual,
			Correct:   (prob > 0.5) == (actual == 1),
		})
	}
	return out, rows.Err()
}

// Pending counts predictions still waiting for an outcome.
func (s *Store) Pending(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM predictions WHERE actual_home_win IS NULL AND game_id != 0`).Scan(&n)
	return n, err
}
