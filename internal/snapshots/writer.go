package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/timeutil"
)

const defaultRetentionDays = 14

// Writer persists dated archives, the fallback file and the manifest, pruning old archives.
type Writer struct {
	mu            sync.Mutex
	basePath      string
	fallbackPath  string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath that also refreshes fallbackPath.
func NewWriter(basePath, fallbackPath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		fallbackPath:  fallbackPath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// FallbackPath exposes the fallback file location.
func (w *Writer) FallbackPath() string {
	if w == nil {
		return ""
	}
	return w.fallbackPath
}

// WriteGames archives games under date and refreshes the fallback file. changed is false when
// both files already held identical content.
func (w *Writer) WriteGames(date string, list []games.Game) (bool, error) {
	if w == nil {
		return false, fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return false, fmt.Errorf("date required")
	}

	sorted := append([]games.Game(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].GameDate != sorted[j].GameDate {
			return sorted[i].GameDate < sorted[j].GameDate
		}
		return sorted[i].ID < sorted[j].ID
	})
	data, err := json.MarshalIndent(Snapshot{Date: date, Count: len(sorted), Games: sorted}, "", "  ")
	if err != nil {
		return false, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	archived, err := writeIfChanged(GameSnapshotPath(w.basePath, date), data)
	if err != nil {
		return false, err
	}
	changed := archived
	if w.fallbackPath != "" {
		refreshed, err := writeIfChanged(w.fallbackPath, data)
		if err != nil {
			return changed, err
		}
		changed = changed || refreshed
	}
	return changed, w.updateManifest(date, len(sorted))
}

func writeIfChanged(path string, data []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := writeAtomic(path, data); err != nil {
		return false, err
	}
	return true, nil
}

// writeAtomic writes data to path via a sibling .tmp file and rename.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (w *Writer) updateManifest(date string, count int) error {
	m, _ := ReadManifest(w.basePath, w.retentionDays)
	now := w.now().UTC()

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}

	m.Games.Dates = w.pruneOldSnapshots(dates, now)
	m.Games.LastRefreshed = now
	m.Games.LastCount = count
	m.Games.FallbackPath = w.fallbackPath
	m.Retention.GamesDays = w.retentionDays

	return writeManifest(w.basePath, m, now)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, gamesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string, now time.Time) []string {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(GameSnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
