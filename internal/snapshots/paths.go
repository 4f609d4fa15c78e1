package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	gamesDir     = "games"
	manifestName = "manifest.json"
)

// GameSnapshotPath builds the path to a dated games archive.
func GameSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, gamesDir, fmt.Sprintf("%s.json", date))
}

// ManifestPath builds the path to the archive manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestName)
}
