package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
)

// Snapshot is the on-disk shape of archives and the fallback file.
type Snapshot struct {
	Date  string       `json:"date"`
	Count int          `json:"count"`
	Games []games.Game `json:"games"`
}

// FSStore reads the static fallback games file.
type FSStore struct {
	path string
}

// NewFSStore constructs a store reading the fallback file at path.
func NewFSStore(path string) *FSStore {
	return &FSStore{path: path}
}

// Path returns the fallback file location.
func (s *FSStore) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Exists reports whether the fallback file is present.
func (s *FSStore) Exists() bool {
	if s == nil || s.path == "" {
		return false
	}
	_, err := os.Stat(s.path)
	return err == nil
}

// LoadGames reads the fallback file. Both a bare JSON array and an object with a "games" array
// are accepted; a missing file yields an empty list.
func (s *FSStore) LoadGames() ([]games.Game, error) {
	if s == nil || s.path == "" {
		return []games.Game{}, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []games.Game{}, nil
		}
		return nil, err
	}
	return decodeGames(data)
}

// GetGame finds a fallback game by id.
func (s *FSStore) GetGame(id int) (games.Game, bool, error) {
	list, err := s.LoadGames()
	if err != nil {
		return games.Game{}, false, err
	}
	for _, g := range list {
		if g.ID == id {
			return g, true, nil
		}
	}
	return games.Game{}, false, nil
}

func decodeGames(data []byte) ([]games.Game, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []games.Game{}, nil
	}
	if trimmed[0] == '[' {
		var list []games.Game
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode fallback games: %w", err)
		}
		return list, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(trimmed, &snap); err != nil {
		return nil, fmt.Errorf("decode fallback games: %w", err)
	}
	if snap.Games == nil {
		return []games.Game{}, nil
	}
	return snap.Games, nil
}
