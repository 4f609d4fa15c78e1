package store

import (
	"sync"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
)

// MemoryStore keeps a thread-safe, ordered snapshot of games in memory.
type MemoryStore struct {
	mu    sync.RWMutex
	games []games.Game
	index map[int]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[int]int),
	}
}

// ListGames returns a copy of the current games in insertion order.
func (s *MemoryStore) ListGames() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]games.Game, len(s.games))
	copy(result, s.games)
	return result
}

// Len reports how many games are cached.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id int) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return games.Game{}, false
	}
	return s.games[i], true
}

// SetGames replaces the existing games with a new snapshot. Later duplicates win.
func (s *MemoryStore) SetGames(list []games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make([]games.Game, 0, len(list))
	s.index = make(map[int]int, len(list))
	for _, g := range list {
		s.putLocked(g)
	}
}

// AddGame appends a game, replacing any cached game with the same ID in place.
func (s *MemoryStore) AddGame(g games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putLocked(g)
}

func (s *MemoryStore) putLocked(g games.Game) {
	if i, ok := s.index[g.ID]; ok {
		s.games[i] = g
		return
	}
	s.index[g.ID] = len(s.games)
	s.games = append(s.games, g)
}
