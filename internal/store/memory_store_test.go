package store

import (
	"sync"
	"testing"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]games.Game{{ID: 3, HomeTeam: "BOS"}, {ID: 1, HomeTeam: "LAL"}})

	list := s.ListGames()
	if len(list) != 2 || list[0].ID != 3 || list[1].ID != 1 {
		t.Fatalf("expected insertion order preserved, got %+v", list)
	}
	g, ok := s.GetGame(1)
	if !ok || g.HomeTeam != "LAL" {
		t.Fatalf("expected game 1, got %+v ok=%v", g, ok)
	}
	if _, ok := s.GetGame(99); ok {
		t.Fatalf("expected missing game")
	}
}

func TestMemoryStoreSetReplaces(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]games.Game{{ID: 1}, {ID: 2}})
	s.SetGames([]games.Game{{ID: 5}})
	if s.Len() != 1 {
		t.Fatalf("expected replacement, got %d games", s.Len())
	}
	if _, ok := s.GetGame(1); ok {
		t.Fatalf("expected old games removed")
	}
}

func TestMemoryStoreAddGame(t *testing.T) {
	s := NewMemoryStore()
	s.AddGame(games.Game{ID: 1, Status: "scheduled"})
	s.AddGame(games.Game{ID: 2})
	s.AddGame(games.Game{ID: 1, Status: "Final"})

	list := s.ListGames()
	if len(list) != 2 || list[0].ID != 1 || list[0].Status != "Final" {
		t.Fatalf("expected in-place replacement, got %+v", list)
	}
}

func TestMemoryStoreListIsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]games.Game{{ID: 1, HomeTeam: "BOS"}})
	list := s.ListGames()
	list[0].HomeTeam = "changed"
	if g, _ := s.GetGame(1); g.HomeTeam != "BOS" {
		t.Fatalf("expected store to be unaffected by caller mutation")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			s.AddGame(games.Game{ID: id})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.ListGames()
		}()
	}
	wg.Wait()
	if s.Len() != 20 {
		t.Fatalf("expected 20 games, got %d", s.Len())
	}
}
