package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"wealthwise/internal/core"
)

// GoalStore owns the user-defined savings goals.
type GoalStore struct {
	mu    sync.Mutex
	items []core.Goal
}

func NewGoalStore() *GoalStore {
	return &GoalStore{}
}

// Add validates the goal, assigns a fresh ID and appends it.
func (s *GoalStore) Add(g core.Goal) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}
	g.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, g)
	return g.ID, nil
}

// Update replaces the goal with the matching ID.
func (s *GoalStore) Update(g core.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.items {
		if cur.ID == g.ID {
			s.items[i] = g
			return nil
		}
	}
	return fmt.Errorf("goal not found: %s", g.ID)
}

// Delete removes the goal with the given ID. Unknown IDs are silently
// ignored.
func (s *GoalStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.items {
		if g.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// List returns a snapshot of the goals in insertion order.
func (s *GoalStore) List() []core.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Goal, len(s.items))
	copy(out, s.items)
	return out
}
