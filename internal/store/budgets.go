package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"wealthwise/internal/core"
)

// BudgetStore owns the user-defined budget envelopes. Names are not unique;
// the category link to transactions is a plain string match.
type BudgetStore struct {
	mu    sync.Mutex
	items []core.Budget
}

func NewBudgetStore() *BudgetStore {
	return &BudgetStore{}
}

// Add validates the budget, assigns a fresh ID and appends it.
func (s *BudgetStore) Add(b core.Budget) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	b.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, b)
	return b.ID, nil
}

// Update replaces the budget with the matching ID.
func (s *BudgetStore) Update(b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.items {
		if cur.ID == b.ID {
			s.items[i] = b
			return nil
		}
	}
	return fmt.Errorf("budget not found: %s", b.ID)
}

// Delete removes the budget with the given ID. Unknown IDs are silently
// ignored.
func (s *BudgetStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.items {
		if b.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// List returns a snapshot of the budgets in insertion order.
func (s *BudgetStore) List() []core.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Budget, len(s.items))
	copy(out, s.items)
	return out
}
