// Package store provides the in-memory registries that own all user data.
//
// There is no persistence layer: state is seeded at startup and lost on
// restart. Stores are safe for concurrent use and hand out copies, never
// internal slices.
package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"wealthwise/internal/core"
)

// TransactionStore owns the ordered transaction history, newest first.
// Transactions are immutable once added; an edit is a delete plus a new add.
type TransactionStore struct {
	mu    sync.Mutex
	items []core.Transaction
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

// Add validates the transaction, assigns a fresh ID and inserts it, keeping
// the collection sorted by date descending. Returns the assigned ID.
func (s *TransactionStore) Add(t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	t.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Date.After(s.items[j].Date)
	})
	return t.ID, nil
}

// Delete removes the transaction with the given ID. Unknown IDs are silently
// ignored.
func (s *TransactionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// List returns a snapshot of the history in the current sort order.
func (s *TransactionStore) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored transactions.
func (s *TransactionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
