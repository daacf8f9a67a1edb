package store

import (
	"reflect"
	"testing"
	"time"

	"wealthwise/internal/core"
)

func newTx(desc string, typ core.TransactionType, cents int64, date time.Time) core.Transaction {
	return core.Transaction{
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Type:        typ,
		Date:        date,
	}
}

func TestTransactionStoreAddSortsDescending(t *testing.T) {
	s := NewTransactionStore()
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	if _, err := s.Add(newTx("middle", core.Income, 100, base)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(newTx("oldest", core.Income, 100, base.AddDate(0, -1, 0))); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(newTx("newest", core.Income, 100, base.AddDate(0, 1, 0))); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := s.List()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	order := []string{"newest", "middle", "oldest"}
	for i, want := range order {
		if got[i].Description != want {
			t.Fatalf("position %d = %q, want %q", i, got[i].Description, want)
		}
	}
}

func TestTransactionStoreAddRejectsInvalid(t *testing.T) {
	s := NewTransactionStore()
	_, err := s.Add(core.Transaction{Description: "x", Amount: core.Money{Cents: 0}, Type: core.Income, Date: time.Now()})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if s.Len() != 0 {
		t.Fatalf("invalid transaction was stored")
	}
}

func TestTransactionStoreAddThenDeleteRestoresSnapshot(t *testing.T) {
	s := NewTransactionStore()
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if _, err := s.Add(newTx("keep", core.Income, 100, base)); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := s.List()

	id, err := s.Add(newTx("temp", core.Expense, 50, base.AddDate(0, 0, 5)))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Delete(id)

	after := s.List()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("snapshot changed: before=%v after=%v", before, after)
	}
}

func TestTransactionStoreDeleteUnknownIsNoop(t *testing.T) {
	s := NewTransactionStore()
	if _, err := s.Add(newTx("a", core.Income, 100, time.Now())); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Delete("no-such-id")
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestTransactionStoreListReturnsCopy(t *testing.T) {
	s := NewTransactionStore()
	if _, err := s.Add(newTx("a", core.Income, 100, time.Now())); err != nil {
		t.Fatalf("add: %v", err)
	}
	snap := s.List()
	snap[0].Description = "mutated"
	if s.List()[0].Description != "a" {
		t.Fatalf("list exposed internal slice")
	}
}
