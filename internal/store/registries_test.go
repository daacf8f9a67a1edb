package store

import (
	"testing"
	"time"

	"wealthwise/internal/core"
)

func TestBudgetStoreCRUD(t *testing.T) {
	s := NewBudgetStore()
	id, err := s.Add(core.Budget{Name: "Groceries", Amount: core.Money{Cents: 50000}, Icon: core.IconShoppingCart})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.Update(core.Budget{ID: id, Name: "Food", Amount: core.Money{Cents: 60000}, Icon: core.IconShoppingCart}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := s.List()
	if len(got) != 1 || got[0].Name != "Food" || got[0].Amount.Cents != 60000 {
		t.Fatalf("unexpected state after update: %+v", got)
	}

	if err := s.Update(core.Budget{ID: "missing", Name: "x", Amount: core.Money{Cents: 1}, Icon: core.IconCar}); err == nil {
		t.Fatalf("expected error updating missing budget")
	}

	s.Delete(id)
	s.Delete(id) // second delete is a no-op
	if len(s.List()) != 0 {
		t.Fatalf("budget not removed")
	}
}

func TestBudgetStoreAllowsDuplicateNames(t *testing.T) {
	s := NewBudgetStore()
	b := core.Budget{Name: "Groceries", Amount: core.Money{Cents: 100}, Icon: core.IconShoppingCart}
	if _, err := s.Add(b); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(b); err != nil {
		t.Fatalf("duplicate name rejected: %v", err)
	}
	if len(s.List()) != 2 {
		t.Fatalf("expected 2 budgets")
	}
}

func TestGoalStoreCRUD(t *testing.T) {
	s := NewGoalStore()
	deadline := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	id, err := s.Add(core.Goal{Name: "Car", TargetAmount: core.Money{Cents: 4000000}, Deadline: deadline})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated := core.Goal{
		ID:            id,
		Name:          "Car",
		TargetAmount:  core.Money{Cents: 4000000},
		CurrentAmount: core.Money{Cents: 500000},
		Deadline:      deadline,
	}
	if err := s.Update(updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := s.List()[0].CurrentAmount.Cents; got != 500000 {
		t.Fatalf("current = %d, want 500000", got)
	}

	s.Delete(id)
	if len(s.List()) != 0 {
		t.Fatalf("goal not removed")
	}
}

func TestProfileStore(t *testing.T) {
	s := NewProfileStore()
	if got := s.Get(); got.RiskProfile != "moderate" {
		t.Fatalf("default risk profile = %q", got.RiskProfile)
	}

	if err := s.Set(Profile{Name: "Ada", Email: "ada@example.com", RiskProfile: "aggressive"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Get(); got.Name != "Ada" || got.RiskProfile != "aggressive" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if err := s.Set(Profile{Name: "Ada", RiskProfile: "reckless"}); err == nil {
		t.Fatalf("expected error for invalid risk profile")
	}
}

func TestSeedPopulatesFixtures(t *testing.T) {
	txs := NewTransactionStore()
	budgets := NewBudgetStore()
	goals := NewGoalStore()
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	Seed(txs, budgets, goals, now)

	if txs.Len() != 3 {
		t.Fatalf("transactions = %d, want 3", txs.Len())
	}
	if got := core.TotalValue(txs.List()); got.Cents != 320000 {
		t.Fatalf("seed total value = %d, want 320000", got.Cents)
	}
	if len(budgets.List()) != 4 {
		t.Fatalf("budgets = %d, want 4", len(budgets.List()))
	}
	if len(goals.List()) != 4 {
		t.Fatalf("goals = %d, want 4", len(goals.List()))
	}
}
