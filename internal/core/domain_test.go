package core

import (
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -5}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	good := Transaction{
		Description: "salary",
		Amount:      Money{Cents: 500000},
		Type:        Income,
		Date:        date,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Description: "", Amount: Money{Cents: 1}, Type: Income, Date: date},
		{Description: "a", Amount: Money{Cents: 0}, Type: Income, Date: date},
		{Description: "a", Amount: Money{Cents: 1}, Type: "transfer", Date: date},
		{Description: "a", Amount: Money{Cents: 1}, Type: Expense},
	}
	for i, tr := range bads {
		if err := tr.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetValidate(t *testing.T) {
	good := Budget{Name: "Groceries", Amount: Money{Cents: 50000}, Icon: IconShoppingCart}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Budget{
		{Name: "", Amount: Money{Cents: 1}, Icon: IconTicket},
		{Name: "a", Amount: Money{Cents: 0}, Icon: IconTicket},
		{Name: "a", Amount: Money{Cents: 1}, Icon: "Rocket"},
	}
	for i, b := range bads {
		if err := b.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestGoalValidate(t *testing.T) {
	deadline := time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC)
	good := Goal{Name: "Retirement", TargetAmount: Money{Cents: 100000000}, Deadline: deadline}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Goal{
		{Name: "", TargetAmount: Money{Cents: 1}, Deadline: deadline},
		{Name: "a", TargetAmount: Money{Cents: 0}, Deadline: deadline},
		{Name: "a", TargetAmount: Money{Cents: 1}, CurrentAmount: Money{Cents: -1}, Deadline: deadline},
		{Name: "a", TargetAmount: Money{Cents: 1}},
	}
	for i, g := range bads {
		if err := g.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetCategoryMatches(t *testing.T) {
	b := Budget{Name: "Groceries"}
	cases := []struct {
		in   string
		want bool
	}{
		{"groceries", true},
		{"GROCERIES", true},
		{" groceries ", true},
		{"grocery", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := b.CategoryMatches(tc.in); got != tc.want {
			t.Fatalf("CategoryMatches(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
