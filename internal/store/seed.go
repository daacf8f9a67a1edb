package store

import (
	"time"

	"wealthwise/internal/core"
)

// Seed populates the stores with the starter fixtures shown on first visit:
// a salary two months back, two expenses, four budgets and four goals.
// Errors are impossible by construction, so they are discarded.
func Seed(txs *TransactionStore, budgets *BudgetStore, goals *GoalStore, now time.Time) {
	seedTxs := []core.Transaction{
		{
			Description: "Monthly Salary",
			Amount:      core.Money{Cents: 500000},
			Type:        core.Income,
			Date:        now.AddDate(0, -2, 0),
		},
		{
			Description: "Groceries",
			Amount:      core.Money{Cents: 30000},
			Type:        core.Expense,
			Category:    "groceries",
			Date:        now.AddDate(0, -1, 0),
		},
		{
			Description: "Rent",
			Amount:      core.Money{Cents: 150000},
			Type:        core.Expense,
			Category:    "utilities",
			Date:        now,
		},
	}
	for _, t := range seedTxs {
		_, _ = txs.Add(t)
	}

	seedBudgets := []core.Budget{
		{Name: "Groceries", Amount: core.Money{Cents: 50000}, Icon: core.IconShoppingCart},
		{Name: "Entertainment", Amount: core.Money{Cents: 20000}, Icon: core.IconTicket},
		{Name: "Transport", Amount: core.Money{Cents: 15000}, Icon: core.IconCar},
		{Name: "Utilities", Amount: core.Money{Cents: 25000}, Icon: core.IconHome},
	}
	for _, b := range seedBudgets {
		_, _ = budgets.Add(b)
	}

	seedGoals := []core.Goal{
		{
			Name:          "Retirement Fund",
			TargetAmount:  core.Money{Cents: 100000000},
			CurrentAmount: core.Money{Cents: 25000000},
			Deadline:      time.Date(2050, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:          "Dream Vacation to Japan",
			TargetAmount:  core.Money{Cents: 1000000},
			CurrentAmount: core.Money{Cents: 850000},
			Deadline:      time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:          "New Car",
			TargetAmount:  core.Money{Cents: 4000000},
			CurrentAmount: core.Money{Cents: 1500000},
			Deadline:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:          "Home Down Payment",
			TargetAmount:  core.Money{Cents: 10000000},
			CurrentAmount: core.Money{Cents: 7500000},
			Deadline:      time.Date(2027, time.August, 20, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, g := range seedGoals {
		_, _ = goals.Add(g)
	}
}
