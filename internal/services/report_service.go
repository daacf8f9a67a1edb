package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"wealthwise/internal/core"
	"wealthwise/internal/currency"
	"wealthwise/internal/store"
)

// ReportService assembles the plain-text market report for the report
// page. The text doubles as the summarization input, so it stays stable
// for identical portfolio state.
type ReportService struct {
	transactions *store.TransactionStore
	budgets      *store.BudgetStore
	goals        *store.GoalStore
	profile      *store.ProfileStore
	currency     *currency.Service
	now          func() time.Time
}

func NewReportService(
	transactions *store.TransactionStore,
	budgets *store.BudgetStore,
	goals *store.GoalStore,
	profile *store.ProfileStore,
	cur *currency.Service,
	now func() time.Time,
) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{
		transactions: transactions,
		budgets:      budgets,
		goals:        goals,
		profile:      profile,
		currency:     cur,
		now:          now,
	}
}

// AllocationSlice is one category's share of all-time expenses.
type AllocationSlice struct {
	Category string     `json:"category"`
	Amount   core.Money `json:"amountCents"`
}

// Allocation groups expense transactions by category, largest first.
// Categories compare case-insensitively; the first spelling seen wins.
func (s *ReportService) Allocation() []AllocationSlice {
	totals := make(map[string]int64)
	labels := make(map[string]string)
	for _, t := range s.transactions.List() {
		if t.Type != core.Expense {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(t.Category))
		if _, seen := labels[key]; !seen {
			labels[key] = strings.TrimSpace(t.Category)
		}
		totals[key] += t.Amount.Cents
	}

	slices := make([]AllocationSlice, 0, len(totals))
	for key, cents := range totals {
		slices = append(slices, AllocationSlice{
			Category: labels[key],
			Amount:   core.Money{Cents: cents},
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount.Cents != slices[j].Amount.Cents {
			return slices[i].Amount.Cents > slices[j].Amount.Cents
		}
		return slices[i].Category < slices[j].Category
	})
	return slices
}

// BuildReportText renders the portfolio as a readable report: totals,
// the 12-month balance trail, budget consumption and goal progress.
func (s *ReportService) BuildReportText() string {
	now := s.now()
	txs := s.transactions.List()
	profile := s.profile.Get()

	var b strings.Builder

	fmt.Fprintf(&b, "Portfolio report for %s (%s risk profile), %s.\n\n",
		profile.Name, profile.RiskProfile, now.Format("January 2, 2006"))

	total := core.TotalValue(txs)
	ytd := core.YTDGain(txs, now)
	fmt.Fprintf(&b, "Total portfolio value: %s. Year-to-date gain: %s across %d transactions.\n\n",
		s.currency.Format(total), s.currency.Format(ytd), len(txs))

	b.WriteString("Monthly balance, oldest first:\n")
	for _, p := range core.MonthlySeries(txs, now) {
		fmt.Fprintf(&b, "- %s %d: %s\n", p.Month.String(), p.Year, s.currency.Format(p.Balance))
	}
	b.WriteString("\n")

	budgets := s.budgets.List()
	if len(budgets) > 0 {
		b.WriteString("Budgets:\n")
		for _, budget := range budgets {
			spent, remaining := core.BudgetConsumption(txs, budget)
			if remaining.Cents < 0 {
				fmt.Fprintf(&b, "- %s: %s spent of %s, over by %s\n",
					budget.Name, s.currency.Format(spent), s.currency.Format(budget.Amount),
					s.currency.Format(core.Money{Cents: -remaining.Cents}))
			} else {
				fmt.Fprintf(&b, "- %s: %s spent of %s, %s remaining\n",
					budget.Name, s.currency.Format(spent), s.currency.Format(budget.Amount),
					s.currency.Format(remaining))
			}
		}
		b.WriteString("\n")
	}

	goals := s.goals.List()
	if len(goals) > 0 {
		b.WriteString("Savings goals:\n")
		for _, goal := range goals {
			fmt.Fprintf(&b, "- %s: %s of %s (%.0f%%), target date %s\n",
				goal.Name, s.currency.Format(goal.CurrentAmount), s.currency.Format(goal.TargetAmount),
				goal.Progress(), goal.Deadline.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}

	if slices := s.Allocation(); len(slices) > 0 {
		b.WriteString("Spending by category:\n")
		for _, slice := range slices {
			fmt.Fprintf(&b, "- %s: %s\n", slice.Category, s.currency.Format(slice.Amount))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
