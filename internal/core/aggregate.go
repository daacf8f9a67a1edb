package core

import (
	"sort"
	"time"
)

// MonthPoint is one point of the 12-month performance series.
type MonthPoint struct {
	Year    int
	Month   time.Month
	Balance Money
}

// MonthsInSeries is the fixed length of the performance series.
const MonthsInSeries = 12

// signed returns the transaction's effect on a running balance.
func signed(t Transaction) int64 {
	if t.Type == Income {
		return t.Amount.Cents
	}
	return -t.Amount.Cents
}

// MonthlySeries computes the running-balance series for the 12 calendar
// months ending in the month of now, oldest first.
//
// The first point starts from the net balance of every transaction dated
// strictly before the window, so history older than a year is not lost, it
// is folded into the opening balance. An empty transaction list yields 12
// zero points.
func MonthlySeries(txs []Transaction, now time.Time) []MonthPoint {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	windowStart := time.Date(now.Year(), now.Month()-(MonthsInSeries-1), 1, 0, 0, 0, 0, now.Location())

	var balance int64
	i := 0
	for ; i < len(sorted); i++ {
		if !sorted[i].Date.Before(windowStart) {
			break
		}
		balance += signed(sorted[i])
	}

	series := make([]MonthPoint, 0, MonthsInSeries)
	for m := 0; m < MonthsInSeries; m++ {
		monthStart := time.Date(windowStart.Year(), windowStart.Month()+time.Month(m), 1, 0, 0, 0, 0, now.Location())
		nextStart := time.Date(monthStart.Year(), monthStart.Month()+1, 1, 0, 0, 0, 0, now.Location())
		for ; i < len(sorted); i++ {
			if !sorted[i].Date.Before(nextStart) {
				break
			}
			balance += signed(sorted[i])
		}
		series = append(series, MonthPoint{
			Year:    monthStart.Year(),
			Month:   monthStart.Month(),
			Balance: Money{Cents: balance},
		})
	}
	return series
}

// TotalValue is the net balance of the full history: income counts positive,
// expense negative. An empty list yields zero.
func TotalValue(txs []Transaction) Money {
	var total int64
	for _, t := range txs {
		total += signed(t)
	}
	return Money{Cents: total}
}

// TotalIncome sums all income transactions regardless of date.
func TotalIncome(txs []Transaction) Money {
	var total int64
	for _, t := range txs {
		if t.Type == Income {
			total += t.Amount.Cents
		}
	}
	return Money{Cents: total}
}

// YTDGain sums income transactions dated in the calendar year of now.
// Expenses are excluded from this figure.
func YTDGain(txs []Transaction, now time.Time) Money {
	var total int64
	for _, t := range txs {
		if t.Type == Income && t.Date.Year() == now.Year() {
			total += t.Amount.Cents
		}
	}
	return Money{Cents: total}
}

// BudgetSpent sums expense transactions whose category matches the budget
// name case-insensitively.
func BudgetSpent(txs []Transaction, b Budget) Money {
	var total int64
	for _, t := range txs {
		if t.Type == Expense && b.CategoryMatches(t.Category) {
			total += t.Amount.Cents
		}
	}
	return Money{Cents: total}
}

// BudgetConsumption returns spent and remaining for a budget. Remaining goes
// negative on overspend; callers render that as overage.
func BudgetConsumption(txs []Transaction, b Budget) (spent, remaining Money) {
	spent = BudgetSpent(txs, b)
	return spent, b.Amount.Sub(spent)
}

// DistributeToGoals returns a copy of goals with CurrentAmount set to the
// all-time income split evenly across them. There is no per-goal ledger,
// every goal receives the same share.
func DistributeToGoals(txs []Transaction, goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	if len(out) == 0 {
		return out
	}
	share := TotalIncome(txs).Cents / int64(len(out))
	for i := range out {
		out[i].CurrentAmount = Money{Cents: share}
	}
	return out
}
