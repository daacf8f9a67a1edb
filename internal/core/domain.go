package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	IconShoppingCart BudgetIcon = "ShoppingCart"
	IconTicket       BudgetIcon = "Ticket"
	IconCar          BudgetIcon = "Car"
	IconHome         BudgetIcon = "Home"
)

type (
	TransactionType string

	BudgetIcon string

	Money struct {
		Cents int64
	}

	// Transaction is a single income or expense entry. Amount is always
	// positive; the sign of its effect on balances comes from Type.
	Transaction struct {
		ID          string
		Description string
		Amount      Money
		Type        TransactionType
		Date        time.Time
		Category    string // optional, matched case-insensitively against budget names
	}

	// Budget is a monthly spending envelope. Name is the soft key into
	// Transaction.Category; there is no referential integrity between them.
	Budget struct {
		ID     string
		Name   string
		Amount Money
		Icon   BudgetIcon
	}

	// Goal is a savings target. CurrentAmount may be user-set or derived by
	// the naive even-split distribution in DistributeToGoals.
	Goal struct {
		ID            string
		Name          string
		TargetAmount  Money
		CurrentAmount Money
		Deadline      time.Time
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidIcon      = errors.New("invalid budget icon")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyName        = errors.New("empty name")
)

// BudgetIcons lists the supported icons in display order.
func BudgetIcons() []BudgetIcon {
	return []BudgetIcon{IconShoppingCart, IconTicket, IconCar, IconHome}
}

func (tt TransactionType) Validate() error {
	switch tt {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

func (ic BudgetIcon) Validate() error {
	switch ic {
	case IconShoppingCart, IconTicket, IconCar, IconHome:
		return nil
	}
	return ErrInvalidIcon
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if len(b.Name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	return b.Icon.Validate()
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if len(g.Name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}
	if err := g.TargetAmount.Validate(); err != nil {
		return err
	}
	// CurrentAmount may legitimately be zero for a new goal.
	if g.CurrentAmount.Cents < 0 {
		return ErrInvalidAmount
	}
	if g.Deadline.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Progress returns the goal completion percentage. It is not clamped: a goal
// funded past its target reports more than 100.
func (g Goal) Progress() float64 {
	if g.TargetAmount.Cents <= 0 {
		return 0
	}
	return float64(g.CurrentAmount.Cents) / float64(g.TargetAmount.Cents) * 100
}

// CategoryMatches reports whether a transaction category refers to this
// budget. The link is a case-insensitive string comparison, nothing more.
func (b Budget) CategoryMatches(category string) bool {
	return strings.EqualFold(strings.TrimSpace(category), strings.TrimSpace(b.Name))
}
