package http

import (
	"net/http"

	"wealthwise/internal/core"
	"wealthwise/internal/currency"
)

type transactionView struct {
	ID          string
	Description string
	Amount      string
	Date        string
	Category    string
	Income      bool
}

type budgetView struct {
	ID        string
	Name      string
	Icon      string
	Amount    string
	Spent     string
	Remaining string
	Overspent bool
	Width     int
}

type goalView struct {
	ID       string
	Name     string
	Target   string
	Current  string
	Deadline string
	Percent  float64
	Width    int
}

func (s *Server) transactionViews(txs []core.Transaction, limit int) []transactionView {
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	views := make([]transactionView, 0, len(txs))
	for _, t := range txs {
		views = append(views, transactionView{
			ID:          t.ID,
			Description: t.Description,
			Amount:      s.currency.Format(t.Amount),
			Date:        t.Date.Format("2006-01-02"),
			Category:    t.Category,
			Income:      t.Type == core.Income,
		})
	}
	return views
}

func (s *Server) budgetViews(txs []core.Transaction) []budgetView {
	budgets := s.budgets.List()
	views := make([]budgetView, 0, len(budgets))
	for _, b := range budgets {
		spent, remaining := core.BudgetConsumption(txs, b)
		width := 0
		if b.Amount.Cents > 0 {
			width = int((spent.Cents*100 + b.Amount.Cents/2) / b.Amount.Cents)
			if width > 100 {
				width = 100
			}
		}
		view := budgetView{
			ID:        b.ID,
			Name:      b.Name,
			Icon:      string(b.Icon),
			Amount:    s.currency.Format(b.Amount),
			Spent:     s.currency.Format(spent),
			Overspent: remaining.Cents < 0,
			Width:     width,
		}
		if remaining.Cents < 0 {
			view.Remaining = s.currency.Format(core.Money{Cents: -remaining.Cents})
		} else {
			view.Remaining = s.currency.Format(remaining)
		}
		views = append(views, view)
	}
	return views
}

func (s *Server) goalViews() []goalView {
	goals := s.goals.List()
	views := make([]goalView, 0, len(goals))
	for _, g := range goals {
		percent := g.Progress()
		width := int(percent)
		if width > 100 {
			width = 100
		}
		views = append(views, goalView{
			ID:       g.ID,
			Name:     g.Name,
			Target:   s.currency.Format(g.TargetAmount),
			Current:  s.currency.Format(g.CurrentAmount),
			Deadline: g.Deadline.Format("2006-01-02"),
			Percent:  percent,
			Width:    width,
		})
	}
	return views
}

type currencyOption struct {
	Code   string
	Active bool
}

func (s *Server) currencyOptions() []currencyOption {
	active := s.currency.Active()
	opts := make([]currencyOption, 0, len(currency.Codes()))
	for _, c := range currency.Codes() {
		opts = append(opts, currencyOption{Code: string(c), Active: c == active})
	}
	return opts
}

// handleDashboard renders the main dashboard page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	now := s.now()
	txs := s.transactions.List()

	data := struct {
		TotalValue   string
		YTDGain      string
		Transactions []transactionView
		Budgets      []budgetView
		Goals        []goalView
		Currencies   []currencyOption
	}{
		TotalValue:   s.currency.Format(core.TotalValue(txs)),
		YTDGain:      s.currency.Format(core.YTDGain(txs, now)),
		Transactions: s.transactionViews(txs, 5),
		Budgets:      s.budgetViews(txs),
		Goals:        s.goalViews(),
		Currencies:   s.currencyOptions(),
	}
	s.renderPage(w, r, "dashboard_page", data)
}

func (s *Server) handleTransactionsPage(w http.ResponseWriter, r *http.Request) {
	txs := s.transactions.List()
	data := struct {
		Transactions []transactionView
		Currencies   []currencyOption
	}{
		Transactions: s.transactionViews(txs, 0),
		Currencies:   s.currencyOptions(),
	}
	s.renderPage(w, r, "transactions_page", data)
}

func (s *Server) handleBudgetsPage(w http.ResponseWriter, r *http.Request) {
	txs := s.transactions.List()
	data := struct {
		Budgets    []budgetView
		Icons      []string
		Currencies []currencyOption
	}{
		Budgets:    s.budgetViews(txs),
		Currencies: s.currencyOptions(),
	}
	for _, icon := range core.BudgetIcons() {
		data.Icons = append(data.Icons, string(icon))
	}
	s.renderPage(w, r, "budgets_page", data)
}

func (s *Server) handleGoalsPage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Goals      []goalView
		Currencies []currencyOption
	}{
		Goals:      s.goalViews(),
		Currencies: s.currencyOptions(),
	}
	s.renderPage(w, r, "goals_page", data)
}

func (s *Server) handleRecommendationsPage(w http.ResponseWriter, r *http.Request) {
	profile := s.profile.Get()
	data := struct {
		RiskProfile string
		AIEnabled   bool
		Currencies  []currencyOption
	}{
		RiskProfile: profile.RiskProfile,
		AIEnabled:   s.advisor != nil && s.advisor.Enabled(),
		Currencies:  s.currencyOptions(),
	}
	s.renderPage(w, r, "recommendations_page", data)
}

func (s *Server) handleReportPage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		ReportText string
		AIEnabled  bool
		Currencies []currencyOption
	}{
		ReportText: s.report.BuildReportText(),
		AIEnabled:  s.advisor != nil && s.advisor.Enabled(),
		Currencies: s.currencyOptions(),
	}
	s.renderPage(w, r, "report_page", data)
}

func (s *Server) handleProfilePage(w http.ResponseWriter, r *http.Request) {
	profile := s.profile.Get()
	data := struct {
		Name        string
		Email       string
		RiskProfile string
		Currencies  []currencyOption
	}{
		Name:        profile.Name,
		Email:       profile.Email,
		RiskProfile: profile.RiskProfile,
		Currencies:  s.currencyOptions(),
	}
	s.renderPage(w, r, "profile_page", data)
}

func (s *Server) handleEducationPage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Currencies []currencyOption
	}{
		Currencies: s.currencyOptions(),
	}
	s.renderPage(w, r, "education_page", data)
}
