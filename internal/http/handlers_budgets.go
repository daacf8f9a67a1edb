package http

import (
	"net/http"
	"strings"

	"wealthwise/internal/core"
	"wealthwise/internal/log"
)

// handleSaveBudget creates a budget, or replaces it when an id is posted.
func (s *Server) handleSaveBudget(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			BodyHTML(errorDiv("Invalid request format")).
			Write(w)
		return
	}

	cents, err := core.ParseDecimalToCents(strings.TrimSpace(r.Form.Get("amount")))
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid amount")).
			Write(w)
		return
	}

	b := core.Budget{
		ID:     strings.TrimSpace(r.Form.Get("id")),
		Name:   sanitizeInput(r.Form.Get("name")),
		Amount: core.Money{Cents: cents},
		Icon:   core.BudgetIcon(strings.TrimSpace(r.Form.Get("icon"))),
	}

	var id string
	if b.ID == "" {
		id, err = s.budgets.Add(b)
	} else {
		id = b.ID
		err = s.budgets.Update(b)
	}
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid budget: " + err.Error())).
			Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Budget saved",
		log.FieldOperation, log.OpCreate,
		"budget_id", id,
		"budget_name", b.Name,
		log.FieldAmountCents, b.Amount.Cents)

	NewHTMXResponse().
		TriggerBudgetSaved(id).
		BodyHTML(successDiv("Budget saved: " + b.Name)).
		Write(w)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			BodyHTML(errorDiv("Invalid request format")).
			Write(w)
		return
	}

	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Missing budget id")).
			Write(w)
		return
	}

	s.budgets.Delete(id)
	s.logger.InfoContext(r.Context(), "Budget deleted",
		log.FieldOperation, log.OpDelete,
		"budget_id", id)

	NewHTMXResponse().
		Trigger("budget:deleted", map[string]string{"id": id}).
		BodyHTML(successDiv("Budget deleted")).
		Write(w)
}
