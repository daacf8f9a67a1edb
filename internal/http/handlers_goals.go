package http

import (
	"net/http"
	"strings"

	"wealthwise/internal/core"
	"wealthwise/internal/log"
)

// handleSaveGoal creates a goal, or replaces it when an id is posted.
func (s *Server) handleSaveGoal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			BodyHTML(errorDiv("Invalid request format")).
			Write(w)
		return
	}

	target, err := core.ParseDecimalToCents(strings.TrimSpace(r.Form.Get("target")))
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid target amount")).
			Write(w)
		return
	}

	var current int64
	if v := strings.TrimSpace(r.Form.Get("current")); v != "" {
		current, err = core.ParseDecimalToCents(v)
		if err != nil {
			NewHTMXResponse().
				Status(http.StatusUnprocessableEntity).
				BodyHTML(errorDiv("Invalid current amount")).
				Write(w)
			return
		}
	}

	deadline, err := parseDate(strings.TrimSpace(r.Form.Get("deadline")))
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid deadline")).
			Write(w)
		return
	}

	g := core.Goal{
		ID:            strings.TrimSpace(r.Form.Get("id")),
		Name:          sanitizeInput(r.Form.Get("name")),
		TargetAmount:  core.Money{Cents: target},
		CurrentAmount: core.Money{Cents: current},
		Deadline:      deadline,
	}

	var id string
	if g.ID == "" {
		id, err = s.goals.Add(g)
	} else {
		id = g.ID
		err = s.goals.Update(g)
	}
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid goal: " + err.Error())).
			Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Goal saved",
		log.FieldOperation, log.OpCreate,
		"goal_id", id,
		"goal_name", g.Name,
		log.FieldAmountCents, g.TargetAmount.Cents)

	NewHTMXResponse().
		TriggerGoalSaved(id).
		BodyHTML(successDiv("Goal saved: " + g.Name)).
		Write(w)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
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
			BodyHTML(errorDiv("Missing goal id")).
			Write(w)
		return
	}

	s.goals.Delete(id)
	s.logger.InfoContext(r.Context(), "Goal deleted",
		log.FieldOperation, log.OpDelete,
		"goal_id", id)

	NewHTMXResponse().
		Trigger("goal:deleted", map[string]string{"id": id}).
		BodyHTML(successDiv("Goal deleted")).
		Write(w)
}

// handleDistributeGoals recomputes goal funding from all-time income,
// split evenly across every goal.
func (s *Server) handleDistributeGoals(w http.ResponseWriter, r *http.Request) {
	distributed := core.DistributeToGoals(s.transactions.List(), s.goals.List())
	for _, g := range distributed {
		if err := s.goals.Update(g); err != nil {
			s.logger.WarnContext(r.Context(), "Goal vanished during distribution",
				"goal_id", g.ID, log.FieldError, err.Error())
		}
	}

	s.logger.InfoContext(r.Context(), "Savings distributed to goals",
		log.FieldOperation, log.OpUpdate,
		"goal_count", len(distributed))

	NewHTMXResponse().
		Trigger("goals:distributed", map[string]int{"count": len(distributed)}).
		BodyHTML(successDiv("Savings distributed across goals")).
		Write(w)
}
