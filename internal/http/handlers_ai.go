package http

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"wealthwise/internal/ai"
	"wealthwise/internal/log"
	"wealthwise/internal/services"
)

// handleGenerateStrategy asks the model for an investment strategy and
// renders it as a partial. Model failures never surface details to the
// client; they are logged and answered with a generic notification.
func (s *Server) handleGenerateStrategy(w http.ResponseWriter, r *http.Request) {
	if s.advisor == nil || !s.advisor.Enabled() {
		NewHTMXResponse().
			Status(http.StatusServiceUnavailable).
			BodyHTML(errorDiv("AI recommendations are not configured")).
			Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			BodyHTML(errorDiv("Invalid request format")).
			Write(w)
		return
	}

	risk := strings.ToLower(strings.TrimSpace(r.Form.Get("risk")))
	if risk == "" {
		risk = s.profile.Get().RiskProfile
	}
	in := ai.StrategyInput{
		FinancialGoals:   sanitizeInput(r.Form.Get("goals")),
		RiskTolerance:    risk,
		MarketConditions: sanitizeInput(r.Form.Get("conditions")),
	}

	out, err := s.advisor.GenerateStrategy(r.Context(), in)
	switch {
	case err == nil:
	case errors.Is(err, ai.ErrInvalidInput):
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid input: " + err.Error())).
			Write(w)
		return
	case errors.Is(err, services.ErrSuperseded):
		// A newer request owns the page now; say nothing.
		w.WriteHeader(http.StatusNoContent)
		return
	default:
		s.logger.ErrorContext(r.Context(), "Strategy generation failed",
			log.FieldOperation, log.OpGenerate,
			log.FieldError, err.Error())
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			TriggerErrorNotification("Could not generate recommendations right now. Please try again.").
			BodyHTML(errorDiv("Could not generate recommendations right now. Please try again.")).
			Write(w)
		return
	}

	NewHTMXResponse().
		Trigger("strategy:generated", struct{}{}).
		BodyHTML(renderStrategyHTML(out)).
		Write(w)
}

// handleSummarizeReport condenses the current report text through the
// model and returns the summary partial.
func (s *Server) handleSummarizeReport(w http.ResponseWriter, r *http.Request) {
	if s.advisor == nil || !s.advisor.Enabled() {
		NewHTMXResponse().
			Status(http.StatusServiceUnavailable).
			BodyHTML(errorDiv("AI summaries are not configured")).
			Write(w)
		return
	}

	in := ai.SummaryInput{
		Report:                s.report.BuildReportText(),
		UserInvestmentProfile: s.profile.Get().RiskProfile,
	}

	out, err := s.advisor.SummarizeReport(r.Context(), in)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrSuperseded):
		w.WriteHeader(http.StatusNoContent)
		return
	default:
		s.logger.ErrorContext(r.Context(), "Report summarization failed",
			log.FieldOperation, log.OpSummary,
			log.FieldError, err.Error())
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			TriggerErrorNotification("Could not summarize the report right now. Please try again.").
			BodyHTML(errorDiv("Could not summarize the report right now. Please try again.")).
			Write(w)
		return
	}

	NewHTMXResponse().
		Trigger("summary:generated", struct{}{}).
		BodyHTML(`<div class="summary-card"><h3>Summary</h3><p>` +
			template.HTMLEscapeString(out.Summary) + `</p></div>`).
		Write(w)
}

func renderStrategyHTML(out *ai.StrategyOutput) string {
	var b strings.Builder
	b.WriteString(`<div class="strategy-card">`)
	b.WriteString(`<h3>Recommended strategy</h3>`)
	b.WriteString(`<p>` + template.HTMLEscapeString(out.StrategyDescription) + `</p>`)
	b.WriteString(`<h4>Asset allocation</h4>`)
	b.WriteString(`<p class="strategy-card__allocation">` + template.HTMLEscapeString(out.AssetAllocation) + `</p>`)
	b.WriteString(`<h4>Specific investments</h4>`)
	b.WriteString(`<p class="strategy-card__investments">` + template.HTMLEscapeString(out.SpecificInvestments) + `</p>`)
	b.WriteString(`</div>`)
	return b.String()
}
