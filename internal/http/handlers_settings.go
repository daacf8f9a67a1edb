package http

import (
	"net/http"
	"strings"

	"wealthwise/internal/currency"
	"wealthwise/internal/log"
	"wealthwise/internal/store"
)

// handleSetCurrency switches the active display currency.
func (s *Server) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			BodyHTML(errorDiv("Invalid request format")).
			Write(w)
		return
	}

	code, err := currency.ParseCode(r.Form.Get("currency"))
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Unknown currency")).
			Write(w)
		return
	}
	if err := s.currency.Set(code); err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Unknown currency")).
			Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Display currency changed",
		log.FieldOperation, log.OpUpdate,
		log.FieldCurrency, string(code))

	NewHTMXResponse().
		TriggerCurrencyChanged(string(code)).
		Header("HX-Refresh", "true").
		Write(w)
}

// handleUpdateProfile saves the investor profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			BodyHTML(errorDiv("Invalid request format")).
			Write(w)
		return
	}

	p := store.Profile{
		Name:        sanitizeInput(r.Form.Get("name")),
		Email:       strings.TrimSpace(r.Form.Get("email")),
		RiskProfile: strings.ToLower(strings.TrimSpace(r.Form.Get("risk"))),
	}
	if err := s.profile.Set(p); err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid profile: " + err.Error())).
			Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Profile updated",
		log.FieldOperation, log.OpUpdate,
		"risk_profile", p.RiskProfile)

	NewHTMXResponse().
		Trigger("profile:updated", struct{}{}).
		BodyHTML(successDiv("Profile saved")).
		Write(w)
}
