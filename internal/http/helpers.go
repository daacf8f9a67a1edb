package http

import (
	"html/template"
	"net/http"
	"strings"
	"time"
)

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseDate parses a date string in YYYY-MM-DD format.
func parseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

func errorDiv(msg string) string {
	return `<div class="notification notification--error">` + template.HTMLEscapeString(msg) + `</div>`
}

func successDiv(msg string) string {
	return `<div class="notification notification--success">` + template.HTMLEscapeString(msg) + `</div>`
}

// renderPage executes a named page template, logging render failures.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution failed",
			"template", name, "error", err.Error())
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}
