package http

import (
	"encoding/json"
	"net/http"

	"wealthwise/internal/core"
	"wealthwise/internal/log"
)

type performancePoint struct {
	Year         int     `json:"year"`
	Month        string  `json:"month"`
	BalanceCents int64   `json:"balanceCents"`
	Value        float64 `json:"value"`
}

// handlePerformanceData returns the 12-month running-balance series as
// JSON, with values converted to the active display currency.
func (s *Server) handlePerformanceData(w http.ResponseWriter, r *http.Request) {
	series := core.MonthlySeries(s.transactions.List(), s.now())

	points := make([]performancePoint, 0, len(series))
	for _, p := range series {
		points = append(points, performancePoint{
			Year:         p.Year,
			Month:        p.Month.String()[:3],
			BalanceCents: p.Balance.Cents,
			Value:        s.currency.ConvertFromBase(p.Balance),
		})
	}

	s.writeJSON(w, r, map[string]any{
		"currency": string(s.currency.Active()),
		"points":   points,
	})
}

type allocationPoint struct {
	Category    string  `json:"category"`
	AmountCents int64   `json:"amountCents"`
	Value       float64 `json:"value"`
}

// handleAllocationData returns spending per category for the allocation
// chart, largest first.
func (s *Server) handleAllocationData(w http.ResponseWriter, r *http.Request) {
	slices := s.report.Allocation()

	points := make([]allocationPoint, 0, len(slices))
	for _, slice := range slices {
		points = append(points, allocationPoint{
			Category:    slice.Category,
			AmountCents: slice.Amount.Cents,
			Value:       s.currency.ConvertFromBase(slice.Amount),
		})
	}

	s.writeJSON(w, r, map[string]any{
		"currency": string(s.currency.Active()),
		"points":   points,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "JSON encoding failed",
			"url", r.URL.Path, log.FieldError, err.Error())
	}
}
