package http

import (
	"net/http"
	"strings"

	"wealthwise/internal/core"
	"wealthwise/internal/log"
)

// handleCreateTransaction records a new transaction from the form on the
// transactions page.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", log.FieldError, err.Error())
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			BodyHTML(errorDiv("Invalid request format")).
			Write(w)
		return
	}

	desc := sanitizeInput(r.Form.Get("description"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	txType := core.TransactionType(strings.ToLower(strings.TrimSpace(r.Form.Get("type"))))
	category := sanitizeInput(r.Form.Get("category"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid amount")).
			Write(w)
		return
	}

	date := s.now()
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			NewHTMXResponse().
				Status(http.StatusUnprocessableEntity).
				BodyHTML(errorDiv("Invalid date")).
				Write(w)
			return
		}
		date = parsed
	}

	tx := core.Transaction{
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Type:        txType,
		Date:        date,
		Category:    category,
	}
	id, err := s.transactions.Add(tx)
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			BodyHTML(errorDiv("Invalid transaction: " + err.Error())).
			Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Transaction created",
		log.FieldOperation, log.OpCreate,
		log.FieldTransactionID, id,
		log.FieldDescription, tx.Description,
		log.FieldAmountCents, tx.Amount.Cents,
		log.FieldTxType, string(tx.Type),
		log.FieldCategory, tx.Category)

	NewHTMXResponse().
		TriggerTransactionCreated(id).
		TriggerSuccessNotification("Transaction recorded: " + tx.Description).
		BodyHTML(successDiv("Transaction recorded: " + tx.Description + " (" + s.currency.Format(tx.Amount) + ")")).
		Write(w)
}

// handleDeleteTransaction removes a transaction. Unknown IDs are treated
// as already deleted.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
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
			BodyHTML(errorDiv("Missing transaction id")).
			Write(w)
		return
	}

	s.transactions.Delete(id)
	s.logger.InfoContext(r.Context(), "Transaction deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldTransactionID, id)

	NewHTMXResponse().
		TriggerTransactionDeleted(id).
		BodyHTML(successDiv("Transaction deleted")).
		Write(w)
}
