package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Fanadillah/kasku-app/internal/api/middleware"
)

// TransactionsHandler serves the raw transaction list as JSON.
type TransactionsHandler struct {
	store ListStore
	log   zerolog.Logger
}

func NewTransactionsHandler(store ListStore, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{store: store, log: log}
}

type transactionView struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	Category    *string     `json:"category"`
	Source      string      `json:"source"`
	TxDate      string      `json:"tx_date"`
	Type        string      `json:"type"`
}

// List handles GET /api/transactions, newest first.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.ListTransactions(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	views := make([]transactionView, 0, len(txs))
	for _, t := range txs {
		views = append(views, transactionView{
			ID:          t.ID,
			Description: t.Description,
			Amount:      json.Number(t.Amount.String()),
			Currency:    t.Currency,
			Category:    t.CategoryName,
			Source:      t.Source,
			TxDate:      t.TxDate.Format("2006-01-02"),
			Type:        string(t.Type),
		})
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ok":           true,
		"transactions": views,
		"count":        len(views),
	})
}
