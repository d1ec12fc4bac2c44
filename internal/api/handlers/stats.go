package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Fanadillah/kasku-app/internal/api/middleware"
	"github.com/Fanadillah/kasku-app/internal/domain"
	"github.com/Fanadillah/kasku-app/internal/extract"
)

// ListStore is the read-side persistence surface for handlers.
type ListStore interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// StatsHandler serves the aggregate totals the bot's stats menu uses.
type StatsHandler struct {
	store ListStore
	log   zerolog.Logger
}

func NewStatsHandler(store ListStore, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{store: store, log: log}
}

type statsResponse struct {
	OK           bool        `json:"ok"`
	IncomeTotal  json.Number `json:"income_total"`
	ExpenseTotal json.Number `json:"expense_total"`
	Count        int         `json:"count"`
}

// Stats handles GET /api/stats.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.ListTransactions(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	sum := extract.Summarize(txs)
	middleware.WriteJSON(w, http.StatusOK, statsResponse{
		OK:           true,
		IncomeTotal:  json.Number(sum.Income.String()),
		ExpenseTotal: json.Number(sum.Expense.String()),
		Count:        len(txs),
	})
}
