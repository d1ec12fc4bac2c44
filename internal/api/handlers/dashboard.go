package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Fanadillah/kasku-app/internal/domain"
	"github.com/Fanadillah/kasku-app/internal/extract"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

// DashboardHandler renders the server-side dashboard and accepts the
// manual entry form. Reads go through the restricted store; the form
// submits into the same extraction pipeline the chat gateway uses.
type DashboardHandler struct {
	store ListStore
	svc   *extract.Service
	log   zerolog.Logger
}

func NewDashboardHandler(store ListStore, svc *extract.Service, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{store: store, svc: svc, log: log}
}

type categoryStat struct {
	Name  string
	Total string
}

type transactionRow struct {
	Description string
	Category    string
	TxDate      string
	Amount      string
	IsIncome    bool
}

type dashboardData struct {
	IncomeTotal  string
	ExpenseTotal string
	Categories   []categoryStat
	Recent       []transactionRow
	Error        string
}

// Show handles GET /. Every render re-reads the full history; there is
// no caching layer.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.ListTransactions(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load dashboard")
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	sum := extract.Summarize(txs)
	data := dashboardData{
		IncomeTotal:  extract.FormatRupiah(sum.Income),
		ExpenseTotal: extract.FormatRupiah(sum.Expense),
		Categories:   categoryStats(txs),
		Error:        r.URL.Query().Get("error"),
	}

	recent := txs
	if len(recent) > 10 {
		recent = recent[:10]
	}
	for _, t := range recent {
		name := domain.FallbackCategory
		if t.CategoryName != nil {
			name = *t.CategoryName
		}
		data.Recent = append(data.Recent, transactionRow{
			Description: t.Description,
			Category:    name,
			TxDate:      t.TxDate.Format("2006-01-02"),
			Amount:      extract.FormatRupiah(t.Amount),
			IsIncome:    t.Type == domain.TxIncome,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		h.log.Error().Err(err).Msg("failed to render dashboard")
	}
}

// Submit handles POST /submit: the manual entry form. The text goes
// through the extraction pipeline under the "web" identity and the user
// is sent back to the dashboard either way.
func (h *DashboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?error="+url.QueryEscape("form tidak valid"), http.StatusSeeOther)
		return
	}
	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := h.svc.Extract(r.Context(), text, "web", domain.SourceWeb); err != nil {
		h.log.Error().Err(err).Msg("web submission failed")
		http.Redirect(w, r, "/?error="+url.QueryEscape("gagal memproses transaksi"), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// categoryStats sums all amounts per category name, uncategorized rows
// under the fallback, sorted by total descending.
func categoryStats(txs []domain.Transaction) []categoryStat {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		name := domain.FallbackCategory
		if t.CategoryName != nil {
			name = *t.CategoryName
		}
		totals[name] = totals[name].Add(t.Amount)
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if !totals[names[i]].Equal(totals[names[j]]) {
			return totals[names[i]].GreaterThan(totals[names[j]])
		}
		return names[i] < names[j]
	})

	out := make([]categoryStat, 0, len(names))
	for _, name := range names {
		out = append(out, categoryStat{Name: name, Total: extract.FormatRupiah(totals[name])})
	}
	return out
}
