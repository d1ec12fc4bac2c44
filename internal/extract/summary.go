package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Fanadillah/kasku-app/internal/domain"
)

// Summary carries the subtotals of one inserted batch.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Summarize sums the batch by transaction type. Rows with a type other
// than income or expense contribute to neither subtotal.
func Summarize(rows []domain.Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, r := range rows {
		switch r.Type {
		case domain.TxIncome:
			s.Income = s.Income.Add(r.Amount)
		case domain.TxExpense:
			s.Expense = s.Expense.Add(r.Amount)
		}
	}
	return s
}

// Message renders the confirmation reply. Three shapes: income-only,
// expense-only, or both with the expense line first. The strings are
// golden-tested; do not reword them.
func (s Summary) Message() string {
	switch {
	case !s.Expense.IsPositive():
		return "Transaksi dicatat:\n -Pemasukan " + FormatRupiah(s.Income)
	case !s.Income.IsPositive():
		return "Transaksi dicatat:\n -Pengeluaran " + FormatRupiah(s.Expense)
	default:
		return "Transaksi dicatat: \n -Pengeluaran " + FormatRupiah(s.Expense) +
			"\n -Pemasukan " + FormatRupiah(s.Income)
	}
}

// FormatRupiah renders an amount the id-ID way: "Rp " prefix, "." as the
// thousands separator, "," before any fractional part.
func FormatRupiah(d decimal.Decimal) string {
	s := d.Abs().String()
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteString("-")
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteString(".")
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteString(".")
		}
	}
	if fracPart != "" {
		b.WriteString(",")
		b.WriteString(fracPart)
	}
	return "Rp " + b.String()
}
