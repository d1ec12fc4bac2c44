package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType distinguishes money coming in from money going out.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// Origin channel a transaction was recorded from.
const (
	SourceTelegram = "telegram"
	SourceWeb      = "web"
)

// Transaction is one recorded entry, produced by the extraction pipeline
// after validation and never updated afterwards.
type Transaction struct {
	ID     string // uuid
	UserID int64

	Description string
	Amount      decimal.Decimal // non-negative; direction carried by Type
	Currency    string          // e.g. "IDR"

	CategoryID   *int64  // nil when the model's label matched no category
	CategoryName *string // populated on reads via join

	Source string    // SourceTelegram or SourceWeb
	TxDate time.Time // calendar date, stamped at insert time
	Type   TxType

	CreatedAt time.Time
}
