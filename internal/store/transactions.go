package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Fanadillah/kasku-app/internal/domain"
)

const txColumns = 9

// InsertTransactions writes the whole batch in a single multi-row INSERT
// so either every row lands or none does.
func (s *Store) InsertTransactions(ctx context.Context, rows []domain.Transaction) error {
	if len(rows) == 0 {
		return nil
	}

	var (
		sb   strings.Builder
		args = make([]interface{}, 0, len(rows)*txColumns)
	)
	sb.WriteString(`INSERT INTO transactions
		(id, user_id, description, amount, currency, category_id, source, tx_date, type) VALUES `)
	for i, r := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * txColumns
		sb.WriteString("(")
		for j := 1; j <= txColumns; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", base+j)
		}
		sb.WriteString(")")
		args = append(args,
			r.ID, r.UserID, r.Description, r.Amount.String(), r.Currency,
			r.CategoryID, r.Source, r.TxDate.Format("2006-01-02"), string(r.Type),
		)
	}

	if _, err := s.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("InsertTransactions: inserting %d rows: %w", len(rows), err)
	}
	return nil
}

// ListTransactions returns the full history, newest first, with category
// names joined in. The dashboard re-reads this on every render.
func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.user_id, t.description, t.amount, t.currency,
		       t.category_id, c.name, t.source, t.tx_date, t.type, t.created_at
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListTransactions: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var (
			t          domain.Transaction
			amount     string
			categoryID sql.NullInt64
			category   sql.NullString
			txType     string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &amount, &t.Currency,
			&categoryID, &category, &t.Source, &t.TxDate, &txType, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListTransactions: scanning row: %w", err)
		}
		t.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("ListTransactions: amount %q: %w", amount, err)
		}
		if categoryID.Valid {
			id := categoryID.Int64
			t.CategoryID = &id
		}
		if category.Valid {
			name := category.String
			t.CategoryName = &name
		}
		t.Type = domain.TxType(txType)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTransactions: %w", err)
	}
	return out, nil
}
