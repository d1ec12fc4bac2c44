package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CategoryIDByName resolves a category by exact name. An unmatched name
// is not an error; it yields (nil, nil) and the transaction is stored
// uncategorized.
func (s *Store) CategoryIDByName(ctx context.Context, name string) (*int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE name = $1`, name,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("CategoryIDByName: %w", err)
	}
	return &id, nil
}
