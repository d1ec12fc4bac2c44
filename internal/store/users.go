package store

import (
	"context"
	"fmt"
)

// UpsertUser creates the user on first sight and returns the internal id
// either way. The no-op DO UPDATE makes RETURNING work on the conflict
// path too, so concurrent first messages from the same user race safely.
func (s *Store) UpsertUser(ctx context.Context, telegramUserID string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (telegram_user_id)
		VALUES ($1)
		ON CONFLICT (telegram_user_id) DO UPDATE SET telegram_user_id = EXCLUDED.telegram_user_id
		RETURNING id`,
		telegramUserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("UpsertUser: %w", err)
	}
	return id, nil
}
