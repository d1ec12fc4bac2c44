package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Store is the Postgres persistence adapter. Open it twice to separate
// credential tiers: an elevated DSN for the write path and a restricted
// one for dashboard reads.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("Open: opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("Open: connecting to database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
