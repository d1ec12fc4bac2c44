package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Fanadillah/kasku-app/internal/domain"
)

// Store is the persistence surface the pipeline needs. The user upsert is
// idempotent on the external identifier; the batch insert is all or
// nothing. The two steps are deliberately not wrapped in one transaction:
// a retry after a failed insert re-runs the upsert safely.
type Store interface {
	UpsertUser(ctx context.Context, telegramUserID string) (int64, error)
	CategoryIDByName(ctx context.Context, name string) (*int64, error)
	InsertTransactions(ctx context.Context, rows []domain.Transaction) error
}

// Service runs the extraction pipeline: model call, response repair,
// validation, persistence, summary.
type Service struct {
	gen   Generator
	store Store
	log   zerolog.Logger
}

// Result is one successful pipeline run.
type Result struct {
	Items   []Candidate
	Rows    []domain.Transaction
	Summary Summary
	Message string
}

func NewService(gen Generator, store Store, log zerolog.Logger) *Service {
	return &Service{gen: gen, store: store, log: log}
}

// Extract turns one free-text message into persisted transactions.
// externalID is the chat provider's user id ("web" for the form); source
// stamps the origin channel on every row. Any failure aborts before rows
// are written; there are no retries and no partial inserts.
func (s *Service) Extract(ctx context.Context, text, externalID, source string) (*Result, error) {
	raw, err := s.gen.Generate(ctx, BuildPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("extract: model call: %w", err)
	}

	clean := NormalizeModelJSON(raw)
	s.log.Debug().Str("raw", raw).Str("cleaned", clean).Msg("model output")

	rawItems, err := DecodeCandidates(clean)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	items, err := ValidateCandidates(rawItems)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	userID, err := s.store.UpsertUser(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("extract: upsert user: %w", err)
	}

	txDate := time.Now()
	rows := make([]domain.Transaction, 0, len(items))
	for _, it := range items {
		categoryID, err := s.store.CategoryIDByName(ctx, it.Category)
		if err != nil {
			return nil, fmt.Errorf("extract: resolve category %q: %w", it.Category, err)
		}
		rows = append(rows, domain.Transaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			Description: it.Description,
			Amount:      it.Amount,
			Currency:    it.Currency,
			CategoryID:  categoryID,
			Source:      source,
			TxDate:      txDate,
			Type:        it.Type,
		})
	}

	if err := s.store.InsertTransactions(ctx, rows); err != nil {
		return nil, fmt.Errorf("extract: insert transactions: %w", err)
	}

	sum := Summarize(rows)
	s.log.Info().
		Int("items", len(rows)).
		Str("source", source).
		Str("external_id", externalID).
		Msg("transactions recorded")

	return &Result{Items: items, Rows: rows, Summary: sum, Message: sum.Message()}, nil
}
