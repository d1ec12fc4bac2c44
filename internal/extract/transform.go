package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Fanadillah/kasku-app/internal/domain"
)

// RawCandidate is one item exactly as the model emitted it, before
// validation. Pointers and json.Number keep "absent" distinguishable
// from zero values.
type RawCandidate struct {
	Description string       `json:"description"`
	Amount      *json.Number `json:"amount"`
	Currency    string       `json:"currency"`
	Category    string       `json:"category"`
	Type        string       `json:"type"`
}

// Candidate is a validated item, typed and ready to persist.
type Candidate struct {
	Description string
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Type        domain.TxType
}

// MarshalJSON renders the candidate in the wire shape of the extraction
// endpoint, with amount as a JSON number.
func (c Candidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string      `json:"description"`
		Amount      json.Number `json:"amount"`
		Currency    string      `json:"currency"`
		Category    string      `json:"category"`
		Type        string      `json:"type"`
	}{
		Description: c.Description,
		Amount:      json.Number(c.Amount.String()),
		Currency:    c.Currency,
		Category:    c.Category,
		Type:        string(c.Type),
	})
}

// DecodeCandidates parses the normalized payload into candidates. A
// single top-level object is wrapped into a one-element list so one
// message may carry one or many transactions.
func DecodeCandidates(payload string) ([]RawCandidate, error) {
	trimmed := strings.TrimSpace(payload)

	if strings.HasPrefix(trimmed, "[") {
		var items []RawCandidate
		if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
			return nil, fmt.Errorf("decodeCandidates: unmarshal array: %w", err)
		}
		return items, nil
	}

	var item RawCandidate
	if err := json.Unmarshal([]byte(trimmed), &item); err != nil {
		return nil, fmt.Errorf("decodeCandidates: unmarshal object: %w", err)
	}
	return []RawCandidate{item}, nil
}
