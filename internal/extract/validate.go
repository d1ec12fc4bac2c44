package extract

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Fanadillah/kasku-app/internal/domain"
)

// ValidateCandidates checks every item for the four required fields
// (description, amount, currency, category) and converts the batch into
// typed candidates. Any invalid item rejects the whole batch; nothing is
// partially accepted.
func ValidateCandidates(raw []RawCandidate) ([]Candidate, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("validateCandidates: empty batch")
	}

	out := make([]Candidate, 0, len(raw))
	for i, rc := range raw {
		if strings.TrimSpace(rc.Description) == "" {
			return nil, fmt.Errorf("validateCandidates: item %d: missing required field %q", i, "description")
		}
		if rc.Amount == nil {
			return nil, fmt.Errorf("validateCandidates: item %d: missing required field %q", i, "amount")
		}
		if strings.TrimSpace(rc.Currency) == "" {
			return nil, fmt.Errorf("validateCandidates: item %d: missing required field %q", i, "currency")
		}
		if strings.TrimSpace(rc.Category) == "" {
			return nil, fmt.Errorf("validateCandidates: item %d: missing required field %q", i, "category")
		}

		amount, err := decimal.NewFromString(rc.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("validateCandidates: item %d: invalid amount %q: %w", i, rc.Amount.String(), err)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("validateCandidates: item %d: amount must not be negative", i)
		}

		out = append(out, Candidate{
			Description: rc.Description,
			Amount:      amount,
			Currency:    rc.Currency,
			Category:    rc.Category,
			Type:        domain.TxType(rc.Type),
		})
	}
	return out, nil
}
