package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// ClassifyItem is one transaction as reported back by the extraction
// endpoint.
type ClassifyItem struct {
	Description string
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Type        string
}

// ClassifyResult is the extraction endpoint's reply: either a recorded
// batch with a confirmation message, or an error string.
type ClassifyResult struct {
	OK      bool
	Message string
	Error   string
	Items   []ClassifyItem
}

// Classifier reaches the extraction pipeline on behalf of the gateway.
type Classifier interface {
	Classify(ctx context.Context, text, telegramUserID string) (*ClassifyResult, error)
}

// Stats are the aggregate totals behind the stats menu entry.
type Stats struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Count   int
}

// StatsFetcher loads aggregate totals for the stats menu entry.
type StatsFetcher interface {
	FetchStats(ctx context.Context) (*Stats, error)
}

// APIClient calls this service's own HTTP API via the configured base
// URL, mirroring how the webhook reached the extraction route in
// production. It deliberately carries no timeout; a hanging downstream
// stalls the one request that caused it.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type wireItem struct {
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	Category    string      `json:"category"`
	Type        string      `json:"type"`
}

type wireExtractResponse struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Classify posts to /api/extract and decodes either response shape.
func (c *APIClient) Classify(ctx context.Context, text, telegramUserID string) (*ClassifyResult, error) {
	body, err := json.Marshal(map[string]string{
		"text":             text,
		"telegram_user_id": telegramUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("Classify: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/extract", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("Classify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Classify: call extraction endpoint: %w", err)
	}
	defer resp.Body.Close()

	var wire wireExtractResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("Classify: decode response: %w", err)
	}

	result := &ClassifyResult{OK: wire.OK, Message: wire.Message, Error: wire.Error}
	if !wire.OK {
		return result, nil
	}

	items, err := decodeWireItems(wire.Data)
	if err != nil {
		return nil, fmt.Errorf("Classify: %w", err)
	}
	result.Items = items
	return result, nil
}

// decodeWireItems accepts the endpoint's data field as either a single
// object or an array.
func decodeWireItems(data json.RawMessage) ([]ClassifyItem, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var raw []wireItem
	if err := json.Unmarshal(data, &raw); err != nil {
		var one wireItem
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("decodeWireItems: %w", err)
		}
		raw = []wireItem{one}
	}

	out := make([]ClassifyItem, 0, len(raw))
	for _, it := range raw {
		amount, err := decimal.NewFromString(it.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("decodeWireItems: amount %q: %w", it.Amount.String(), err)
		}
		out = append(out, ClassifyItem{
			Description: it.Description,
			Amount:      amount,
			Currency:    it.Currency,
			Category:    it.Category,
			Type:        it.Type,
		})
	}
	return out, nil
}

type wireStatsResponse struct {
	OK           bool        `json:"ok"`
	IncomeTotal  json.Number `json:"income_total"`
	ExpenseTotal json.Number `json:"expense_total"`
	Count        int         `json:"count"`
}

// FetchStats reads /api/stats.
func (c *APIClient) FetchStats(ctx context.Context) (*Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("FetchStats: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchStats: call stats endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchStats: unexpected status %d", resp.StatusCode)
	}

	var wire wireStatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("FetchStats: decode response: %w", err)
	}
	if !wire.OK {
		return nil, fmt.Errorf("FetchStats: stats endpoint reported failure")
	}

	income, err := decimal.NewFromString(wire.IncomeTotal.String())
	if err != nil {
		return nil, fmt.Errorf("FetchStats: income total %q: %w", wire.IncomeTotal.String(), err)
	}
	expense, err := decimal.NewFromString(wire.ExpenseTotal.String())
	if err != nil {
		return nil, fmt.Errorf("FetchStats: expense total %q: %w", wire.ExpenseTotal.String(), err)
	}
	return &Stats{Income: income, Expense: expense, Count: wire.Count}, nil
}
