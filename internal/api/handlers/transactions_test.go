package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fanadillah/kasku-app/internal/logger"
)

func TestTransactionsList(t *testing.T) {
	h := NewTransactionsHandler(&fakeListStore{txs: sampleTxs()}, logger.New("disabled"))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		OK           bool `json:"ok"`
		Transactions []struct {
			Description string      `json:"description"`
			Amount      json.Number `json:"amount"`
			Category    *string     `json:"category"`
			TxDate      string      `json:"tx_date"`
			Type        string      `json:"type"`
		} `json:"transactions"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.OK || resp.Count != 2 {
		t.Fatalf("ok = %v count = %d, want true / 2", resp.OK, resp.Count)
	}

	first := resp.Transactions[0]
	if first.Description != "Gaji bulanan" || first.Amount != "5000000" {
		t.Errorf("first = %+v", first)
	}
	if first.Category == nil || *first.Category != "Gaji" {
		t.Errorf("first category = %v, want Gaji", first.Category)
	}
	if first.TxDate != "2025-06-01" {
		t.Errorf("tx_date = %q", first.TxDate)
	}

	second := resp.Transactions[1]
	if second.Category != nil {
		t.Errorf("uncategorized row should have null category, got %v", *second.Category)
	}
	if second.Type != "expense" {
		t.Errorf("type = %q", second.Type)
	}
}

func TestTransactionsList_Empty(t *testing.T) {
	h := NewTransactionsHandler(&fakeListStore{}, logger.New("disabled"))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Transactions []json.RawMessage `json:"transactions"`
		Count        int               `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 0 || len(resp.Transactions) != 0 {
		t.Errorf("response = %+v, want empty list", resp)
	}
}
