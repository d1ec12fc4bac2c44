package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAPIClientClassify_SingleObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/extract" || r.Method != http.MethodPost {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["telegram_user_id"] != "12345" {
			t.Errorf("telegram_user_id = %q", req["telegram_user_id"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"ok": true,
			"data": {"description": "Beli kopi", "amount": 25000, "currency": "IDR", "category": "Makanan & Minuman", "type": "expense"},
			"message": "Transaksi dicatat:\n -Pengeluaran Rp 25.000"
		}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	res, err := c.Classify(context.Background(), "Beli kopi 25rb", "12345")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !res.OK {
		t.Fatal("ok = false, want true")
	}
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	if !res.Items[0].Amount.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("amount = %s, want 25000", res.Items[0].Amount)
	}
	if res.Items[0].Category != "Makanan & Minuman" {
		t.Errorf("category = %q", res.Items[0].Category)
	}
}

func TestAPIClientClassify_Array(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"ok": true,
			"data": [
				{"description": "a", "amount": 10, "currency": "IDR", "category": "Gaji", "type": "income"},
				{"description": "b", "amount": 20, "currency": "IDR", "category": "Gaji", "type": "income"}
			],
			"message": "ok"
		}`))
	}))
	defer srv.Close()

	res, err := NewAPIClient(srv.URL).Classify(context.Background(), "x", "1")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(res.Items))
	}
}

func TestAPIClientClassify_Rejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok": false, "error": "teks tidak dikenali"}`))
	}))
	defer srv.Close()

	res, err := NewAPIClient(srv.URL).Classify(context.Background(), "x", "1")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.OK {
		t.Error("ok = true, want false")
	}
	if res.Error != "teks tidak dikenali" {
		t.Errorf("error = %q", res.Error)
	}
	if len(res.Items) != 0 {
		t.Errorf("items = %d, want 0", len(res.Items))
	}
}

func TestAPIClientFetchStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stats" || r.Method != http.MethodGet {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"ok": true, "income_total": 5000000, "expense_total": 25000, "count": 2}`))
	}))
	defer srv.Close()

	stats, err := NewAPIClient(srv.URL).FetchStats(context.Background())
	if err != nil {
		t.Fatalf("FetchStats: %v", err)
	}
	if !stats.Income.Equal(decimal.NewFromInt(5000000)) {
		t.Errorf("income = %s", stats.Income)
	}
	if !stats.Expense.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("expense = %s", stats.Expense)
	}
	if stats.Count != 2 {
		t.Errorf("count = %d", stats.Count)
	}
}

func TestAPIClientFetchStats_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewAPIClient(srv.URL).FetchStats(context.Background()); err == nil {
		t.Fatal("want error")
	}
}
