package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchOrders(t *testing.T) {
	var gotToken, gotStatus, gotMin, gotMax string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotStatus = r.URL.Query().Get("status")
		gotMin = r.URL.Query().Get("created_at_min")
		gotMax = r.URL.Query().Get("created_at_max")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders": []map[string]any{
				{"total_price": "300.00", "financial_status": "paid"},
				{"total_price": "N/A"},
			},
		})
	}))
	defer srv.Close()

	c := New("example.myshopify.com", "shpat", WithBaseURL(srv.URL))
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	orders, err := c.FetchOrders(context.Background(), from, to)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(orders))
	}
	if gotToken != "shpat" {
		t.Fatalf("token header = %q", gotToken)
	}
	if gotStatus != "any" {
		t.Fatalf("status = %q, want any", gotStatus)
	}
	if gotMin != "2025-01-01T00:00:00Z" {
		t.Fatalf("created_at_min = %q", gotMin)
	}
	if gotMax != "2025-01-02T23:59:59Z" {
		t.Fatalf("created_at_max = %q", gotMax)
	}
}
