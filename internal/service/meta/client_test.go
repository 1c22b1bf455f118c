package meta

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchMetrics(t *testing.T) {
	var gotPath, gotToken, gotTimeRange string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		gotTimeRange = r.URL.Query().Get("time_range")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"impressions": "1000", "clicks": "20", "spend": "50.00"},
			},
		})
	}))
	defer srv.Close()

	c := New("tok", "123", WithBaseURL(srv.URL))
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	records, err := c.FetchMetrics(context.Background(), from, to)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["spend"] != "50.00" {
		t.Fatalf("records must pass through raw, got %v", records[0]["spend"])
	}

	if gotPath != "/act_123/insights" {
		t.Fatalf("path = %s, want /act_123/insights (act_ prefix added)", gotPath)
	}
	if gotToken != "tok" {
		t.Fatalf("access_token = %q", gotToken)
	}

	var tr map[string]string
	if err := json.Unmarshal([]byte(gotTimeRange), &tr); err != nil {
		t.Fatalf("time_range not json: %v", err)
	}
	if tr["since"] != "2025-01-01" || tr["until"] != "2025-01-31" {
		t.Fatalf("unexpected time_range %v", tr)
	}
}

func TestFetchMetricsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad token"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New("tok", "act_123", WithBaseURL(srv.URL))
	_, err := c.FetchMetrics(context.Background(), time.Now(), time.Now())
	if err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}
