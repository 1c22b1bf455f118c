package googleads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchMetrics(t *testing.T) {
	var gotPath, gotAuth, gotDevToken, gotLogin, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotDevToken = r.Header.Get("developer-token")
		gotLogin = r.Header.Get("login-customer-id")
		b, _ := io.ReadAll(r.Body)
		var req struct {
			Query string `json:"query"`
		}
		_ = json.Unmarshal(b, &req)
		gotQuery = req.Query
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"metrics": map[string]any{
					"impressions": "2000",
					"clicks":      "50",
					"costMicros":  "100000000",
					"conversions": 4.0,
				}},
			},
		})
	}))
	defer srv.Close()

	c := New("devtok", "bearer-tok", "9876543210",
		WithBaseURL(srv.URL), WithLoginCustomerID("1112223334"))
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	records, err := c.FetchMetrics(context.Background(), from, to)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["cost_micros"] != "100000000" {
		t.Fatalf("costMicros must map to cost_micros, got %v", records[0]["cost_micros"])
	}
	if records[0]["conversions"] != 4.0 {
		t.Fatalf("conversions = %v, want 4.0", records[0]["conversions"])
	}
	if _, ok := records[0]["costMicros"]; ok {
		t.Fatalf("camelCase key must not survive mapping")
	}

	if gotPath != "/customers/9876543210/googleAds:search" {
		t.Fatalf("path = %s", gotPath)
	}
	if gotAuth != "Bearer bearer-tok" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotDevToken != "devtok" {
		t.Fatalf("developer-token = %q", gotDevToken)
	}
	if gotLogin != "1112223334" {
		t.Fatalf("login-customer-id = %q", gotLogin)
	}
	if !strings.Contains(gotQuery, "BETWEEN '2025-01-01' AND '2025-01-31'") {
		t.Fatalf("query missing date range: %s", gotQuery)
	}
}

func TestFetchMetricsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"status":"PERMISSION_DENIED"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := New("devtok", "bearer-tok", "9876543210", WithBaseURL(srv.URL))
	_, err := c.FetchMetrics(context.Background(), time.Now(), time.Now())
	if err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}
