package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"AdsPull/internal/domain/models"
	domrepo "AdsPull/internal/domain/repository"
	xhttp "AdsPull/pkg/http"
	"AdsPull/pkg/util"
)

const defaultBaseURL = "https://graph.facebook.com/v18.0"

// defaultFields are the insights metrics requested per period.
var defaultFields = []string{
	"date_start", "date_stop", "impressions", "clicks", "spend", "cpc", "cpm",
}

// Client fetches account-level insights from the Meta Ads Graph API.
// It returns raw records untouched; aggregation happens downstream.
type Client struct {
	accessToken string
	accountID   string
	baseURL     string
	http        *xhttp.Client
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the Graph API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient sets a shared HTTP client.
func WithHTTPClient(h *xhttp.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Meta insights client. Graph API ad account IDs carry an
// act_ prefix; it is added when missing.
func New(accessToken, accountID string, opts ...Option) domrepo.ChannelSource {
	if !strings.HasPrefix(accountID, "act_") {
		accountID = "act_" + accountID
	}
	c := &Client{
		accessToken: accessToken,
		accountID:   accountID,
		baseURL:     defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = xhttp.NewClient()
	}
	return c
}

func (c *Client) Name() string { return models.ChannelMeta }

type insightsResponse struct {
	Data []models.RawMetricRecord `json:"data"`
}

// FetchMetrics pulls daily insight records for the date range (inclusive).
func (c *Client) FetchMetrics(ctx context.Context, from, to time.Time) ([]models.RawMetricRecord, error) {
	timeRange, err := json.Marshal(map[string]string{
		"since": from.Format(util.DayLayout),
		"until": to.Format(util.DayLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("encode time range: %w", err)
	}

	var resp insightsResponse
	err = c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: "GET",
		URL:    fmt.Sprintf("%s/%s/insights", c.baseURL, c.accountID),
		QueryParams: map[string][]string{
			"level":          {"account"},
			"time_range":     {string(timeRange)},
			"fields":         {strings.Join(defaultFields, ",")},
			"time_increment": {"1"},
			"access_token":   {c.accessToken},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("meta insights: %w", err)
	}
	return resp.Data, nil
}
