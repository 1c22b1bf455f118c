package googleads

import (
	"bytes"
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

const defaultBaseURL = "https://googleads.googleapis.com/v16"

// Client fetches customer-level metrics from the Google Ads REST API.
// The OAuth2 bearer token is supplied ready-made; refreshing it is not
// this client's job.
type Client struct {
	developerToken  string
	accessToken     string
	customerID      string
	loginCustomerID string
	baseURL         string
	http            *xhttp.Client
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithLoginCustomerID sets the manager account used for authentication.
func WithLoginCustomerID(id string) Option {
	return func(c *Client) { c.loginCustomerID = id }
}

// WithHTTPClient sets a shared HTTP client.
func WithHTTPClient(h *xhttp.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Google Ads metrics client.
func New(developerToken, accessToken, customerID string, opts ...Option) domrepo.ChannelSource {
	c := &Client{
		developerToken: developerToken,
		accessToken:    accessToken,
		customerID:     customerID,
		baseURL:        defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = xhttp.NewClient()
	}
	return c
}

func (c *Client) Name() string { return models.ChannelGoogle }

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Results []struct {
		Metrics map[string]any `json:"metrics"`
	} `json:"results"`
}

// metricFields maps the REST response's camelCase metric names to the
// field names the aggregator reads.
var metricFields = map[string]string{
	"impressions": "impressions",
	"clicks":      "clicks",
	"costMicros":  "cost_micros",
	"averageCpc":  "average_cpc",
	"averageCpm":  "average_cpm",
	"conversions": "conversions",
}

// FetchMetrics runs a GAQL search over the date range (inclusive). Cost
// comes back in micros; the aggregator's channel rule converts it.
func (c *Client) FetchMetrics(ctx context.Context, from, to time.Time) ([]models.RawMetricRecord, error) {
	query := fmt.Sprintf(
		"SELECT metrics.impressions, metrics.clicks, metrics.cost_micros, "+
			"metrics.average_cpc, metrics.average_cpm, metrics.conversions "+
			"FROM customer WHERE segments.date BETWEEN '%s' AND '%s'",
		from.Format(util.DayLayout), to.Format(util.DayLayout),
	)
	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	headers := map[string]string{
		"Authorization":   "Bearer " + c.accessToken,
		"developer-token": c.developerToken,
	}
	if c.loginCustomerID != "" {
		headers["login-customer-id"] = c.loginCustomerID
	}

	var resp searchResponse
	err = c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  "POST",
		URL:     fmt.Sprintf("%s/customers/%s/googleAds:search", c.baseURL, c.customerID),
		Headers: headers,
		Body:    bytes.NewReader(body),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("google ads search: %w", err)
	}

	records := make([]models.RawMetricRecord, 0, len(resp.Results))
	for _, row := range resp.Results {
		rec := models.RawMetricRecord{}
		for apiName, fieldName := range metricFields {
			if v, ok := row.Metrics[apiName]; ok {
				rec[fieldName] = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
