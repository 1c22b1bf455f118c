package shopify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"AdsPull/internal/domain/models"
	domrepo "AdsPull/internal/domain/repository"
	xhttp "AdsPull/pkg/http"
	"AdsPull/pkg/util"
)

const apiVersion = "2023-04"

// Client fetches orders from the Shopify Admin API. It fetches a single
// page of up to 250 orders; following rel="next" Link headers is out of
// scope here.
type Client struct {
	baseURL     string
	accessToken string
	http        *xhttp.Client
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the Admin API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient sets a shared HTTP client.
func WithHTTPClient(h *xhttp.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Shopify orders client for the given myshopify.com domain.
func New(shopDomain, accessToken string, opts ...Option) domrepo.OrderSource {
	c := &Client{
		baseURL:     fmt.Sprintf("https://%s/admin/api/%s", shopDomain, apiVersion),
		accessToken: accessToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = xhttp.NewClient()
	}
	return c
}

type ordersResponse struct {
	Orders []models.RawOrderRecord `json:"orders"`
}

// FetchOrders pulls orders created within the date range (inclusive),
// any status: filtering by status is deliberately left to callers that
// want it, the revenue aggregate counts every order.
func (c *Client) FetchOrders(ctx context.Context, from, to time.Time) ([]models.RawOrderRecord, error) {
	var resp ordersResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: "GET",
		URL:    c.baseURL + "/orders.json",
		Headers: map[string]string{
			"X-Shopify-Access-Token": c.accessToken,
		},
		QueryParams: map[string][]string{
			"status":         {"any"},
			"created_at_min": {util.DayStart(from).Format(time.RFC3339)},
			"created_at_max": {util.DayEnd(to).Format(time.RFC3339)},
			"limit":          {"250"},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("shopify orders: %w", err)
	}
	return resp.Orders, nil
}
