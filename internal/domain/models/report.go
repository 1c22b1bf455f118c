package models

// Channel names as they appear in report output and config.
const (
	ChannelMeta   = "meta"
	ChannelGoogle = "google"
)

// RawMetricRecord is one reporting period as returned by an ad platform,
// keyed by metric name. Vendors disagree on value encoding (float64,
// json.Number, digit strings), so values stay untyped until the
// aggregation boundary coerces them.
type RawMetricRecord map[string]any

// RawOrderRecord is one commerce order as returned by the shop API. Only
// the total price field is read; everything else rides along untouched.
type RawOrderRecord map[string]any

// ChannelAggregate holds one ad channel's totals over the requested range.
// CPC is nil iff clicks is zero, CPM is nil iff impressions is zero, and
// ROAS is nil until the combiner attaches it (and stays nil when spend is
// zero or revenue is unavailable).
type ChannelAggregate struct {
	Impressions int                `json:"impressions"`
	Clicks      int                `json:"clicks"`
	Spend       float64            `json:"spend"`
	CPC         *float64           `json:"cpc"`
	CPM         *float64           `json:"cpm"`
	ROAS        *float64           `json:"roas"`
	Extras      map[string]float64 `json:"extras,omitempty"`
}

// RevenueAggregate holds commerce totals over the requested range.
// AverageOrderValue is nil iff TotalOrders is zero.
type RevenueAggregate struct {
	TotalSales        float64  `json:"total_sales"`
	TotalOrders       int      `json:"total_orders"`
	AverageOrderValue *float64 `json:"average_order_value"`
}

// OverallTotals sums ad metrics across the channels that were actually
// fetched. ROAS is computed from the combined spend, never from per-channel
// ROAS values.
type OverallTotals struct {
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Spend       float64  `json:"spend"`
	ROAS        *float64 `json:"roas"`
}

// AggregationResult is the final blended report. A nil entry in Channels
// means that channel was not supplied (disabled or unconfigured), which is
// distinct from a channel that fetched zero activity.
type AggregationResult struct {
	Channels map[string]*ChannelAggregate `json:"channels"`
	Revenue  RevenueAggregate             `json:"revenue"`
	Overall  OverallTotals                `json:"overall"`
}
