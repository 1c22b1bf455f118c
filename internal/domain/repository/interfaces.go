package repository

import (
	"context"
	"time"

	"AdsPull/internal/domain/models"
)

// ChannelSource fetches raw per-period ad metrics from one vendor API.
// Implementations are thin I/O wrappers: no aggregation, no retries.
type ChannelSource interface {
	Name() string
	FetchMetrics(ctx context.Context, from, to time.Time) ([]models.RawMetricRecord, error)
}

// OrderSource fetches raw commerce orders for a date range.
type OrderSource interface {
	FetchOrders(ctx context.Context, from, to time.Time) ([]models.RawOrderRecord, error)
}

// ReportCache stores finished reports keyed by date range.
type ReportCache interface {
	Get(ctx context.Context, key string) (*models.AggregationResult, bool)
	Set(ctx context.Context, key string, r *models.AggregationResult) error
}

// ReportPublisher emits finished reports to downstream consumers.
type ReportPublisher interface {
	Publish(ctx context.Context, key string, r *models.AggregationResult) error
	Close() error
}

// Metrics records operational counters for the fetch/aggregate pipeline.
type Metrics interface {
	RecordFetch(source string, seconds float64)
	RecordError(kind string)
	RecordReport(spend, revenue float64)
	RecordLatency(op string, seconds float64)
}
