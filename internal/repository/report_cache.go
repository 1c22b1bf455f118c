package repository

import (
	"context"
	"errors"
	"time"

	"AdsPull/internal/domain/models"
	domrepo "AdsPull/internal/domain/repository"
	"AdsPull/pkg/cache"
)

// CacheReportCache implements the report cache over a cache.Service
// backend (Redis when enabled, in-memory otherwise).
type CacheReportCache struct {
	svc cache.Service
	ttl time.Duration
}

func NewCacheReportCache(svc cache.Service, ttl time.Duration) domrepo.ReportCache {
	return &CacheReportCache{svc: svc, ttl: ttl}
}

func (c *CacheReportCache) Get(ctx context.Context, key string) (*models.AggregationResult, bool) {
	var res models.AggregationResult
	err := c.svc.Get(ctx, key, &res)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, false
	}
	if err != nil {
		// A broken cache backend degrades to a miss, never to a failed report.
		return nil, false
	}
	return &res, true
}

func (c *CacheReportCache) Set(ctx context.Context, key string, r *models.AggregationResult) error {
	return c.svc.Set(ctx, key, r, c.ttl)
}
