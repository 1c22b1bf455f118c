package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"AdsPull/internal/domain/models"
	domrepo "AdsPull/internal/domain/repository"
	xlogger "AdsPull/pkg/logger"
	"AdsPull/pkg/util"
)

// ChannelFeed binds one ad channel to its vendor source and reporting rule.
// Source is nil when the channel is not configured; the channel then shows
// up as null in every report. Required feeds fail the whole request on
// fetch error, optional ones degrade to an absent channel.
type ChannelFeed struct {
	Name     string
	Source   domrepo.ChannelSource
	Rule     ChannelRule
	Required bool
}

// ReportUseCase orchestrates the fetch/aggregate pipeline: fan out to every
// enabled source, aggregate each sequence, combine, cache, publish. The
// aggregation itself stays pure; all I/O lives here.
type ReportUseCase struct {
	feeds   []ChannelFeed
	orders  domrepo.OrderSource
	cache   domrepo.ReportCache
	pub     domrepo.ReportPublisher
	metrics domrepo.Metrics
	logger  *xlogger.Logger
	timeout time.Duration
}

func NewReportUseCase(
	feeds []ChannelFeed,
	orders domrepo.OrderSource,
	cache domrepo.ReportCache,
	pub domrepo.ReportPublisher,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
	timeout time.Duration,
) *ReportUseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ReportUseCase{
		feeds:   feeds,
		orders:  orders,
		cache:   cache,
		pub:     pub,
		metrics: metrics,
		logger:  logger,
		timeout: timeout,
	}
}

// ReportParams selects the date range. Refresh bypasses the cache.
type ReportParams struct {
	From    time.Time
	To      time.Time
	Refresh bool
}

// EnabledChannels lists the channels that have a configured source.
func (uc *ReportUseCase) EnabledChannels() []string {
	out := make([]string, 0, len(uc.feeds))
	for _, f := range uc.feeds {
		if f.Source != nil {
			out = append(out, f.Name)
		}
	}
	return out
}

func reportKey(p ReportParams) string {
	return fmt.Sprintf("report:%s:%s", p.From.Format(util.DayLayout), p.To.Format(util.DayLayout))
}

// GetReport builds the blended report for the date range. Orders plus every
// enabled channel are fetched concurrently; record order within a sequence
// does not affect the output.
func (uc *ReportUseCase) GetReport(ctx context.Context, p ReportParams) (*models.AggregationResult, error) {
	if p.To.Before(p.From) {
		return nil, fmt.Errorf("invalid range: to %s before from %s",
			p.To.Format(util.DayLayout), p.From.Format(util.DayLayout))
	}

	key := reportKey(p)
	if uc.cache != nil && !p.Refresh {
		if cached, ok := uc.cache.Get(ctx, key); ok {
			uc.metrics.RecordFetch("cache", 0)
			return cached, nil
		}
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	type fetched struct {
		feed    *ChannelFeed
		records []models.RawMetricRecord
		orders  []models.RawOrderRecord
		err     error
	}
	ch := make(chan fetched, len(uc.feeds)+1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		fs := time.Now()
		orders, err := uc.orders.FetchOrders(ctx, p.From, p.To)
		uc.metrics.RecordFetch("shopify", time.Since(fs).Seconds())
		ch <- fetched{orders: orders, err: err}
	}()

	for i := range uc.feeds {
		feed := &uc.feeds[i]
		if feed.Source == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			fs := time.Now()
			recs, err := feed.Source.FetchMetrics(ctx, p.From, p.To)
			uc.metrics.RecordFetch(feed.Name, time.Since(fs).Seconds())
			ch <- fetched{feed: feed, records: recs, err: err}
		}()
	}

	go func() { wg.Wait(); close(ch) }()

	channels := make(map[string]*models.ChannelAggregate, len(uc.feeds))
	for _, f := range uc.feeds {
		channels[f.Name] = nil
	}
	var revenue models.RevenueAggregate

	for it := range ch {
		if it.feed == nil {
			if it.err != nil {
				uc.metrics.RecordError("fetch_shopify")
				return nil, fmt.Errorf("fetch orders: %w", it.err)
			}
			revenue = AggregateRevenue(it.orders)
			continue
		}
		if it.err != nil {
			uc.metrics.RecordError("fetch_" + it.feed.Name)
			if it.feed.Required {
				return nil, fmt.Errorf("fetch %s: %w", it.feed.Name, it.err)
			}
			uc.logger.Warn("channel fetch failed, reporting as absent",
				xlogger.String("channel", it.feed.Name), xlogger.Error(it.err))
			continue
		}
		channels[it.feed.Name] = AggregateChannel(it.records, it.feed.Rule)
	}

	res := Combine(&revenue, channels)
	uc.metrics.RecordReport(res.Overall.Spend, res.Revenue.TotalSales)
	uc.metrics.RecordLatency("report", time.Since(start).Seconds())

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, res); err != nil {
			uc.logger.Warn("report cache write failed", xlogger.Error(err))
		}
	}
	if uc.pub != nil {
		if err := uc.pub.Publish(ctx, key, res); err != nil {
			uc.metrics.RecordError("publish")
			uc.logger.Warn("report publish failed", xlogger.Error(err))
		}
	}
	return res, nil
}
