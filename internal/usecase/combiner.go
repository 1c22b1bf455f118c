package usecase

import (
	"AdsPull/internal/domain/models"
	"AdsPull/pkg/util"
)

// Combine merges per-channel aggregates with the revenue aggregate into the
// final report. A nil channel entry means the channel was never fetched; it
// stays nil in the output and contributes nothing to the overall totals.
// When revenue is nil every ROAS is left nil. Inputs are not mutated; the
// returned result is freshly built and safe to hand off.
func Combine(revenue *models.RevenueAggregate, channels map[string]*models.ChannelAggregate) *models.AggregationResult {
	res := &models.AggregationResult{
		Channels: make(map[string]*models.ChannelAggregate, len(channels)),
	}

	var rev float64
	haveRevenue := revenue != nil
	if haveRevenue {
		res.Revenue = *revenue
		rev = revenue.TotalSales
	}

	for name, agg := range channels {
		if agg == nil {
			res.Channels[name] = nil
			continue
		}
		cp := *agg
		if haveRevenue {
			cp.ROAS = ComputeROAS(rev, cp.Spend)
		}
		res.Channels[name] = &cp

		res.Overall.Impressions += cp.Impressions
		res.Overall.Clicks += cp.Clicks
		res.Overall.Spend += cp.Spend
	}

	res.Overall.Spend = util.Round2(res.Overall.Spend)
	if haveRevenue {
		res.Overall.ROAS = ComputeROAS(rev, res.Overall.Spend)
	}
	return res
}
