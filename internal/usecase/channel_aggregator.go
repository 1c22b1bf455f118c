package usecase

import (
	"AdsPull/internal/domain/models"
	"AdsPull/pkg/util"
)

// ChannelRule describes how one ad platform reports its numbers: which
// field carries spend, the divisor that converts it to currency units, and
// any channel-specific metrics to sum alongside the common ones.
type ChannelRule struct {
	SpendField string
	// SpendScale is the number of raw spend units per currency unit.
	// 1 for platforms that report in currency directly.
	SpendScale float64
	Extras     []string
}

// Meta reports spend in currency units; Google reports cost in micros and
// adds a conversions metric.
var (
	MetaRule   = ChannelRule{SpendField: "spend", SpendScale: 1}
	GoogleRule = ChannelRule{SpendField: "cost_micros", SpendScale: 1_000_000, Extras: []string{"conversions"}}
)

// AggregateChannel reduces raw per-period metric records into one totals
// aggregate. Impressions and clicks sum as integers, spend sums in raw
// units and is scaled to currency before rounding. Missing or malformed
// fields contribute 0. An empty input yields an all-zero aggregate with
// nil rates, never an error. ROAS is left nil here; Combine attaches it
// once revenue is known.
func AggregateChannel(records []models.RawMetricRecord, rule ChannelRule) *models.ChannelAggregate {
	agg := &models.ChannelAggregate{}

	var rawSpend float64
	var extras map[string]float64
	if len(rule.Extras) > 0 {
		extras = make(map[string]float64, len(rule.Extras))
		for _, name := range rule.Extras {
			extras[name] = 0
		}
	}

	for _, rec := range records {
		agg.Impressions += intField(rec, "impressions")
		agg.Clicks += intField(rec, "clicks")
		rawSpend += floatField(rec, rule.SpendField)
		for _, name := range rule.Extras {
			extras[name] += floatField(rec, name)
		}
	}

	scale := rule.SpendScale
	if scale <= 0 {
		scale = 1
	}
	spend := rawSpend / scale

	agg.Spend = util.Round2(spend)
	if agg.Clicks > 0 {
		cpc := util.Round4(spend / float64(agg.Clicks))
		agg.CPC = &cpc
	}
	if agg.Impressions > 0 {
		cpm := util.Round4(spend / float64(agg.Impressions) * 1000)
		agg.CPM = &cpm
	}
	for name, v := range extras {
		extras[name] = util.Round2(v)
	}
	agg.Extras = extras

	return agg
}
