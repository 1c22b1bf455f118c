package usecase

import (
	"testing"

	"AdsPull/internal/domain/models"
)

func TestCombineSingleChannelAbsentOther(t *testing.T) {
	meta := AggregateChannel([]models.RawMetricRecord{
		{"impressions": float64(1000), "clicks": float64(20), "spend": float64(50)},
	}, MetaRule)
	revenue := AggregateRevenue([]models.RawOrderRecord{{"total_price": "300.00"}})

	res := Combine(&revenue, map[string]*models.ChannelAggregate{
		models.ChannelMeta:   meta,
		models.ChannelGoogle: nil,
	})

	m := res.Channels[models.ChannelMeta]
	if m == nil {
		t.Fatalf("meta channel missing")
	}
	if m.Impressions != 1000 || m.Clicks != 20 || m.Spend != 50.0 {
		t.Fatalf("unexpected meta totals %+v", m)
	}
	if m.CPC == nil || *m.CPC != 2.5 {
		t.Fatalf("meta cpc = %v, want 2.5", m.CPC)
	}
	if m.CPM == nil || *m.CPM != 50.0 {
		t.Fatalf("meta cpm = %v, want 50.0", m.CPM)
	}
	if m.ROAS == nil || *m.ROAS != 6.0 {
		t.Fatalf("meta roas = %v, want 6.0", m.ROAS)
	}

	g, ok := res.Channels[models.ChannelGoogle]
	if !ok {
		t.Fatalf("google must be present as a nil entry, not missing")
	}
	if g != nil {
		t.Fatalf("google must stay nil, got %+v", g)
	}

	if res.Revenue.TotalSales != 300.0 || res.Revenue.TotalOrders != 1 {
		t.Fatalf("unexpected revenue %+v", res.Revenue)
	}
	if res.Revenue.AverageOrderValue == nil || *res.Revenue.AverageOrderValue != 300.0 {
		t.Fatalf("aov = %v, want 300.0", res.Revenue.AverageOrderValue)
	}

	// Absent channel contributes nothing, not zero-as-present.
	if res.Overall.Impressions != 1000 || res.Overall.Clicks != 20 || res.Overall.Spend != 50.0 {
		t.Fatalf("unexpected overall %+v", res.Overall)
	}
	if res.Overall.ROAS == nil || *res.Overall.ROAS != 6.0 {
		t.Fatalf("overall roas = %v, want 6.0", res.Overall.ROAS)
	}
}

func TestCombineOverallROASFromCombinedSpend(t *testing.T) {
	meta := &models.ChannelAggregate{Impressions: 1000, Clicks: 20, Spend: 50}
	google := &models.ChannelAggregate{Impressions: 2000, Clicks: 30, Spend: 50}
	revenue := models.RevenueAggregate{TotalSales: 300, TotalOrders: 2}

	res := Combine(&revenue, map[string]*models.ChannelAggregate{
		models.ChannelMeta:   meta,
		models.ChannelGoogle: google,
	})

	if res.Overall.Spend != 100.0 {
		t.Fatalf("overall spend = %v, want 100.0", res.Overall.Spend)
	}
	// Each channel alone has ROAS 6.0; the overall figure comes from the
	// combined spend, not from combining the per-channel ratios.
	if res.Overall.ROAS == nil || *res.Overall.ROAS != 3.0 {
		t.Fatalf("overall roas = %v, want 3.0", res.Overall.ROAS)
	}
	if r := res.Channels[models.ChannelMeta].ROAS; r == nil || *r != 6.0 {
		t.Fatalf("meta roas = %v, want 6.0", r)
	}
	if r := res.Channels[models.ChannelGoogle].ROAS; r == nil || *r != 6.0 {
		t.Fatalf("google roas = %v, want 6.0", r)
	}
}

func TestCombineDoesNotMutateInputs(t *testing.T) {
	meta := &models.ChannelAggregate{Clicks: 10, Spend: 50}
	revenue := models.RevenueAggregate{TotalSales: 100}

	_ = Combine(&revenue, map[string]*models.ChannelAggregate{models.ChannelMeta: meta})

	if meta.ROAS != nil {
		t.Fatalf("input aggregate must not gain ROAS, got %v", *meta.ROAS)
	}
}

func TestCombineNilRevenueLeavesROASNil(t *testing.T) {
	meta := &models.ChannelAggregate{Clicks: 10, Spend: 50}

	res := Combine(nil, map[string]*models.ChannelAggregate{models.ChannelMeta: meta})

	if res.Channels[models.ChannelMeta].ROAS != nil {
		t.Fatalf("roas must be nil without revenue")
	}
	if res.Overall.ROAS != nil {
		t.Fatalf("overall roas must be nil without revenue")
	}
	if res.Overall.Spend != 50.0 {
		t.Fatalf("overall spend = %v, want 50.0", res.Overall.Spend)
	}
}

func TestCombineZeroSpendChannelNilROAS(t *testing.T) {
	meta := &models.ChannelAggregate{Impressions: 10}
	revenue := models.RevenueAggregate{TotalSales: 300}

	res := Combine(&revenue, map[string]*models.ChannelAggregate{models.ChannelMeta: meta})

	if res.Channels[models.ChannelMeta].ROAS != nil {
		t.Fatalf("roas must be nil with zero spend")
	}
	if res.Overall.ROAS != nil {
		t.Fatalf("overall roas must be nil with zero combined spend")
	}
}
