package usecase

import (
	"testing"

	"AdsPull/internal/domain/models"
)

func TestAggregateChannelEmpty(t *testing.T) {
	agg := AggregateChannel(nil, MetaRule)
	if agg.Impressions != 0 || agg.Clicks != 0 || agg.Spend != 0 {
		t.Fatalf("expected zero totals, got %+v", agg)
	}
	if agg.CPC != nil || agg.CPM != nil || agg.ROAS != nil {
		t.Fatalf("expected nil rates on empty input, got %+v", agg)
	}
}

func TestAggregateChannelSumsAndRates(t *testing.T) {
	records := []models.RawMetricRecord{
		{"impressions": "600", "clicks": "12", "spend": "30.0"},
		{"impressions": float64(400), "clicks": float64(8), "spend": float64(20)},
	}
	agg := AggregateChannel(records, MetaRule)

	if agg.Impressions != 1000 {
		t.Fatalf("impressions = %d, want 1000", agg.Impressions)
	}
	if agg.Clicks != 20 {
		t.Fatalf("clicks = %d, want 20", agg.Clicks)
	}
	if agg.Spend != 50.0 {
		t.Fatalf("spend = %v, want 50.0", agg.Spend)
	}
	if agg.CPC == nil || *agg.CPC != 2.5 {
		t.Fatalf("cpc = %v, want 2.5", agg.CPC)
	}
	if agg.CPM == nil || *agg.CPM != 50.0 {
		t.Fatalf("cpm = %v, want 50.0", agg.CPM)
	}
	if agg.ROAS != nil {
		t.Fatalf("roas must stay nil until revenue is attached")
	}
}

func TestAggregateChannelCoercionDefaultsToZero(t *testing.T) {
	records := []models.RawMetricRecord{
		{"impressions": "oops", "clicks": nil, "spend": "N/A"},
		{"clicks": "5", "spend": "10"},
		{"impressions": "100"},
	}
	agg := AggregateChannel(records, MetaRule)

	if agg.Impressions != 100 {
		t.Fatalf("impressions = %d, want 100", agg.Impressions)
	}
	if agg.Clicks != 5 {
		t.Fatalf("clicks = %d, want 5", agg.Clicks)
	}
	if agg.Spend != 10.0 {
		t.Fatalf("spend = %v, want 10.0", agg.Spend)
	}
}

func TestAggregateChannelZeroClicksNilCPC(t *testing.T) {
	records := []models.RawMetricRecord{
		{"impressions": "500", "clicks": "0", "spend": "25"},
	}
	agg := AggregateChannel(records, MetaRule)
	if agg.CPC != nil {
		t.Fatalf("cpc must be nil with zero clicks, got %v", *agg.CPC)
	}
	if agg.CPM == nil || *agg.CPM != 50.0 {
		t.Fatalf("cpm = %v, want 50.0", agg.CPM)
	}
}

func TestAggregateChannelZeroImpressionsNilCPM(t *testing.T) {
	records := []models.RawMetricRecord{
		{"clicks": "10", "spend": "25"},
	}
	agg := AggregateChannel(records, MetaRule)
	if agg.CPM != nil {
		t.Fatalf("cpm must be nil with zero impressions, got %v", *agg.CPM)
	}
	if agg.CPC == nil || *agg.CPC != 2.5 {
		t.Fatalf("cpc = %v, want 2.5", agg.CPC)
	}
}

func TestAggregateChannelGoogleMicrosAndExtras(t *testing.T) {
	records := []models.RawMetricRecord{
		{"impressions": "1000", "clicks": "40", "cost_micros": "75000000", "conversions": "2.5"},
		{"impressions": "1000", "clicks": "10", "cost_micros": "25000000", "conversions": "1.5"},
	}
	agg := AggregateChannel(records, GoogleRule)

	if agg.Spend != 100.0 {
		t.Fatalf("spend = %v, want 100.0 after micros conversion", agg.Spend)
	}
	if agg.CPC == nil || *agg.CPC != 2.0 {
		t.Fatalf("cpc = %v, want 2.0", agg.CPC)
	}
	if agg.CPM == nil || *agg.CPM != 50.0 {
		t.Fatalf("cpm = %v, want 50.0", agg.CPM)
	}
	if got := agg.Extras["conversions"]; got != 4.0 {
		t.Fatalf("conversions = %v, want 4.0", got)
	}
}

func TestAggregateChannelGoogleEmptyStillReportsExtras(t *testing.T) {
	agg := AggregateChannel(nil, GoogleRule)
	got, ok := agg.Extras["conversions"]
	if !ok || got != 0 {
		t.Fatalf("conversions = %v (present=%v), want 0 present", got, ok)
	}
}
