package usecase

import "AdsPull/pkg/util"

// ComputeROAS returns revenue/spend rounded to 2 decimal places, or nil
// when spend is zero or negative: ROAS is undefined without positive spend.
// The same revenue figure is used for every channel and for the overall
// total; all sales are attributed to the whole funnel, not split per
// channel (no multi-touch attribution).
func ComputeROAS(revenue, spend float64) *float64 {
	if spend <= 0 {
		return nil
	}
	r := util.Round2(revenue / spend)
	return &r
}
