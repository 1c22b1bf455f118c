package usecase

import (
	"AdsPull/internal/domain/models"
	"AdsPull/pkg/util"
)

// orderPriceField is the order field summed into total sales.
const orderPriceField = "total_price"

// AggregateRevenue reduces raw orders into revenue totals. Every record
// counts as one order regardless of status; filtering belongs to the fetch,
// not here. A missing or unparseable price contributes 0 to sales but still
// counts the order.
func AggregateRevenue(orders []models.RawOrderRecord) models.RevenueAggregate {
	var sales float64
	for _, o := range orders {
		sales += floatField(o, orderPriceField)
	}

	agg := models.RevenueAggregate{
		TotalSales:  util.Round2(sales),
		TotalOrders: len(orders),
	}
	if agg.TotalOrders > 0 {
		aov := util.Round2(sales / float64(agg.TotalOrders))
		agg.AverageOrderValue = &aov
	}
	return agg
}
