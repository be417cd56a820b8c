package backoffice

import (
	mstats "github.com/montanaflynn/stats"

	"github.com/upgradeats/upgradeats/internal/domain"
	"github.com/upgradeats/upgradeats/internal/money"
)

// Stats are the aggregate figures shown on the overview tab. TotalOrders
// counts every order ever placed, cancelled ones included; CancelledOrders
// carries the breakdown so that call can be revisited without a migration.
type Stats struct {
	Revenue          int64   `json:"revenue"`
	TotalOrders      int     `json:"total_orders"`
	TotalMenus       int     `json:"total_menus"`
	CancelledOrders  int     `json:"cancelled_orders"`
	AvgOrderValue    float64 `json:"avg_order_value"`
	MedianOrderValue float64 `json:"median_order_value"`
}

// ComputeStats recomputes the full aggregate set from scratch. Unparseable
// total_price values contribute zero and never fail the computation.
func ComputeStats(orders []domain.Order, products []domain.Product) Stats {
	st := Stats{
		TotalOrders: len(orders),
		TotalMenus:  len(products),
	}

	totals := make([]float64, 0, len(orders))
	for _, o := range orders {
		v := money.Parse(o.TotalPrice)
		st.Revenue += v
		totals = append(totals, float64(v))
		if o.Status == domain.OrderBatal {
			st.CancelledOrders++
		}
	}

	if len(totals) > 0 {
		st.AvgOrderValue, _ = mstats.Mean(totals)
		st.MedianOrderValue, _ = mstats.Median(totals)
	}
	return st
}
