package backoffice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upgradeats/upgradeats/internal/domain"
)

func TestComputeStatsRevenueSkipsUnparseable(t *testing.T) {
	orders := []domain.Order{
		{TotalPrice: "Rp 10.000"},
		{TotalPrice: "Rp 25.500"},
		{TotalPrice: "invalid"},
	}
	st := ComputeStats(orders, nil)

	assert.Equal(t, int64(35500), st.Revenue)
	assert.Equal(t, 3, st.TotalOrders)
}

func TestComputeStatsCountsCancelledOrders(t *testing.T) {
	orders := []domain.Order{
		{TotalPrice: "Rp 5.000", Status: domain.OrderPending},
		{TotalPrice: "Rp 5.000", Status: domain.OrderBatal},
		{TotalPrice: "Rp 5.000", Status: domain.OrderSelesai},
	}
	st := ComputeStats(orders, []domain.Product{{}, {}})

	// Cancelled orders stay in the headline count; the breakdown is
	// carried separately.
	assert.Equal(t, 3, st.TotalOrders)
	assert.Equal(t, 1, st.CancelledOrders)
	assert.Equal(t, 2, st.TotalMenus)
}

func TestComputeStatsAggregates(t *testing.T) {
	orders := []domain.Order{
		{TotalPrice: "Rp 10.000"},
		{TotalPrice: "Rp 20.000"},
		{TotalPrice: "Rp 60.000"},
	}
	st := ComputeStats(orders, nil)

	assert.InDelta(t, 30000, st.AvgOrderValue, 0.001)
	assert.InDelta(t, 20000, st.MedianOrderValue, 0.001)
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil, nil)
	assert.Zero(t, st.Revenue)
	assert.Zero(t, st.TotalOrders)
	assert.Zero(t, st.AvgOrderValue)
	assert.Zero(t, st.MedianOrderValue)
}
