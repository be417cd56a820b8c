package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, CanTransition(OrderPending, OrderSelesai))
	assert.True(t, CanTransition(OrderPending, OrderBatal))

	// Terminal states allow nothing, including re-entering themselves.
	for _, from := range []OrderStatus{OrderSelesai, OrderBatal} {
		for _, to := range []OrderStatus{OrderPending, OrderSelesai, OrderBatal} {
			assert.Falsef(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, CanTransition(OrderPending, OrderPending))
	assert.False(t, CanTransition("Unknown", OrderSelesai))
}

func TestTerminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.True(t, OrderSelesai.Terminal())
	assert.True(t, OrderBatal.Terminal())
}
