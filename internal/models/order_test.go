package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, ValidOrderStatus(status), status)
	}
	for _, status := range []string{"", "pending", "Refunded", "SHIPPED"} {
		assert.False(t, ValidOrderStatus(status), status)
	}
}

func TestOrderTotal(t *testing.T) {
	items := []OrderItem{
		{ProductID: "sona-masoori-0001", Price: 60, Qty: 2},
		{ProductID: "coconut-oil-1234", Price: 260, Qty: 1},
	}
	assert.Equal(t, 380.0, OrderTotal(items))
	assert.Equal(t, 0.0, OrderTotal(nil))
}

func TestTotalMatchesWithinTolerance(t *testing.T) {
	items := []OrderItem{{ProductID: "basmati-0001", Price: 170, Qty: 3}}

	assert.True(t, TotalMatches(510, items))
	assert.True(t, TotalMatches(510.009, items))
	assert.False(t, TotalMatches(511, items))
	assert.False(t, TotalMatches(0, items))
}
