package mapper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
)

func TestOrderTotal(t *testing.T) {
	total := OrderTotal(3, decimal.NewFromFloat(10.50))
	assert.True(t, total.Equal(decimal.NewFromFloat(31.50)))

	assert.True(t, OrderTotal(0, decimal.NewFromFloat(99.99)).IsZero())
}

func TestNewOrder(t *testing.T) {
	order := NewOrder(dto.OrderRequest{
		OrderNumber:     "ORDER-1000",
		CustomerName:    "Grace Hopper",
		Quantity:        2,
		UnitPrice:       decimal.NewFromFloat(15.25),
		ShippingAddress: "1 Navy Way",
	})

	require.Len(t, order.ID, 32)
	assert.Equal(t, "Processing", order.TrackingStatus)
	assert.False(t, order.IsShipped)
	assert.False(t, order.IsDelivered)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromFloat(30.50)))
	assert.False(t, order.CreatedAt.IsZero())
}

func TestMergeOrder_RecomputesTotal(t *testing.T) {
	existing := &entity.Order{
		ID:          "o1",
		OrderNumber: "ORDER-1000",
		Quantity:    2,
		UnitPrice:   decimal.NewFromFloat(15.25),
		TotalPrice:  decimal.NewFromFloat(30.50),
	}

	MergeOrder(existing, dto.OrderUpdate{
		CustomerName:    "Grace Hopper",
		ShippingAddress: "2 Navy Way",
		Quantity:        4,
		UnitPrice:       decimal.NewFromFloat(12.00),
	})

	assert.Equal(t, "ORDER-1000", existing.OrderNumber)
	assert.Equal(t, 4, existing.Quantity)
	assert.True(t, existing.TotalPrice.Equal(decimal.NewFromFloat(48.00)))
}
