package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
)

// NewOrder builds an order row from a placement request. TotalPrice is
// derived from quantity and unit price; the initial tracking status is
// "Processing".
func NewOrder(req dto.OrderRequest) *entity.Order {
	return &entity.Order{
		ID:              entity.NewID(),
		OrderNumber:     req.OrderNumber,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		TotalPrice:      OrderTotal(req.Quantity, req.UnitPrice),
		CreatedAt:       time.Now().UTC(),
		TrackingStatus:  "Processing",
	}
}

// OrderTotal computes quantity × unit price.
func OrderTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// OrderToResponse maps an order row to its transport shape.
func OrderToResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		Quantity:        o.Quantity,
		UnitPrice:       o.UnitPrice,
		TotalPrice:      o.TotalPrice,
		CreatedAt:       o.CreatedAt,
		TrackingStatus:  o.TrackingStatus,
	}
}

// MergeOrder overwrites the patchable fields on an existing order row and
// recomputes TotalPrice from the merged values.
func MergeOrder(existing *entity.Order, update dto.OrderUpdate) {
	existing.CustomerName = update.CustomerName
	existing.ShippingAddress = update.ShippingAddress
	existing.Quantity = update.Quantity
	existing.UnitPrice = update.UnitPrice
	existing.TotalPrice = OrderTotal(existing.Quantity, existing.UnitPrice)
}
