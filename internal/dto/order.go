package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest is the order placement payload.
type OrderRequest struct {
	OrderNumber     string          `json:"orderNumber"`
	CustomerName    string          `json:"customerName"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	ShippingAddress string          `json:"shippingAddress"`
}

// OrderUpdate lists the fields the order update path may overwrite.
// TotalPrice is recomputed after the merge, never supplied by the caller.
type OrderUpdate struct {
	CustomerName    string          `json:"customerName"`
	ShippingAddress string          `json:"shippingAddress"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

// OrderResponse represents an order as exposed via transport layers.
type OrderResponse struct {
	OrderID         string          `json:"orderId"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerName    string          `json:"customerName"`
	ShippingAddress string          `json:"shippingAddress"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
	TrackingStatus  string          `json:"trackingStatus"`
}
