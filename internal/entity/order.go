package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Order represents a placed purchase order.
//
// CustomerName is free text, not a reference to a Customer row. TotalPrice is
// derived from Quantity and UnitPrice and recomputed on every create and
// update. IsShipped and IsDelivered are never set by any exposed operation.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID              string          `bun:"id,pk" json:"orderId"`
	OrderNumber     string          `bun:"order_number" json:"orderNumber"`
	CustomerName    string          `bun:"customer_name" json:"customerName"`
	ShippingAddress string          `bun:"shipping_address" json:"shippingAddress"`
	Quantity        int             `bun:"quantity" json:"quantity"`
	UnitPrice       decimal.Decimal `bun:"unit_price" json:"unitPrice"`
	TotalPrice      decimal.Decimal `bun:"total_price" json:"totalPrice"`
	CreatedAt       time.Time       `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP" json:"createdAt"`
	TrackingStatus  string          `bun:"tracking_status" json:"trackingStatus"`
	IsShipped       bool            `bun:"is_shipped" json:"isShipped"`
	IsDelivered     bool            `bun:"is_delivered" json:"isDelivered"`
}
