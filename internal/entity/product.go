package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Product represents a catalog item. ProductName is unique.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID           string          `bun:"id,pk" json:"productId"`
	ProductName  string          `bun:"product_name" json:"productName"`
	Description  string          `bun:"description" json:"description"`
	ProductPrice decimal.Decimal `bun:"product_price" json:"productPrice"`
	ImageUrl     string          `bun:"image_url" json:"imageUrl"`
	CreatedAt    time.Time       `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP" json:"createdAt"`
}
