package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest is the product creation payload.
type ProductRequest struct {
	ProductName  string          `json:"productName"`
	Description  string          `json:"description"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	ImageUrl     string          `json:"imageUrl"`
}

// ProductUpdate lists the fields the product update path may overwrite.
type ProductUpdate struct {
	ProductName  string          `json:"productName"`
	Description  string          `json:"description"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	ImageUrl     string          `json:"imageUrl"`
}

// ProductResponse represents a product as exposed via transport layers.
type ProductResponse struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Description  string          `json:"description"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	ImageUrl     string          `json:"imageUrl"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ProductFilter holds the optional equality predicates for product listing.
type ProductFilter struct {
	ProductID   string `query:"productId" json:"productId"`
	ProductName string `query:"productName" json:"productName"`
	Description string `query:"description" json:"description"`
	Page
}
