package mapper

import (
	"time"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
)

// NewProduct builds a product row from a creation request.
func NewProduct(req dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:           entity.NewID(),
		ProductName:  req.ProductName,
		Description:  req.Description,
		ProductPrice: req.ProductPrice,
		ImageUrl:     req.ImageUrl,
		CreatedAt:    time.Now().UTC(),
	}
}

// ProductToResponse maps a product row to its transport shape.
func ProductToResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:    p.ID,
		ProductName:  p.ProductName,
		Description:  p.Description,
		ProductPrice: p.ProductPrice,
		ImageUrl:     p.ImageUrl,
		CreatedAt:    p.CreatedAt,
	}
}

// ProductToUpdateShape maps a product row back onto the update-model shape.
// The product update endpoint responds with this shape rather than the full
// response model.
func ProductToUpdateShape(p *entity.Product) dto.ProductUpdate {
	return dto.ProductUpdate{
		ProductName:  p.ProductName,
		Description:  p.Description,
		ProductPrice: p.ProductPrice,
		ImageUrl:     p.ImageUrl,
	}
}

// MergeProduct overwrites the patchable fields on an existing product row.
func MergeProduct(existing *entity.Product, update dto.ProductUpdate) {
	existing.ProductName = update.ProductName
	existing.Description = update.Description
	existing.ProductPrice = update.ProductPrice
	existing.ImageUrl = update.ImageUrl
}
