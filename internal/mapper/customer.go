// Package mapper converts between persisted entities, request payloads, and
// response shapes. Conversions are explicit per entity; merge functions
// enumerate exactly the fields an update may overwrite.
package mapper

import (
	"time"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
)

// NewCustomer builds a customer row from a registration request. Credentials
// are attached separately by the service after hashing.
func NewCustomer(req dto.RegisterCustomerRequest) *entity.Customer {
	return &entity.Customer{
		ID:           entity.NewID(),
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		Email:        req.Email,
		CreatedAt:    time.Now().UTC(),
	}
}

// CustomerToResponse maps a customer row to its transport shape.
func CustomerToResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		CustomerID:   c.ID,
		CustomerName: c.CustomerName,
		Contact:      c.Contact,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
	}
}

// CustomerToCached projects a customer row into the credential-free shape
// stored in the cache.
func CustomerToCached(c *entity.Customer) dto.CachedCustomer {
	return dto.CachedCustomer{
		CustomerID:   c.ID,
		CustomerName: c.CustomerName,
		Contact:      c.Contact,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
	}
}

// MergeCustomer overwrites the patchable profile fields on an existing row.
// Credentials and CreatedAt are untouched.
func MergeCustomer(existing *entity.Customer, update dto.CustomerUpdate) {
	existing.CustomerName = update.CustomerName
	existing.Contact = update.Contact
	existing.Email = update.Email
}
