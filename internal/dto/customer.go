package dto

import "time"

// RegisterCustomerRequest is the registration payload.
type RegisterCustomerRequest struct {
	CustomerName    string `json:"customerName"`
	Contact         string `json:"contact"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// CustomerLoginRequest is the login payload.
type CustomerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomerUpdate lists the profile fields the update path may overwrite.
// Credentials are deliberately absent.
type CustomerUpdate struct {
	CustomerName string `json:"customerName"`
	Contact      string `json:"contact"`
	Email        string `json:"email"`
}

// CustomerResponse represents a customer as exposed via transport layers.
type CustomerResponse struct {
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Contact      string    `json:"contact"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CachedCustomer is the credential-free projection stored in the cache,
// keyed by customer id.
type CachedCustomer struct {
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Contact      string    `json:"contact"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CustomerFilter holds the optional equality predicates for customer listing.
// Email matches case-insensitively.
type CustomerFilter struct {
	CustomerID   string `query:"customerId" json:"customerId"`
	CustomerName string `query:"customerName" json:"customerName"`
	Contact      string `query:"contact" json:"contact"`
	Email        string `query:"email" json:"email"`
	Page
}
