package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Customer represents a registered store customer.
//
// Email is unique across all customers. PasswordHash and PasswordSalt are
// opaque byte sequences produced at registration and never changed by the
// profile update path.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID           string    `bun:"id,pk" json:"customerId"`
	CustomerName string    `bun:"customer_name" json:"customerName"`
	Contact      string    `bun:"contact" json:"contact"`
	Email        string    `bun:"email" json:"email"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP" json:"createdAt"`
	PasswordHash []byte    `bun:"password_hash" json:"-"`
	PasswordSalt []byte    `bun:"password_salt" json:"-"`
}
