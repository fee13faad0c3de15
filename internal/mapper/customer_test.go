package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
)

func TestNewCustomer_NoCredentials(t *testing.T) {
	customer := NewCustomer(dto.RegisterCustomerRequest{
		CustomerName:    "Grace Hopper",
		Contact:         "0123456789",
		Email:           "grace@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	})

	require.Len(t, customer.ID, 32)
	assert.Empty(t, customer.PasswordHash)
	assert.Empty(t, customer.PasswordSalt)
	assert.False(t, customer.CreatedAt.IsZero())
}

func TestMergeCustomer_LeavesCredentialsAndCreatedAt(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := &entity.Customer{
		ID:           "c1",
		CustomerName: "Grace Hopper",
		Contact:      "0123456789",
		Email:        "grace@example.com",
		PasswordHash: []byte{1, 2, 3},
		PasswordSalt: []byte{4, 5, 6},
		CreatedAt:    created,
	}

	MergeCustomer(existing, dto.CustomerUpdate{
		CustomerName: "Grace B. Hopper",
		Contact:      "0987654321",
		Email:        "hopper@example.com",
	})

	assert.Equal(t, "Grace B. Hopper", existing.CustomerName)
	assert.Equal(t, "hopper@example.com", existing.Email)
	assert.Equal(t, []byte{1, 2, 3}, existing.PasswordHash)
	assert.Equal(t, []byte{4, 5, 6}, existing.PasswordSalt)
	assert.Equal(t, created, existing.CreatedAt)
}

func TestCustomerToCached_SerializesWithoutCredentials(t *testing.T) {
	projection := CustomerToCached(&entity.Customer{
		ID:           "c1",
		CustomerName: "Grace Hopper",
		Contact:      "0123456789",
		Email:        "grace@example.com",
		PasswordHash: []byte("hash"),
		PasswordSalt: []byte("salt"),
		CreatedAt:    time.Now().UTC(),
	})

	payload, err := json.Marshal(projection)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
	assert.Contains(t, string(payload), `"customerId":"c1"`)
}
