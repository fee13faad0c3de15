package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerKey(t *testing.T) {
	assert.Equal(t, "storefront:customer:abc123", CustomerKey("abc123"))
}

func TestNoopStore(t *testing.T) {
	var store Store = noopStore{}
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, store.Delete(ctx, "k"))
}
