package cache

import "fmt"

const customerKeyPrefix = "storefront:customer:"

// CustomerKey builds the cache key for a customer projection.
func CustomerKey(customerID string) string {
	return fmt.Sprintf("%s%s", customerKeyPrefix, customerID)
}
