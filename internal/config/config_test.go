package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheCustomerTTL_DaysToDuration(t *testing.T) {
	cache := Cache{CustomerTTLDays: 3}
	assert.Equal(t, 72*time.Hour, cache.CustomerTTL())
}
