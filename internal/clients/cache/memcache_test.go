package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_OnShortTTL_ShouldUseRelativeExpiration(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, int32(3600), expiration(time.Hour, now))
	assert.Equal(t, int32(2592000), expiration(30*24*time.Hour, now))
	assert.Equal(t, int32(0), expiration(0, now))
}

func Test_OnTTLOverThirtyDays_ShouldUseAbsoluteExpiration(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	ttl := 45 * 24 * time.Hour

	assert.Equal(t, int32(now.Add(ttl).Unix()), expiration(ttl, now))
}
