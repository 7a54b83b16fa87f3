package ratelimiter

import (
	ratelimiter "medreminder/internal/core/domain/rate_limiter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowKey(t *testing.T) {
	now := time.Date(2024, 1, 1, 13, 42, 5, 0, time.UTC)

	key, ttl := windowKey("add_medication::1.2.3.4", ratelimiter.Minute, now)
	assert.Equal(t, "ratelimit::add_medication::1.2.3.4::m42", key)
	assert.Equal(t, time.Minute, ttl)

	key, ttl = windowKey("add_medication::1.2.3.4", ratelimiter.Hour, now)
	assert.Equal(t, "ratelimit::add_medication::1.2.3.4::h13", key)
	assert.Equal(t, time.Hour, ttl)
}

func TestWindowKeyChangesEveryMinute(t *testing.T) {
	now := time.Date(2024, 1, 1, 13, 42, 59, 0, time.UTC)

	first, _ := windowKey("k", ratelimiter.Minute, now)
	second, _ := windowKey("k", ratelimiter.Minute, now.Add(time.Second))

	assert.NotEqual(t, first, second)
}
