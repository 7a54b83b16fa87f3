package ratelimiter

import (
	"context"
	"errors"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	value int
}

var (
	Minute = Interval{}
	Hour   = Interval{value: 1}
)

type Limit struct {
	Value    uint16
	Interval Interval
}

func PerMinute(value uint16) Limit {
	return Limit{Value: value, Interval: Minute}
}

type RateLimiter interface {
	// IsAllowed counts one more call for key and reports whether the key is
	// still within the limit.
	IsAllowed(ctx context.Context, key string, limit Limit) bool
}
