package ratelimiting

import (
	"context"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	ratelimiter "medreminder/internal/core/domain/rate_limiter"
	"medreminder/internal/core/services"
)

type hasRateLimitKey interface {
	GetRateLimitKey() string
}

type serviceWithRateLimiting[T hasRateLimitKey, S any] struct {
	log         logging.Logger
	rateLimiter ratelimiter.RateLimiter
	limit       ratelimiter.Limit
	inner       services.Service[T, S]
}

// New rejects calls above limit per rate limit key before they reach inner.
// It absorbs rapid repeated submissions of the same form.
func New[T hasRateLimitKey, S any](
	log logging.Logger,
	rateLimiter ratelimiter.RateLimiter,
	limit ratelimiter.Limit,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if rateLimiter == nil {
		panic(e.NewNilArgumentError("rateLimiter"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithRateLimiting[T, S]{
		log:         log,
		rateLimiter: rateLimiter,
		limit:       limit,
		inner:       inner,
	}
}

func (s *serviceWithRateLimiting[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	key := input.GetRateLimitKey()
	if s.rateLimiter.IsAllowed(ctx, key, s.limit) {
		return s.inner.Run(ctx, input)
	}
	s.log.Warning(ctx, "Rate limit exceeded.", logging.Entry("key", key))
	return result, ratelimiter.ErrRateLimitExceeded
}
