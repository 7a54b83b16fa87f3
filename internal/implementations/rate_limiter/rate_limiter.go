package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	ratelimiter "medreminder/internal/core/domain/rate_limiter"
	"time"

	"github.com/go-redis/redis/v9"
)

// Redis counts calls in fixed windows. When Redis is unavailable calls are
// allowed.
type Redis struct {
	redisClient redis.Cmdable
	log         logging.Logger
	now         func() time.Time
}

func NewRedis(redisClient redis.Cmdable, log logging.Logger, now func() time.Time) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{redisClient: redisClient, log: log, now: now}
}

func (r *Redis) IsAllowed(ctx context.Context, key string, limit ratelimiter.Limit) bool {
	k, ttl := windowKey(key, limit.Interval, r.now())

	cmds, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, ttl)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return false
	}
	if err != nil {
		r.log.Error(ctx, "Could not check rate limit due to Redis client error.", logging.Entry("err", err))
		return true
	}
	count := cmds[0].(*redis.IntCmd).Val()
	return count <= int64(limit.Value)
}

func windowKey(key string, interval ratelimiter.Interval, now time.Time) (string, time.Duration) {
	switch interval {
	case ratelimiter.Hour:
		return fmt.Sprintf("ratelimit::%s::h%d", key, now.Hour()), time.Hour
	case ratelimiter.Minute:
		return fmt.Sprintf("ratelimit::%s::m%d", key, now.Minute()), time.Minute
	default:
		panic("invalid rate limiting interval")
	}
}
