package ratelimiter

import (
	"context"
	"sync"
)

type FakeRateLimiter struct {
	Allow   bool
	Checked []string
	lock    sync.Mutex
}

func NewFakeRateLimiter(allow bool) *FakeRateLimiter {
	return &FakeRateLimiter{Allow: allow}
}

func (rl *FakeRateLimiter) IsAllowed(ctx context.Context, key string, limit Limit) bool {
	rl.lock.Lock()
	defer rl.lock.Unlock()
	rl.Checked = append(rl.Checked, key)
	return rl.Allow
}
