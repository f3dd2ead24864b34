// Package ratelimit counts requests per key over a sliding window.
package ratelimit

import (
	"context"
	"time"
)

type Policy struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	// Allow records one hit for key and reports whether it fits the policy.
	Allow(ctx context.Context, key string, policy Policy) (bool, error)
	Reset(ctx context.Context, key string) error
}
