package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter is the single-process fallback used when Redis is disabled.
type MemoryRateLimiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		hits: make(map[string][]time.Time),
		now:  time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, policy Policy) (bool, error) {
	if policy.Limit <= 0 {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-policy.Window)

	kept := l.hits[key][:0]
	for _, at := range l.hits[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	allowed := len(kept) < policy.Limit
	l.hits[key] = append(kept, now)

	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.hits, key)
	l.mu.Unlock()
	return nil
}
