// Package ratelimit provides a token bucket rate limiter.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket implements the token bucket algorithm: a bucket holds up to
// capacity tokens and regains one token per refill interval. The zero value
// is not usable; construct with NewTokenBucket.
type TokenBucket struct {
	mu          sync.Mutex
	capacity    int64
	tokens      int64
	refillEvery time.Duration
	lastRefill  time.Time
	now         func() time.Time
}

// NewTokenBucket creates a full bucket with the given capacity that regains
// one token per refillEvery. A 10-per-minute ceiling is
// NewTokenBucket(10, 6*time.Second).
func NewTokenBucket(capacity int64, refillEvery time.Duration) *TokenBucket {
	return newTokenBucket(capacity, refillEvery, time.Now)
}

func newTokenBucket(capacity int64, refillEvery time.Duration, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:    capacity,
		tokens:      capacity,
		refillEvery: refillEvery,
		lastRefill:  now(),
		now:         now,
	}
}

// Allow checks if a request is allowed and consumes a token if so.
func (tb *TokenBucket) Allow() bool {
	return tb.AllowN(1)
}

// AllowN checks if n requests are allowed and consumes n tokens if so.
func (tb *TokenBucket) AllowN(n int64) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens >= n {
		tb.tokens -= n
		return true
	}
	return false
}

func (tb *TokenBucket) refill() {
	if tb.refillEvery <= 0 {
		return
	}
	now := tb.now()
	tokensToAdd := int64(now.Sub(tb.lastRefill) / tb.refillEvery)
	if tokensToAdd <= 0 {
		return
	}

	tb.tokens += tokensToAdd
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
	// Advance by whole intervals so partial progress toward the next token
	// is not lost.
	tb.lastRefill = tb.lastRefill.Add(time.Duration(tokensToAdd) * tb.refillEvery)
}
