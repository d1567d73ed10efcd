package server

import (
	"sync"
	"time"
)

// Rate limiting defaults: a small steady rate with burst headroom per client
// IP. Agent runs are expensive, so the ceiling is deliberately low.
const (
	rateLimitPerMinute = 60
	rateLimitBurst     = 20
)

// rateLimiter is a token-bucket limiter keyed by client id.
type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	rate    float64 // tokens per second
	burst   float64
}

type tokenBucket struct {
	tokens   float64
	lastFill time.Time
}

func newRateLimiter(perMinute, burst int) *rateLimiter {
	return &rateLimiter{
		buckets: make(map[string]*tokenBucket),
		rate:    float64(perMinute) / 60.0,
		burst:   float64(burst),
	}
}

// allow reports whether the client may proceed, consuming one token.
func (l *rateLimiter) allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	bucket, ok := l.buckets[clientID]
	if !ok {
		bucket = &tokenBucket{tokens: l.burst, lastFill: now}
		l.buckets[clientID] = bucket
	}

	elapsed := now.Sub(bucket.lastFill).Seconds()
	bucket.tokens += elapsed * l.rate
	if bucket.tokens > l.burst {
		bucket.tokens = l.burst
	}
	bucket.lastFill = now

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}
