package http

import (
	"sync"
	"time"
)

// staleAfter marks how long an idle client bucket survives before being
// pruned on the next sweep.
const staleAfter = 1 * time.Hour

type bucket struct {
	tokens   int
	refillAt time.Time
}

// RateLimiter is a fixed-window token bucket per client IP. Stale buckets
// are pruned lazily during Allow, so no background goroutine is needed.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*bucket
	sweepAt  time.Time
}

// NewRateLimiter allows capacity requests per window per client.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*bucket),
		sweepAt:  time.Now().Add(staleAfter),
	}
}

// Allow consumes one token for the client, refilling its bucket when the
// window has elapsed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweep(now)

	b, ok := rl.buckets[ip]
	if !ok || now.After(b.refillAt) {
		rl.buckets[ip] = &bucket{
			tokens:   rl.capacity - 1,
			refillAt: now.Add(rl.window),
		}
		return true
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets idle past staleAfter. Runs at most once per
// staleAfter interval; caller holds the lock.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Before(rl.sweepAt) {
		return
	}
	for ip, b := range rl.buckets {
		if now.Sub(b.refillAt) > staleAfter {
			delete(rl.buckets, ip)
		}
	}
	rl.sweepAt = now.Add(staleAfter)
}
