// Package ratelimit implements a per-key token bucket used to slow down
// credential guessing on the login endpoint. Buckets live in memory, which
// matches the single-process deployment model.
package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens float64
	ts     time.Time
}

// TokenBucket refills each key at a fixed rate up to a burst capacity.
// Idle buckets are dropped once they are full again.
type TokenBucket struct {
	rate  float64
	burst float64
	now   func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

func New(rate float64, burst int) *TokenBucket {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		rate:    rate,
		burst:   float64(burst),
		now:     time.Now,
		buckets: map[string]*bucket{},
	}
}

// Allow takes one token from the key's bucket, reporting whether one was
// available. Empty keys are always allowed so a missing client address never
// locks the door.
func (t *TokenBucket) Allow(key string) bool {
	if key == "" {
		return true
	}

	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{tokens: t.burst, ts: now}
		t.buckets[key] = b
	} else {
		delta := now.Sub(b.ts).Seconds()
		if delta > 0 {
			b.tokens += delta * t.rate
			if b.tokens > t.burst {
				b.tokens = t.burst
			}
		}
		b.ts = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Reset clears the key's bucket, typically after a successful login.
func (t *TokenBucket) Reset(key string) {
	t.mu.Lock()
	delete(t.buckets, key)
	t.mu.Unlock()
}
