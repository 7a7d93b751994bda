// pkg/input/rate_limiter.go
package input

import (
	"sync"
	"time"
)

// RateLimiter implements a token bucket limiter per controller. It debounces
// repeated input events, most importantly held-down target cycling keys.
type RateLimiter struct {
	maxEvents   int
	window      time.Duration
	controllers map[string]*bucket
	mu          sync.Mutex
	now         func() time.Time
}

// bucket tracks limiter state for a single controller
type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter allowing maxEvents per window
func NewRateLimiter(maxEvents int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxEvents:   maxEvents,
		window:      window,
		controllers: make(map[string]*bucket),
		now:         time.Now,
	}
}

// Allow reports whether an event should be accepted for the controller
func (rl *RateLimiter) Allow(controller string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.controllers[controller]
	if !ok {
		b = &bucket{tokens: rl.maxEvents, lastRefill: now}
		rl.controllers[controller] = b
	}

	// Refill proportionally to the fraction of the window that has passed.
	elapsed := now.Sub(b.lastRefill)
	if elapsed > 0 && b.tokens < rl.maxEvents {
		refill := int(float64(rl.maxEvents) * float64(elapsed) / float64(rl.window))
		if refill > 0 {
			b.tokens += refill
			if b.tokens > rl.maxEvents {
				b.tokens = rl.maxEvents
			}
			b.lastRefill = now
		}
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}
