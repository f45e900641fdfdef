package nasa

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"cosmiccanvas/server/internal/config"
)

// DefaultRateLimit is the QPS against the NASA API with a personal
// key. DemoRateLimit is used with the shared DEMO_KEY, whose hourly
// quota is a fraction of a personal one.
const (
	DefaultRateLimit = 2
	DemoRateLimit    = 1
)

// LimitForKey picks the QPS for the given API key.
func LimitForKey(key string) int {
	if key == "" || key == config.DefaultNasaAPIKey {
		return DemoRateLimit
	}
	return DefaultRateLimit
}

// RateLimiter provides global rate limiting for NASA API calls.
type RateLimiter struct {
	limiter *rate.Limiter
	mu      sync.RWMutex
}

// NewRateLimiter creates a new rate limiter with the given QPS.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), qps), // burst = qps
	}
}

// Wait blocks until a token is available or context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.RLock()
	limiter := r.limiter
	r.mu.RUnlock()
	return limiter.Wait(ctx)
}

// Limit reports the current QPS.
func (r *RateLimiter) Limit() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int(r.limiter.Limit())
}

// SetLimit updates the rate limit dynamically.
func (r *RateLimiter) SetLimit(qps int) {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	r.mu.Lock()
	r.limiter.SetLimit(rate.Limit(qps))
	r.limiter.SetBurst(qps)
	r.mu.Unlock()
}
