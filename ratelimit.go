package studiolingo

import (
	"context"
	"sync"
	"time"

	"github.com/studiolingo/studiolingo/gateway"
)

// RateLimiter controls the rate of provider requests using a token bucket.
type RateLimiter struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// RateLimitConfig configures the rate limiter.
type RateLimitConfig struct {
	RequestsPerMinute int // Maximum requests per minute
	BurstSize         int // Maximum burst size (default: same as RPM)
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}

	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}

	return &RateLimiter{
		tokens:     burst, // start with a full bucket
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.TryAcquire() {
			return nil
		}

		r.mu.Lock()
		waitTime := time.Duration(float64(time.Second) / r.refillRate)
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// TryAcquire attempts to acquire a token without blocking.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()

	if r.tokens >= 1 {
		r.tokens--
		return true
	}
	return false
}

// refill adds tokens based on elapsed time. Caller holds the lock.
func (r *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(r.lastRefill).Seconds()
	r.lastRefill = now

	r.tokens += elapsed * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
}

// Available returns the current number of available tokens.
func (r *RateLimiter) Available() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refill()
	return r.tokens
}

// RateLimitedGenerator wraps a Generator with client-side rate limiting, so
// a long batch cannot trip the provider's quota mid-run.
type RateLimitedGenerator struct {
	generator gateway.Generator
	limiter   *RateLimiter
}

// NewRateLimitedGenerator creates a new rate-limited generator.
func NewRateLimitedGenerator(gen gateway.Generator, cfg RateLimitConfig) *RateLimitedGenerator {
	return &RateLimitedGenerator{
		generator: gen,
		limiter:   NewRateLimiter(cfg),
	}
}

// Generate implements gateway.Generator with rate limiting.
func (g *RateLimitedGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", &gateway.Error{
			Kind:    gateway.KindAPI,
			Message: "rate limit wait cancelled",
			Cause:   err,
		}
	}
	return g.generator.Generate(ctx, prompt, maxTokens)
}

// Limiter returns the underlying rate limiter for inspection.
func (g *RateLimitedGenerator) Limiter() *RateLimiter {
	return g.limiter
}

// Verify RateLimitedGenerator implements gateway.Generator
var _ gateway.Generator = (*RateLimitedGenerator)(nil)
