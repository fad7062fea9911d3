package studiolingo

import (
	"context"
	"time"

	"github.com/studiolingo/studiolingo/gateway"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry executes a function with exponential backoff. Only transient
// provider failures (server errors, empty responses) are retried; anything
// classified account-wide or permanent returns immediately.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return zero, err
		}

		// No sleep after the last attempt
		if attempt < cfg.MaxRetries {
			delay := cfg.BaseDelay * time.Duration(1<<attempt)
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if ge, ok := gateway.AsError(err); ok {
		return ge.Retryable()
	}
	return false
}

// RetryableGenerator wraps a Generator with retry logic.
type RetryableGenerator struct {
	generator gateway.Generator
	config    RetryConfig
}

// NewRetryableGenerator creates a generator that retries transient failures.
func NewRetryableGenerator(gen gateway.Generator, cfg RetryConfig) *RetryableGenerator {
	return &RetryableGenerator{
		generator: gen,
		config:    cfg,
	}
}

// Generate implements gateway.Generator with retry logic.
func (g *RetryableGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return WithRetry(ctx, g.config, func() (string, error) {
		return g.generator.Generate(ctx, prompt, maxTokens)
	})
}

// Verify RetryableGenerator implements gateway.Generator
var _ gateway.Generator = (*RetryableGenerator)(nil)
