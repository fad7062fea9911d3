// Package gateway is the single entry point to interchangeable AI text
// generation backends. Providers normalize their failures into a small kind
// taxonomy so callers can distinguish per-request problems from account-wide
// ones that should stop a whole batch.
package gateway

import (
	"context"
	"errors"
	"fmt"
)

// Generator is the interface consumed by the translation engine.
type Generator interface {
	// Generate sends a prompt and returns the generated text. maxTokens <= 0
	// means provider default.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Kind classifies a provider failure.
type Kind string

const (
	// KindAPIKeyMissing means no API key is configured.
	KindAPIKeyMissing Kind = "API_KEY_MISSING"
	// KindRateLimit means quota or rate limits were exceeded (HTTP 429).
	KindRateLimit Kind = "RATE_LIMIT"
	// KindAuth means the API key was rejected (HTTP 401/403).
	KindAuth Kind = "AUTH_ERROR"
	// KindBilling means the account has insufficient credit (HTTP 402).
	KindBilling Kind = "BILLING_ERROR"
	// KindServer means the provider is temporarily unavailable (HTTP 5xx).
	KindServer Kind = "SERVER_ERROR"
	// KindNoResponse means the provider answered without usable content.
	KindNoResponse Kind = "NO_RESPONSE"
	// KindSafetyBlock means the content was blocked by safety filters.
	KindSafetyBlock Kind = "SAFETY_BLOCK"
	// KindAPI is any other provider-reported failure.
	KindAPI Kind = "API_ERROR"
)

// Error is a normalized provider failure.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ShouldStopBatch reports whether the failure is assumed account-wide:
// retrying other requests would merely reproduce it, so a running batch
// should abort instead of continuing.
func (e *Error) ShouldStopBatch() bool {
	switch e.Kind {
	case KindRateLimit, KindAuth, KindBilling:
		return true
	}
	return false
}

// Retryable reports whether the same request may succeed if repeated.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindServer, KindNoResponse:
		return true
	}
	return false
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// ShouldStopBatch reports whether err carries an account-wide provider
// failure. Nil and non-gateway errors are per-request.
func ShouldStopBatch(err error) bool {
	if ge, ok := AsError(err); ok {
		return ge.ShouldStopBatch()
	}
	return false
}
