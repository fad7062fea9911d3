package studiolingo

import (
	"context"
	"testing"
	"time"

	"github.com/studiolingo/studiolingo/gateway"
)

func TestRateLimiterBurst(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 60, BurstSize: 3})

	for i := 0; i < 3; i++ {
		if !r.TryAcquire() {
			t.Fatalf("acquire %d should succeed within burst", i)
		}
	}
	if r.TryAcquire() {
		t.Error("acquire past burst should fail")
	}
}

func TestRateLimiterRefill(t *testing.T) {
	// 6000 rpm = 100 tokens/sec, so a drained bucket recovers quickly.
	r := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 6000, BurstSize: 1})

	if !r.TryAcquire() {
		t.Fatal("first acquire should succeed")
	}
	if r.TryAcquire() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(50 * time.Millisecond)
	if !r.TryAcquire() {
		t.Error("bucket should have refilled")
	}
}

func TestRateLimiterDefaults(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{})
	if got := r.Available(); got < 59 || got > 60 {
		t.Errorf("Available = %f, want a full default bucket", got)
	}
}

func TestRateLimiterWaitCancelled(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})
	if !r.TryAcquire() {
		t.Fatal("first acquire should succeed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := r.Wait(ctx); err == nil {
		t.Error("Wait should fail once the context expires")
	}
}

func TestRateLimitedGenerator(t *testing.T) {
	gen := &gateway.MockGenerator{Response: "ok"}
	rg := NewRateLimitedGenerator(gen, RateLimitConfig{RequestsPerMinute: 6000})

	result, err := rg.Generate(context.Background(), "prompt", 50)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q", result)
	}
	if rg.Limiter() == nil {
		t.Error("Limiter() should expose the bucket")
	}
}

func TestRateLimitedGeneratorCancelledWait(t *testing.T) {
	gen := &gateway.MockGenerator{Response: "ok"}
	rg := NewRateLimitedGenerator(gen, RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})

	// Drain the bucket, then cancel during the wait.
	if _, err := rg.Generate(context.Background(), "p", 10); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := rg.Generate(ctx, "p", 10)
	gerr, ok := gateway.AsError(err)
	if !ok {
		t.Fatalf("expected gateway.Error, got %v", err)
	}
	if gerr.Kind != gateway.KindAPI {
		t.Errorf("Kind = %q", gerr.Kind)
	}
	if gen.CallCount != 1 {
		t.Errorf("CallCount = %d, want 1 (second call never dispatched)", gen.CallCount)
	}
}
