package entitlement

import (
	"context"
	"testing"
	"time"
)

func TestStaticGate(t *testing.T) {
	ctx := context.Background()

	allow := NewStaticGate(true)
	d, err := allow.IsAllowed(ctx, "anything")
	if err != nil {
		t.Fatalf("IsAllowed failed: %v", err)
	}
	if !d.Allowed || d.Status != StatusValid {
		t.Errorf("decision = %+v", d)
	}

	deny := NewStaticGate(false)
	d, err = deny.IsAllowed(ctx, "anything")
	if err != nil {
		t.Fatalf("IsAllowed failed: %v", err)
	}
	if d.Allowed {
		t.Error("deny gate should deny")
	}
	if d.Status != StatusNotActivated {
		t.Errorf("Status = %q", d.Status)
	}
	if d.Message == "" {
		t.Error("denial should carry a user-facing message")
	}
}

func TestLocalTrialGateActive(t *testing.T) {
	g := NewLocalTrialGate(time.Now().Add(-24 * time.Hour))

	d, err := g.IsAllowed(context.Background(), "multiLangTranslate")
	if err != nil {
		t.Fatalf("IsAllowed failed: %v", err)
	}
	if !d.Allowed || d.Status != StatusTrial {
		t.Errorf("decision = %+v", d)
	}
	if g.Remaining() <= 0 {
		t.Error("trial should have time remaining")
	}
}

func TestLocalTrialGateExpired(t *testing.T) {
	g := NewLocalTrialGate(time.Now().Add(-8 * 24 * time.Hour))

	d, err := g.IsAllowed(context.Background(), "multiLangTranslate")
	if err != nil {
		t.Fatalf("IsAllowed failed: %v", err)
	}
	if d.Allowed {
		t.Error("expired trial should deny")
	}
	if d.Status != StatusTrialExpired {
		t.Errorf("Status = %q", d.Status)
	}
	if g.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", g.Remaining())
	}
}

func TestLocalTrialGateCachesDecision(t *testing.T) {
	// Trial ends in one minute.
	now := time.Now()
	g := NewLocalTrialGate(now.Add(-TrialDuration + time.Minute))
	g.now = func() time.Time { return now }

	d, err := g.IsAllowed(context.Background(), "f")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Allowed {
		t.Fatal("trial with a minute left should allow")
	}

	// Move past the trial end but stay within the decision cache window:
	// the stale cached allow is still served.
	now = now.Add(2 * time.Minute)
	d, err = g.IsAllowed(context.Background(), "f")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Allowed {
		t.Error("cached decision should still be served inside the cache TTL")
	}

	// Invalidate forces re-evaluation.
	g.Invalidate()
	d, err = g.IsAllowed(context.Background(), "f")
	if err != nil {
		t.Fatal(err)
	}
	if d.Allowed {
		t.Error("after Invalidate the expired trial should deny")
	}
}

func TestLocalTrialGateZeroStart(t *testing.T) {
	g := NewLocalTrialGate(time.Time{})
	d, err := g.IsAllowed(context.Background(), "f")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Allowed {
		t.Error("a fresh trial should allow")
	}
}

func TestLocalTrialGateCancelledContext(t *testing.T) {
	g := NewLocalTrialGate(time.Time{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.IsAllowed(ctx, "f"); err == nil {
		t.Error("cancelled context should surface")
	}
}
