package entitlement

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// TrialDuration is how long the local trial runs from first use.
const TrialDuration = 7 * 24 * time.Hour

// decisionCacheTTL bounds how long a cached decision is reused before the
// trial clock is consulted again.
const decisionCacheTTL = 5 * time.Minute

// LocalTrialGate allows every feature while a locally-anchored trial is
// running and denies once it expires. The start time is supplied by the
// caller (typically persisted on first run); the gate itself keeps no
// storage. Decisions are cached briefly so hot paths do not recompute them.
type LocalTrialGate struct {
	start time.Time
	now   func() time.Time

	mu       sync.Mutex
	cached   *Decision
	cachedAt time.Time
}

// NewLocalTrialGate returns a trial gate anchored at start. A zero start
// means the trial begins now.
func NewLocalTrialGate(start time.Time) *LocalTrialGate {
	g := &LocalTrialGate{start: start, now: time.Now}
	if start.IsZero() {
		g.start = g.now()
	}
	return g
}

// IsAllowed reports whether the trial is still running. The feature name is
// not consulted; a trial covers everything.
func (g *LocalTrialGate) IsAllowed(ctx context.Context, feature string) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cached != nil && g.now().Sub(g.cachedAt) < decisionCacheTTL {
		return *g.cached, nil
	}
	d := g.evaluate()
	g.cached = &d
	g.cachedAt = g.now()
	return d, nil
}

// Invalidate drops the cached decision so the next check re-evaluates.
// Call after anything that could change the licensing state.
func (g *LocalTrialGate) Invalidate() {
	g.mu.Lock()
	g.cached = nil
	g.mu.Unlock()
}

// Remaining returns how much trial time is left, zero once expired.
func (g *LocalTrialGate) Remaining() time.Duration {
	left := TrialDuration - g.now().Sub(g.start)
	if left < 0 {
		return 0
	}
	return left
}

func (g *LocalTrialGate) evaluate() Decision {
	elapsed := g.now().Sub(g.start)
	if elapsed < TrialDuration {
		days := int((TrialDuration-elapsed).Hours()/24) + 1
		return Decision{
			Allowed: true,
			Status:  StatusTrial,
			Message: fmt.Sprintf("trial active, %d day(s) remaining", days),
		}
	}
	return Decision{
		Allowed: false,
		Status:  StatusTrialExpired,
		Message: "trial period has ended",
	}
}

var _ Gate = (*LocalTrialGate)(nil)
