// Package entitlement decides whether premium features may run. The engine
// consults a Gate exactly once per batch start, never per language, so a
// slow or remote gate cannot throttle a running batch.
package entitlement

import "context"

// Status describes the licensing state behind a decision.
type Status string

const (
	StatusValid        Status = "valid"
	StatusTrial        Status = "trial"
	StatusTrialExpired Status = "trial_expired"
	StatusExpired      Status = "expired"
	StatusInvalid      Status = "invalid"
	StatusNotActivated Status = "not_activated"
)

// Decision is the outcome of an entitlement check. Message is suitable for
// showing to the user when Allowed is false.
type Decision struct {
	Allowed bool
	Status  Status
	Message string
}

// Gate answers whether a named feature may run.
type Gate interface {
	IsAllowed(ctx context.Context, feature string) (Decision, error)
}

// StaticGate always returns the same decision. Useful in tests and in
// builds with licensing disabled.
type StaticGate struct {
	Decision Decision
}

// NewStaticGate returns a gate that always allows or always denies.
func NewStaticGate(allowed bool) *StaticGate {
	d := Decision{Allowed: allowed, Status: StatusValid}
	if !allowed {
		d.Status = StatusNotActivated
		d.Message = "feature requires an active license"
	}
	return &StaticGate{Decision: d}
}

func (g *StaticGate) IsAllowed(ctx context.Context, feature string) (Decision, error) {
	return g.Decision, nil
}

var _ Gate = (*StaticGate)(nil)
