package studiolingo

import (
	"context"
	"time"
)

// TimingConfig groups every delay and timeout the engine uses against the
// host page. The page renders asynchronously, so each mutating action is
// followed by a settle delay, and each lookup polls up to a timeout. Tests
// shrink these to microseconds; production uses the defaults, which come
// from observed render latencies of the host UI.
type TimingConfig struct {
	// PollInterval is how often lookups re-snapshot the page.
	PollInterval time.Duration

	// LocateTimeout bounds a single control lookup.
	LocateTimeout time.Duration

	// SettleDelay follows ordinary UI-mutating actions.
	SettleDelay time.Duration

	// PickerOpenDelay follows opening the language picker.
	PickerOpenDelay time.Duration

	// RowAppearDelay follows selecting a language, while its table row
	// renders.
	RowAppearDelay time.Duration

	// DialogOpenDelay follows clicking a row's edit control, while the
	// metadata dialog renders.
	DialogOpenDelay time.Duration

	// HoverRevealDelay follows the hover sequence that exposes a row's
	// edit icon.
	HoverRevealDelay time.Duration

	// CompletionTimeout bounds the wait for the host page's completion
	// banner. Elapsing is a warning, not a failure.
	CompletionTimeout time.Duration

	// InterJobDelay separates consecutive languages in a batch.
	InterJobDelay time.Duration

	// PauseCheckInterval is how often a paused batch re-checks for
	// resume or stop.
	PauseCheckInterval time.Duration
}

// DefaultTimingConfig returns production timings.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		PollInterval:       100 * time.Millisecond,
		LocateTimeout:      5 * time.Second,
		SettleDelay:        1500 * time.Millisecond,
		PickerOpenDelay:    1 * time.Second,
		RowAppearDelay:     3 * time.Second,
		DialogOpenDelay:    2 * time.Second,
		HoverRevealDelay:   1 * time.Second,
		CompletionTimeout:  30 * time.Second,
		InterJobDelay:      2 * time.Second,
		PauseCheckInterval: 500 * time.Millisecond,
	}
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
