package schedule

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/CodexForgeBR/reltime/internal/logging"
)

// Waiter blocks until a resolved instant, printing a countdown.
type Waiter struct {
	// Progress receives countdown lines. Nil discards them.
	Progress io.Writer
	// Label names what is being waited for, usually the expression text.
	Label string
}

// WaitUntil waits silently until target.
func WaitUntil(ctx context.Context, target time.Time) error {
	return Waiter{}.Wait(ctx, target)
}

// Wait blocks until target. It returns immediately if target is not in
// the future and returns ctx.Err() if ctx ends first.
// Uses adaptive intervals: >1h=60s, >10min=30s, >1min=10s, <1min=1s.
func (w Waiter) Wait(ctx context.Context, target time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	remaining := time.Until(target)
	if remaining <= 0 {
		return nil
	}

	w.printf("Waiting for %s until %s (%s remaining)\n", w.label(), target.Format(time.RFC3339), format(remaining))

	for {
		remaining = time.Until(target)
		if remaining <= 0 {
			return nil
		}

		// Don't sleep longer than remaining time
		interval := min(adaptiveInterval(remaining), remaining)

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			remaining = time.Until(target)
			if remaining <= 0 {
				return nil
			}
			w.printf("  ... %s remaining\n", format(remaining))
		}
	}
}

func (w Waiter) label() string {
	if w.Label == "" {
		return "target"
	}
	return w.Label
}

func (w Waiter) printf(f string, args ...any) {
	if w.Progress == nil {
		return
	}
	fmt.Fprintf(w.Progress, f, args...)
}

func format(d time.Duration) string {
	return logging.FormatDuration(int(d.Round(time.Second) / time.Second))
}

// adaptiveInterval returns the countdown display interval based on remaining time.
func adaptiveInterval(remaining time.Duration) time.Duration {
	switch {
	case remaining > time.Hour:
		return 60 * time.Second
	case remaining > 10*time.Minute:
		return 30 * time.Second
	case remaining > time.Minute:
		return 10 * time.Second
	default:
		return 1 * time.Second
	}
}
