package schedule

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitUntil_PastTime(t *testing.T) {
	// Should return immediately for past times
	past := time.Now().Add(-1 * time.Hour)

	start := time.Now()
	err := WaitUntil(context.Background(), past)
	duration := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, duration, 100*time.Millisecond, "should return immediately for past time")
}

func TestWaitUntil_FutureTime(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping wait test in short mode")
	}

	target := time.Now().Add(500 * time.Millisecond)

	start := time.Now()
	err := WaitUntil(context.Background(), target)
	duration := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, duration, 450*time.Millisecond, "should wait at least 450ms")
	assert.Less(t, duration, 900*time.Millisecond, "should not overshoot")
}

func TestWaitUntil_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	target := time.Now().Add(10 * time.Second)

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := WaitUntil(ctx, target)
	duration := time.Since(start)

	assert.Equal(t, context.Canceled, err)
	assert.Less(t, duration, 1*time.Second, "should cancel quickly")
}

func TestWaitUntil_ContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := WaitUntil(ctx, time.Now().Add(10*time.Second))
	duration := time.Since(start)

	assert.Equal(t, context.DeadlineExceeded, err)
	assert.GreaterOrEqual(t, duration, 200*time.Millisecond)
	assert.Less(t, duration, 700*time.Millisecond)
}

func TestWaitUntil_CancelledContext(t *testing.T) {
	// An already-cancelled context wins even over a past target.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, context.Canceled, WaitUntil(ctx, time.Now().Add(10*time.Second)))
	assert.Equal(t, context.Canceled, WaitUntil(ctx, time.Now().Add(-time.Second)))
}

func TestWaitUntil_IntervalClamping(t *testing.T) {
	// The adaptive interval (1s) is longer than the 200ms remaining, so
	// the sleep must be clamped to the remaining time.
	target := time.Now().Add(200 * time.Millisecond)
	start := time.Now()
	require.NoError(t, WaitUntil(context.Background(), target))
	assert.Less(t, time.Since(start), 600*time.Millisecond, "should clamp interval to remaining time")
}

func TestWaiter_PrintsCountdownHeader(t *testing.T) {
	var buf bytes.Buffer
	w := Waiter{Progress: &buf, Label: "14:30"}

	target := time.Now().Add(50 * time.Millisecond)
	require.NoError(t, w.Wait(context.Background(), target))

	assert.Contains(t, buf.String(), "Waiting for 14:30 until "+target.Format(time.RFC3339))
	assert.Contains(t, buf.String(), "remaining")
}

func TestWaiter_SilentForPastTarget(t *testing.T) {
	var buf bytes.Buffer
	w := Waiter{Progress: &buf}
	require.NoError(t, w.Wait(context.Background(), time.Now().Add(-time.Minute)))
	assert.Empty(t, buf.String())
}

func TestWaiter_DefaultLabel(t *testing.T) {
	assert.Equal(t, "target", Waiter{}.label())
	assert.Equal(t, "Monday", Waiter{Label: "Monday"}.label())
}

// ---------------------------------------------------------------------------
// adaptiveInterval boundary tests
// ---------------------------------------------------------------------------

func TestAdaptiveInterval(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		expected  time.Duration
	}{
		{"over one hour", 2 * time.Hour, 60 * time.Second},
		// Exactly 1h is NOT > 1h, so falls to >10min bracket
		{"exactly one hour", time.Hour, 30 * time.Second},
		{"over ten minutes", 30 * time.Minute, 30 * time.Second},
		{"exactly ten minutes", 10 * time.Minute, 10 * time.Second},
		{"over one minute", 5 * time.Minute, 10 * time.Second},
		{"exactly one minute", time.Minute, time.Second},
		{"under one minute", 30 * time.Second, time.Second},
		{"very small", 100 * time.Millisecond, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adaptiveInterval(tt.remaining))
		})
	}
}
