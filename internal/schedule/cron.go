// Package schedule projects recurring expressions onto the scheduling
// formats other tools speak (cron specs, Quartz specs, RRULEs) and waits
// for resolved instants.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/CodexForgeBR/reltime/internal/expr"
)

var (
	// ErrNotRecurring is returned for expressions with no fixed recurrence
	// in the requested format.
	ErrNotRecurring = errors.New("expression has no fixed recurrence")
	// ErrNoOccurrence is returned when a schedule finds no fire time within
	// its search horizon.
	ErrNoOccurrence = errors.New("no occurrence found")
)

// cronParser accepts standard five-field specs and an optional leading
// seconds field.
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// CronSpec returns the cron spec that fires at the start of every
// occurrence of e. Only weekdays, months, times of day and year-less dates
// and date-times have one.
func CronSpec(e expr.Expression) (string, error) {
	switch v := e.(type) {
	case expr.Weekday:
		return fmt.Sprintf("0 0 * * %d", int(v)), nil
	case expr.Month:
		return fmt.Sprintf("0 0 1 %d *", int(v)), nil
	case expr.ExactTime:
		return clockSpec(v, "* * *"), nil
	case expr.ExactDate:
		if v.HasYear {
			break
		}
		return fmt.Sprintf("0 0 %d %d *", v.Day, v.Month), nil
	case expr.ExactDateTime:
		if v.Date.HasYear {
			break
		}
		return clockSpec(v.Time, fmt.Sprintf("%d %d *", v.Date.Day, v.Date.Month)), nil
	}
	return "", fmt.Errorf("%s: %w", e, ErrNotRecurring)
}

func clockSpec(t expr.ExactTime, rest string) string {
	if t.HasSecond {
		return fmt.Sprintf("%d %d %d %s", t.Second, t.Minute, t.Hour, rest)
	}
	return fmt.Sprintf("%d %d %s", t.Minute, t.Hour, rest)
}

// ParseCron parses a spec in the syntax CronSpec produces.
func ParseCron(spec string) (cron.Schedule, error) {
	s, err := cronParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}
	return s, nil
}

// NextAfter returns the first start of an occurrence of e strictly after
// after, evaluated in after's location.
func NextAfter(e expr.Expression, after time.Time) (time.Time, error) {
	spec, err := CronSpec(e)
	if err != nil {
		return time.Time{}, err
	}
	s, err := ParseCron(spec)
	if err != nil {
		return time.Time{}, err
	}
	next := s.Next(after)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("%s after %s: %w", e, after.Format(time.RFC3339), ErrNoOccurrence)
	}
	return next, nil
}

// NextFunc finds the first fire time of e strictly after a given instant.
// NextAfter and NextFire are NextFuncs.
type NextFunc func(e expr.Expression, after time.Time) (time.Time, error)

// FireTimes collects up to n successive fire times of e, starting at from
// inclusive. It stops early, without error, once a schedule runs out after
// at least one fire time.
func FireTimes(next NextFunc, e expr.Expression, from time.Time, n int) ([]time.Time, error) {
	out := make([]time.Time, 0, max(n, 0))
	after := from.Add(-time.Nanosecond)
	for len(out) < n {
		t, err := next(e, after)
		if err != nil {
			if errors.Is(err, ErrNoOccurrence) && len(out) > 0 {
				break
			}
			return nil, err
		}
		out = append(out, t)
		after = t
	}
	return out, nil
}
