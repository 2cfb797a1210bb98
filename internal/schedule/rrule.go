package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/instant"
)

// rruleWeekdays is indexed by time.Weekday.
var rruleWeekdays = []rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// RecurrenceOption returns the RFC 5545 recurrence of e starting at
// dtstart. Every BY* field is pinned so the rule does not inherit the time
// of day from dtstart.
func RecurrenceOption(e expr.Expression, dtstart time.Time) (rrule.ROption, error) {
	midnight := func(o rrule.ROption) rrule.ROption {
		o.Byhour, o.Byminute, o.Bysecond = []int{0}, []int{0}, []int{0}
		return o
	}
	clock := func(o rrule.ROption, t expr.ExactTime) rrule.ROption {
		o.Byhour, o.Byminute, o.Bysecond = []int{t.Hour}, []int{t.Minute}, []int{t.Second}
		return o
	}

	switch v := e.(type) {
	case expr.Weekday:
		return midnight(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   dtstart,
			Byweekday: []rrule.Weekday{rruleWeekdays[v]},
		}), nil
	case expr.Month:
		return midnight(rrule.ROption{
			Freq:       rrule.YEARLY,
			Dtstart:    dtstart,
			Bymonth:    []int{int(v)},
			Bymonthday: []int{1},
		}), nil
	case expr.ExactTime:
		return clock(rrule.ROption{Freq: rrule.DAILY, Dtstart: dtstart}, v), nil
	case expr.ExactDate:
		if v.HasYear {
			break
		}
		return midnight(rrule.ROption{
			Freq:       rrule.YEARLY,
			Dtstart:    dtstart,
			Bymonth:    []int{v.Month},
			Bymonthday: []int{v.Day},
		}), nil
	case expr.ExactDateTime:
		if v.Date.HasYear {
			break
		}
		return clock(rrule.ROption{
			Freq:       rrule.YEARLY,
			Dtstart:    dtstart,
			Bymonth:    []int{v.Date.Month},
			Bymonthday: []int{v.Date.Day},
		}, v.Time), nil
	}
	return rrule.ROption{}, fmt.Errorf("%s: %w", e, ErrNotRecurring)
}

// RRule builds the recurrence rule of e starting at dtstart.
func RRule(e expr.Expression, dtstart time.Time) (*rrule.RRule, error) {
	opt, err := RecurrenceOption(e, dtstart)
	if err != nil {
		return nil, err
	}
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("build rrule for %s: %w", e, err)
	}
	return r, nil
}

// Occurrences returns the next n ranges of e. The first equals
// res.Resolve(e, ref); the rest follow the recurrence. Expressions
// without a recurrence return just the first range.
func Occurrences(res expr.Resolver, e expr.Expression, ref time.Time, n int) ([]expr.Range, error) {
	if n <= 0 {
		return nil, nil
	}
	first := res.Resolve(e, ref)

	r, err := RRule(e, first.Min)
	if errors.Is(err, ErrNotRecurring) {
		return []expr.Range{first}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]expr.Range, 0, n)
	next := r.Iterator()
	for len(out) < n {
		start, ok := next()
		if !ok {
			break
		}
		out = append(out, expr.Range{Min: start, Max: SpanEnd(e, start)})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", e, ErrNoOccurrence)
	}
	return out, nil
}

// SpanEnd returns the Max of the occurrence of e that starts at start.
// Precise expressions end where they start.
func SpanEnd(e expr.Expression, start time.Time) time.Time {
	switch e.(type) {
	case expr.Month:
		return start.AddDate(0, 1, 0)
	case expr.Weekday, expr.ExactDate:
		return instant.AddDays(start, 1)
	}
	return start
}
