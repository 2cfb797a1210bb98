package expr

import (
	"fmt"
	"time"

	"github.com/CodexForgeBR/reltime/internal/instant"
)

// searchYears bounds the year-less date search. 29/2 needs at most eight
// years; the rest guards against hand-built invalid dates.
const searchYears = 400

// Range is the span an expression can denote. For windows Max is the
// exclusive end; for precise expressions Min == Max.
type Range struct {
	Min time.Time
	Max time.Time
}

// Precise reports whether the range is a single instant.
func (r Range) Precise() bool {
	return r.Min.Equal(r.Max)
}

// Contains reports whether t falls in [Min, Max), or equals Min for a
// precise range.
func (r Range) Contains(t time.Time) bool {
	if r.Precise() {
		return t.Equal(r.Min)
	}
	return !t.Before(r.Min) && t.Before(r.Max)
}

// Duration is Max - Min.
func (r Range) Duration() time.Duration {
	return r.Max.Sub(r.Min)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Min.Format(time.RFC3339), r.Max.Format(time.RFC3339))
}

// Policy selects how a recurring expression treats the reference day
// itself. The zero value counts the current day, month and date.
type Policy struct {
	// SkipSameWeekday makes "Tuesday" on a Tuesday mean next week's.
	SkipSameWeekday bool
	// SkipCurrentMonth makes "July" in July mean next year's.
	SkipCurrentMonth bool
	// SkipSameDate makes "29/7" on 29 July mean next year's.
	SkipSameDate bool
}

// DefaultPolicy is used by Resolve.
var DefaultPolicy = Policy{}

// Resolver resolves expressions under a fixed Policy. The zero value uses
// DefaultPolicy.
type Resolver struct {
	Policy Policy
}

// Resolve maps e to its range relative to ref. Relative variants use ref's
// location; timestamps keep their own.
func (r Resolver) Resolve(e Expression, ref time.Time) Range {
	return e.resolve(ref, r.Policy)
}

// Resolve uses DefaultPolicy.
func Resolve(e Expression, ref time.Time) Range {
	return Resolver{Policy: DefaultPolicy}.Resolve(e, ref)
}

// Min is Resolve(e, ref).Min.
func Min(e Expression, ref time.Time) time.Time {
	return Resolve(e, ref).Min
}

// Max is Resolve(e, ref).Max.
func Max(e Expression, ref time.Time) time.Time {
	return Resolve(e, ref).Max
}

func dayRange(day time.Time) Range {
	return Range{Min: day, Max: instant.AddDays(day, 1)}
}

// nextMonday returns the first Monday strictly after day.
func nextMonday(day time.Time) time.Time {
	iso := (int(day.Weekday())+6)%7 + 1 // Monday=1 … Sunday=7
	return instant.AddDays(day, 8-iso)
}

func (r Relative) resolve(ref time.Time, _ Policy) Range {
	day := instant.StartOfDay(ref)
	switch r {
	case Today:
		return dayRange(day)
	case Tomorrow:
		return dayRange(instant.AddDays(day, 1))
	case Now:
		return Range{Min: ref, Max: ref}
	case ThisWeek:
		return Range{Min: day, Max: nextMonday(day)}
	case NextWeek:
		start := nextMonday(day)
		return Range{Min: start, Max: instant.AddDays(start, 7)}
	case ThisMonth:
		next := time.Date(day.Year(), day.Month()+1, 1, 0, 0, 0, 0, day.Location())
		return Range{Min: day, Max: next}
	}
	panic(fmt.Sprintf("expr: unknown relative keyword %d", int(r)))
}

func (w Weekday) resolve(ref time.Time, p Policy) Range {
	ahead := (int(w) - int(ref.Weekday()) + 7) % 7
	if ahead == 0 && p.SkipSameWeekday {
		ahead = 7
	}
	return dayRange(instant.AddDays(instant.StartOfDay(ref), ahead))
}

func (m Month) resolve(ref time.Time, p Policy) Range {
	ahead := (int(m) - int(ref.Month()) + 12) % 12
	if ahead == 0 && p.SkipCurrentMonth {
		ahead = 12
	}
	start := time.Date(ref.Year(), ref.Month()+time.Month(ahead), 1, 0, 0, 0, 0, ref.Location())
	return Range{Min: start, Max: start.AddDate(0, 1, 0)}
}

func (t ExactTime) resolve(ref time.Time, _ Policy) Range {
	at := t.on(ref)
	if at.Before(ref) {
		at = instant.AddDays(at, 1)
	}
	return Range{Min: at, Max: at}
}

// on places the time of day on day's calendar date.
func (t ExactTime) on(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, t.Second, 0, day.Location())
}

func (d ExactDate) resolve(ref time.Time, p Policy) Range {
	if d.HasYear {
		return dayRange(d.in(d.Year, ref.Location()))
	}

	today := instant.StartOfDay(ref)
	for year := ref.Year(); year < ref.Year()+searchYears; year++ {
		if !d.validIn(year) {
			continue
		}
		c := d.in(year, ref.Location())
		if c.Before(today) || (p.SkipSameDate && c.Equal(today)) {
			continue
		}
		return dayRange(c)
	}
	// Unreachable for validated dates.
	return dayRange(d.in(ref.Year()+1, ref.Location()))
}

func (d ExactDate) in(year int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func (dt ExactDateTime) resolve(ref time.Time, _ Policy) Range {
	if dt.Date.HasYear {
		at := dt.Time.on(dt.Date.in(dt.Date.Year, ref.Location()))
		return Range{Min: at, Max: at}
	}

	for year := ref.Year(); year < ref.Year()+searchYears; year++ {
		if !dt.Date.validIn(year) {
			continue
		}
		at := dt.Time.on(dt.Date.in(year, ref.Location()))
		if at.Before(ref) {
			continue
		}
		return Range{Min: at, Max: at}
	}
	at := dt.Time.on(dt.Date.in(ref.Year()+1, ref.Location()))
	return Range{Min: at, Max: at}
}

func (ts Timestamp) resolve(time.Time, Policy) Range {
	return Range{Min: ts.Time, Max: ts.Time}
}
