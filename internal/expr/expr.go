// Package expr is the closed set of time expressions reltime understands
// and the rules that resolve them against a reference instant.
//
// Expression has an unexported method, so the variants below are the only
// implementations. Each one carries its own resolution and formatting;
// adding a variant without them does not compile.
package expr

import (
	"fmt"
	"time"

	"github.com/CodexForgeBR/reltime/internal/instant"
	"github.com/CodexForgeBR/reltime/internal/locale"
)

// Expression is a parsed time expression.
type Expression interface {
	// String returns the natural surface form, which parses back to an
	// equal Expression.
	String() string
	// Recurring reports whether the meaning depends on the reference instant.
	Recurring() bool
	// Precise reports whether the expression denotes a single instant.
	Precise() bool

	resolve(ref time.Time, p Policy) Range
}

// Relative is a keyword anchored to the reference instant's calendar date.
type Relative int

const (
	Today Relative = iota + 1
	Tomorrow
	Now
	ThisWeek
	NextWeek
	ThisMonth
)

var relativeTokens = map[Relative]locale.Token{
	Today:     locale.Today,
	Tomorrow:  locale.Tomorrow,
	Now:       locale.Now,
	ThisWeek:  locale.ThisWeek,
	NextWeek:  locale.NextWeek,
	ThisMonth: locale.ThisMonth,
}

func (r Relative) String() string {
	if tok, ok := relativeTokens[r]; ok {
		return tok.String()
	}
	return fmt.Sprintf("Relative(%d)", int(r))
}

func (r Relative) Recurring() bool { return true }
func (r Relative) Precise() bool   { return r == Now }

// Weekday is a named day of the week, recurring weekly.
type Weekday time.Weekday

func (w Weekday) String() string  { return time.Weekday(w).String() }
func (w Weekday) Recurring() bool { return true }
func (w Weekday) Precise() bool   { return false }

// Month is a named month, recurring annually.
type Month time.Month

func (m Month) String() string  { return time.Month(m).String() }
func (m Month) Recurring() bool { return true }
func (m Month) Precise() bool   { return false }

// ExactTime is a time of day, recurring daily.
type ExactTime struct {
	Hour   int
	Minute int
	Second int
	// HasSecond records whether seconds were written, so the surface form
	// round-trips.
	HasSecond bool
}

// NewTime builds a validated HH:MM time.
func NewTime(hour, minute int) (ExactTime, error) {
	t := ExactTime{Hour: hour, Minute: minute}
	return t, t.Validate()
}

// NewTimeWithSecond builds a validated HH:MM:SS time.
func NewTimeWithSecond(hour, minute, second int) (ExactTime, error) {
	t := ExactTime{Hour: hour, Minute: minute, Second: second, HasSecond: true}
	return t, t.Validate()
}

// Validate checks the clock fields.
func (t ExactTime) Validate() error {
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTimeOfDay, t.Hour, t.Minute, t.Second)
	}
	if !t.HasSecond && t.Second != 0 {
		return fmt.Errorf("%w: seconds set without HasSecond", ErrInvalidTimeOfDay)
	}
	return nil
}

func (t ExactTime) String() string {
	if t.HasSecond {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t ExactTime) Recurring() bool { return true }
func (t ExactTime) Precise() bool   { return true }

// ExactDate is a calendar date. Without a year it recurs annually.
type ExactDate struct {
	Day     int
	Month   int
	Year    int
	HasYear bool
}

// NewDate builds a validated year-less date. 29/2 is accepted.
func NewDate(day, month int) (ExactDate, error) {
	d := ExactDate{Day: day, Month: month}
	return d, d.Validate()
}

// NewDateInYear builds a validated date in a specific year.
func NewDateInYear(day, month, year int) (ExactDate, error) {
	d := ExactDate{Day: day, Month: month, Year: year, HasYear: true}
	return d, d.Validate()
}

// Validate checks the date against the Gregorian calendar. A year-less
// date is valid if it exists in some year, so 29/2 passes.
func (d ExactDate) Validate() error {
	if d.HasYear && (d.Year < 1 || d.Year > 9999) {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidCalendarDate, d.Year)
	}
	if !d.HasYear && d.Year != 0 {
		return fmt.Errorf("%w: year set without HasYear", ErrInvalidCalendarDate)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: %s", ErrInvalidCalendarDate, d)
	}
	year := 2000 // leap year
	if d.HasYear {
		year = d.Year
	}
	if d.Day < 1 || d.Day > instant.DaysIn(time.Month(d.Month), year) {
		return fmt.Errorf("%w: %s", ErrInvalidCalendarDate, d)
	}
	return nil
}

// validIn reports whether the day/month exists in year.
func (d ExactDate) validIn(year int) bool {
	return d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= instant.DaysIn(time.Month(d.Month), year)
}

func (d ExactDate) String() string {
	if d.HasYear {
		return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
	}
	return fmt.Sprintf("%d/%d", d.Day, d.Month)
}

func (d ExactDate) Recurring() bool { return !d.HasYear }
func (d ExactDate) Precise() bool   { return false }

// ExactDateTime is a date with a time of day.
type ExactDateTime struct {
	Date ExactDate
	Time ExactTime
}

// NewDateTime combines a date and a time, validating both.
func NewDateTime(date ExactDate, clock ExactTime) (ExactDateTime, error) {
	dt := ExactDateTime{Date: date, Time: clock}
	return dt, dt.Validate()
}

// Validate checks both halves.
func (dt ExactDateTime) Validate() error {
	if err := dt.Date.Validate(); err != nil {
		return err
	}
	return dt.Time.Validate()
}

func (dt ExactDateTime) String() string {
	return dt.Date.String() + " " + dt.Time.String()
}

func (dt ExactDateTime) Recurring() bool { return !dt.Date.HasYear }
func (dt ExactDateTime) Precise() bool   { return true }

// Timestamp is an absolute RFC 3339 instant. It keeps its own offset; the
// parser places it in instant.Zone, so equal text yields == values.
type Timestamp struct {
	Time time.Time
}

func (ts Timestamp) String() string  { return ts.Time.Format(time.RFC3339Nano) }
func (ts Timestamp) Recurring() bool { return false }
func (ts Timestamp) Precise() bool   { return true }

// FromToken converts a locale keyword to its expression.
func FromToken(tok locale.Token) (Expression, bool) {
	switch tok.Kind() {
	case locale.KindRelative:
		for r, t := range relativeTokens {
			if t == tok {
				return r, true
			}
		}
	case locale.KindWeekday:
		d, _ := tok.Weekday()
		return Weekday(d), true
	case locale.KindMonth:
		m, _ := tok.Month()
		return Month(m), true
	}
	return nil, false
}

// TokenOf returns the keyword behind keyword variants. ok is false for
// numeric and timestamp expressions.
func TokenOf(e Expression) (locale.Token, bool) {
	switch v := e.(type) {
	case Relative:
		tok, ok := relativeTokens[v]
		return tok, ok
	case Weekday:
		return locale.WeekdayToken(time.Weekday(v)), true
	case Month:
		return locale.MonthToken(time.Month(v)), true
	}
	return 0, false
}

// Localize renders e in the table's language. Numeric forms and timestamps
// are the same in every language.
func Localize(e Expression, t *locale.Table) string {
	if tok, ok := TokenOf(e); ok && t != nil {
		return t.Spelling(tok)
	}
	return e.String()
}

// KindOf names e's variant.
func KindOf(e Expression) string {
	switch e.(type) {
	case Relative:
		return "Relative"
	case Weekday:
		return "Weekday"
	case Month:
		return "Month"
	case ExactTime:
		return "ExactTime"
	case ExactDate:
		return "ExactDate"
	case ExactDateTime:
		return "ExactDateTime"
	case Timestamp:
		return "Timestamp"
	}
	return fmt.Sprintf("%T", e)
}
