// Package parser turns natural-language time text into expressions.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/instant"
	"github.com/CodexForgeBR/reltime/internal/locale"
)

// Numeric forms. Go's \d is ASCII only, so other scripts' digits fall
// through to keyword lookup and fail there.
var (
	// dateTimeRe matches "15/3/2025 17:00", "25/12 8:30:15".
	dateTimeRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d+))?\s+(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	// dateRe matches "25/12", "15/3/2025".
	dateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d+))?$`)
	// timeRe matches "14:30", "9:05:30".
	timeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// Error reports why a piece of text did not parse. Err wraps one of
// expr.ErrUnrecognizedExpression, expr.ErrInvalidCalendarDate or
// expr.ErrInvalidTimeOfDay.
type Error struct {
	Input string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse converts text into an Expression. Numeric forms are tried first,
// then RFC 3339 timestamps, then keywords from locales in order. A nil or
// empty set matches no keywords.
func Parse(text string, locales locale.Set) (expr.Expression, error) {
	e, _, err := ParseLocalized(text, locales)
	return e, err
}

// ParseLocalized is Parse that also returns the table a keyword matched in.
// The table is nil for numeric forms and timestamps.
func ParseLocalized(text string, locales locale.Set) (expr.Expression, *locale.Table, error) {
	input := strings.TrimSpace(text)
	fail := func(err error) (expr.Expression, *locale.Table, error) {
		return nil, nil, &Error{Input: text, Err: err}
	}

	if m := dateTimeRe.FindStringSubmatch(input); m != nil {
		date, err := buildDate(m[1], m[2], m[3])
		if err != nil {
			return fail(err)
		}
		clock, err := buildTime(m[4], m[5], m[6])
		if err != nil {
			return fail(err)
		}
		dt, err := expr.NewDateTime(date, clock)
		if err != nil {
			return fail(err)
		}
		return dt, nil, nil
	}

	if m := dateRe.FindStringSubmatch(input); m != nil {
		date, err := buildDate(m[1], m[2], m[3])
		if err != nil {
			return fail(err)
		}
		return date, nil, nil
	}

	if m := timeRe.FindStringSubmatch(input); m != nil {
		clock, err := buildTime(m[1], m[2], m[3])
		if err != nil {
			return fail(err)
		}
		return clock, nil, nil
	}

	if looksLikeTimestamp(input) {
		if ts, err := instant.Parse(input); err == nil {
			return expr.Timestamp{Time: ts}, nil, nil
		}
	}

	if tok, table, ok := locales.Lookup(input); ok {
		if e, ok := expr.FromToken(tok); ok {
			return e, table, nil
		}
	}

	return fail(expr.ErrUnrecognizedExpression)
}

// looksLikeTimestamp avoids running the time layouts over every keyword.
func looksLikeTimestamp(s string) bool {
	return len(s) >= len("2006-01-02T15:04Z") && s[4] == '-' && strings.ContainsAny(s, "Tt")
}

func buildDate(day, month, year string) (expr.ExactDate, error) {
	d, errD := strconv.Atoi(day)
	m, errM := strconv.Atoi(month)
	if err := errors.Join(errD, errM); err != nil {
		return expr.ExactDate{}, fmt.Errorf("%w: %v", expr.ErrInvalidCalendarDate, err)
	}
	if year == "" {
		return expr.NewDate(d, m)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return expr.ExactDate{}, fmt.Errorf("%w: year %s", expr.ErrInvalidCalendarDate, year)
	}
	return expr.NewDateInYear(d, m, y)
}

func buildTime(hour, minute, second string) (expr.ExactTime, error) {
	h, errH := strconv.Atoi(hour)
	m, errM := strconv.Atoi(minute)
	if err := errors.Join(errH, errM); err != nil {
		return expr.ExactTime{}, fmt.Errorf("%w: %v", expr.ErrInvalidTimeOfDay, err)
	}
	if second == "" {
		return expr.NewTime(h, m)
	}
	s, err := strconv.Atoi(second)
	if err != nil {
		return expr.ExactTime{}, fmt.Errorf("%w: %v", expr.ErrInvalidTimeOfDay, err)
	}
	return expr.NewTimeWithSecond(h, m, s)
}
