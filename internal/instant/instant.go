// Package instant handles reference instants and the fixed UTC offsets they
// are expressed in.
//
// An instant is a plain time.Time. Offsets are always supplied by the caller
// as "Z", "+HH:MM" or "-HH:MM"; no time-zone database is consulted.
package instant

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"
)

// ErrInvalidOffset is returned when an offset string is malformed or out of range.
var ErrInvalidOffset = errors.New("invalid UTC offset")

// offsetRe matches "+02:00", "-0530", "+2".
var offsetRe = regexp.MustCompile(`^([+-])(\d{1,2})(?::?(\d{2}))?$`)

// layouts accepted for reference instants, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// zones holds one shared location per offset so equal instants parsed
// from equal text compare equal with ==.
var zones sync.Map

// Zone returns the fixed location for an offset in seconds east of UTC.
// Offset 0 is time.UTC; every other offset maps to a single shared location.
func Zone(seconds int) *time.Location {
	if seconds == 0 {
		return time.UTC
	}
	if loc, ok := zones.Load(seconds); ok {
		return loc.(*time.Location)
	}
	loc, _ := zones.LoadOrStore(seconds, time.FixedZone(FormatOffset(seconds), seconds))
	return loc.(*time.Location)
}

// Parse parses an RFC 3339 reference instant, keeping its offset.
// The result is placed in Zone of that offset, never in time.Local.
func Parse(input string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, input); err == nil {
			_, offset := t.Zone()
			return t.In(Zone(offset)), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid instant %q (use RFC 3339, e.g. 2025-07-29T10:30:05Z)", input)
}

// ParseOffset parses a fixed UTC offset into a location.
// An empty string yields time.Local.
func ParseOffset(input string) (*time.Location, error) {
	switch input {
	case "":
		return time.Local, nil
	case "Z", "z", "UTC", "utc":
		return time.UTC, nil
	}

	m := offsetRe.FindStringSubmatch(input)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOffset, input)
	}

	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	if hours > 14 || minutes > 59 || (hours == 14 && minutes > 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOffset, input)
	}

	seconds := hours*3600 + minutes*60
	if m[1] == "-" {
		seconds = -seconds
	}
	return Zone(seconds), nil
}

// FormatOffset renders an offset in seconds as "+HH:MM".
func FormatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// Reference returns the reference instant for a resolution: the parsed
// input if one is given, otherwise now. When loc is non-nil the result is
// moved into it.
func Reference(input string, loc *time.Location, now func() time.Time) (time.Time, error) {
	var ref time.Time
	if input == "" {
		ref = now()
	} else {
		t, err := Parse(input)
		if err != nil {
			return time.Time{}, err
		}
		ref = t
	}
	if loc != nil {
		ref = ref.In(loc)
	}
	return ref, nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, keeping the wall clock.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// IsLeapYear reports whether year has a February 29 in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
