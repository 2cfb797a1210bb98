// Package locale maps language-specific keywords to abstract time tokens.
//
// A Table holds one language's spellings. A Set is an ordered list of
// tables tried in priority order; the first table that knows a spelling
// wins. Tables are built once and are read-only afterwards, so a Set can be
// shared between goroutines without locking.
package locale

import (
	"fmt"
	"time"
)

// Kind groups tokens by the expression variant they produce.
type Kind int

const (
	KindRelative Kind = iota + 1
	KindWeekday
	KindMonth
)

// Token is a language-independent keyword.
type Token int

const (
	Today Token = iota + 1
	Tomorrow
	Now
	ThisWeek
	NextWeek
	ThisMonth

	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	January
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Tokens lists every token in declaration order.
func Tokens() []Token {
	out := make([]Token, 0, December)
	for t := Today; t <= December; t++ {
		out = append(out, t)
	}
	return out
}

// Kind reports which variant family t belongs to.
func (t Token) Kind() Kind {
	switch {
	case t >= Today && t <= ThisMonth:
		return KindRelative
	case t >= Monday && t <= Sunday:
		return KindWeekday
	case t >= January && t <= December:
		return KindMonth
	default:
		return 0
	}
}

// Weekday converts a weekday token. ok is false for other kinds.
func (t Token) Weekday() (time.Weekday, bool) {
	if t.Kind() != KindWeekday {
		return 0, false
	}
	// Monday is 1 in time.Weekday, Sunday is 0.
	return time.Weekday((int(t-Monday) + 1) % 7), true
}

// Month converts a month token. ok is false for other kinds.
func (t Token) Month() (time.Month, bool) {
	if t.Kind() != KindMonth {
		return 0, false
	}
	return time.Month(t-January) + 1, true
}

// WeekdayToken is the inverse of Token.Weekday.
func WeekdayToken(d time.Weekday) Token {
	return Monday + Token((int(d)+6)%7)
}

// MonthToken is the inverse of Token.Month.
func MonthToken(m time.Month) Token {
	return January + Token(m-1)
}

// String returns the canonical English spelling of t.
func (t Token) String() string {
	if s, ok := englishSpellings[t]; ok {
		return s
	}
	return fmt.Sprintf("Token(%d)", int(t))
}
