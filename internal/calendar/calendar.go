// Package calendar exports resolved expressions as iCalendar documents.
package calendar

import (
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/instant"
	"github.com/CodexForgeBR/reltime/internal/schedule"
)

// ProductID identifies documents produced by reltime.
const ProductID = "-//CodexForgeBR//reltime//EN"

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/CodexForgeBR/reltime"))

// Options controls the exported event.
type Options struct {
	// Summary is the event title. Empty uses the expression's natural form.
	Summary     string
	Description string
	// UID defaults to a name-based UUID of the expression and range start,
	// so re-exporting the same occurrence updates rather than duplicates it.
	UID string
	// Now stamps DTSTAMP. Zero uses the current time.
	Now time.Time
}

// Export renders a VCALENDAR holding one VEVENT for e over rng.
//
// Ranges whose bounds both fall on midnight become all-day events; other
// ranges are timed. Recurring expressions carry an RRULE anchored at rng.Min.
// DTSTART of a timed event is written in UTC, so its rule carries no clock or
// calendar date and inherits both from DTSTART.
func Export(e expr.Expression, rng expr.Range, opts Options) (string, error) {
	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ics.MethodPublish)

	uid := opts.UID
	if uid == "" {
		uid = EventUID(e, rng)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	summary := opts.Summary
	if summary == "" {
		summary = e.String()
	}

	event := cal.AddEvent(uid)
	event.SetDtStampTime(now)
	event.SetSummary(summary)
	if opts.Description != "" {
		event.SetDescription(opts.Description)
	}

	allDay := AllDay(rng)
	switch {
	case allDay:
		event.SetAllDayStartAt(rng.Min)
		event.SetAllDayEndAt(rng.Max)
	case rng.Precise():
		event.SetStartAt(rng.Min)
	default:
		event.SetStartAt(rng.Min)
		event.SetEndAt(rng.Max)
	}

	opt, err := schedule.RecurrenceOption(e, rng.Min)
	switch {
	case errors.Is(err, schedule.ErrNotRecurring):
	case err != nil:
		return "", err
	default:
		opt.Byhour, opt.Byminute, opt.Bysecond = nil, nil, nil
		if !allDay && opt.Freq == rrule.YEARLY {
			opt.Bymonth, opt.Bymonthday = nil, nil
		}
		event.AddRrule(opt.RRuleString())
	}

	return cal.Serialize(), nil
}

// EventUID returns the default UID of the event for e starting at rng.Min.
func EventUID(e expr.Expression, rng expr.Range) string {
	name := fmt.Sprintf("%s@%s", e, rng.Min.UTC().Format(time.RFC3339Nano))
	return uuid.NewSHA1(uidNamespace, []byte(name)).String()
}

// AllDay reports whether rng spans whole calendar days.
func AllDay(rng expr.Range) bool {
	return !rng.Precise() && rng.Min.Equal(instant.StartOfDay(rng.Min)) && rng.Max.Equal(instant.StartOfDay(rng.Max))
}
