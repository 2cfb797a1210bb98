package calendar_test

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"github.com/CodexForgeBR/reltime/internal/calendar"
	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/schedule"
)

// Wednesday.
var ref = time.Date(2025, 7, 30, 10, 30, 5, 0, time.UTC)

var stamp = time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)

func exportEvent(t *testing.T, e expr.Expression, opts calendar.Options) *ics.VEvent {
	t.Helper()
	if opts.Now.IsZero() {
		opts.Now = stamp
	}
	out, err := calendar.Export(e, expr.Resolve(e, ref), opts)
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)
	return events[0]
}

func propValue(ev *ics.VEvent, name ics.ComponentProperty) string {
	p := ev.GetProperty(name)
	if p == nil {
		return ""
	}
	return p.Value
}

func TestExport_AllDayEvents(t *testing.T) {
	tests := []struct {
		name      string
		e         expr.Expression
		wantStart string
		wantEnd   string
		wantRRule []string
	}{
		{
			name:      "today",
			e:         expr.Today,
			wantStart: "20250730",
			wantEnd:   "20250731",
		},
		{
			name:      "next week",
			e:         expr.NextWeek,
			wantStart: "20250804",
			wantEnd:   "20250811",
		},
		{
			name:      "weekday",
			e:         expr.Weekday(time.Monday),
			wantStart: "20250804",
			wantEnd:   "20250805",
			wantRRule: []string{"FREQ=WEEKLY", "BYDAY=MO"},
		},
		{
			name:      "month",
			e:         expr.Month(time.December),
			wantStart: "20251201",
			wantEnd:   "20260101",
			wantRRule: []string{"FREQ=YEARLY", "BYMONTH=12", "BYMONTHDAY=1"},
		},
		{
			name:      "year-less date",
			e:         expr.ExactDate{Day: 25, Month: 12},
			wantStart: "20251225",
			wantEnd:   "20251226",
			wantRRule: []string{"FREQ=YEARLY", "BYMONTH=12", "BYMONTHDAY=25"},
		},
		{
			name:      "dated",
			e:         expr.ExactDate{Day: 1, Month: 1, Year: 2030, HasYear: true},
			wantStart: "20300101",
			wantEnd:   "20300102",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := exportEvent(t, tt.e, calendar.Options{})

			assert.Equal(t, tt.wantStart, propValue(ev, ics.ComponentPropertyDtStart))
			assert.Equal(t, tt.wantEnd, propValue(ev, ics.ComponentPropertyDtEnd))

			rrule := propValue(ev, ics.ComponentPropertyRrule)
			if tt.wantRRule == nil {
				assert.Empty(t, rrule)
				return
			}
			for _, part := range tt.wantRRule {
				assert.Contains(t, rrule, part)
			}
			assert.NotContains(t, rrule, "BYHOUR", "all-day rules carry no clock")
		})
	}
}

func TestExport_TimedEvents(t *testing.T) {
	tests := []struct {
		name      string
		e         expr.Expression
		wantStart time.Time
		wantRRule []string
	}{
		{
			name:      "time of day",
			e:         expr.ExactTime{Hour: 14, Minute: 30},
			wantStart: time.Date(2025, 7, 30, 14, 30, 0, 0, time.UTC),
			wantRRule: []string{"FREQ=DAILY"},
		},
		{
			name: "dated date-time",
			e: expr.ExactDateTime{
				Date: expr.ExactDate{Day: 15, Month: 3, Year: 2026, HasYear: true},
				Time: expr.ExactTime{Hour: 17},
			},
			wantStart: time.Date(2026, 3, 15, 17, 0, 0, 0, time.UTC),
		},
		{
			name:      "now",
			e:         expr.Now,
			wantStart: ref,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := exportEvent(t, tt.e, calendar.Options{})

			start, err := ev.GetStartAt()
			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(start), "start %s, want %s", start, tt.wantStart)
			assert.Empty(t, propValue(ev, ics.ComponentPropertyDtEnd), "point events have no end")

			rrule := propValue(ev, ics.ComponentPropertyRrule)
			if tt.wantRRule == nil {
				assert.Empty(t, rrule)
				return
			}
			for _, part := range tt.wantRRule {
				assert.Contains(t, rrule, part)
			}
			assert.NotContains(t, rrule, "BYHOUR", "timed rules take their clock from DTSTART")
		})
	}
}

func TestExport_TimedRecurrenceWithOffset(t *testing.T) {
	plus2 := time.FixedZone("+02:00", 2*3600)
	minus3 := time.FixedZone("-03:00", -3*3600)

	tests := []struct {
		name      string
		e         expr.Expression
		ref       time.Time
		wantStart string
	}{
		{
			name:      "time of day east of UTC",
			e:         expr.ExactTime{Hour: 9},
			ref:       time.Date(2025, 7, 29, 10, 30, 0, 0, plus2),
			wantStart: "20250730T070000Z",
		},
		{
			name:      "time of day west of UTC",
			e:         expr.ExactTime{Hour: 22, Minute: 15},
			ref:       time.Date(2025, 7, 29, 10, 30, 0, 0, minus3),
			wantStart: "20250730T011500Z",
		},
		{
			name: "year-less date-time crossing midnight",
			e: expr.ExactDateTime{
				Date: expr.ExactDate{Day: 25, Month: 12},
				Time: expr.ExactTime{Hour: 1},
			},
			ref:       time.Date(2025, 7, 29, 10, 30, 0, 0, plus2),
			wantStart: "20251224T230000Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := calendar.Export(tt.e, expr.Resolve(tt.e, tt.ref), calendar.Options{Now: stamp})
			require.NoError(t, err)
			cal, err := ics.ParseCalendar(strings.NewReader(out))
			require.NoError(t, err)
			require.Len(t, cal.Events(), 1)
			ev := cal.Events()[0]

			assert.Equal(t, tt.wantStart, propValue(ev, ics.ComponentPropertyDtStart))
			start, err := ev.GetStartAt()
			require.NoError(t, err)

			opt, err := rrule.StrToROption(propValue(ev, ics.ComponentPropertyRrule))
			require.NoError(t, err)
			opt.Dtstart = start
			rule, err := rrule.NewRRule(*opt)
			require.NoError(t, err)

			want, err := schedule.Occurrences(expr.Resolver{}, tt.e, tt.ref, 3)
			require.NoError(t, err)
			next := rule.Iterator()
			for i, occ := range want {
				got, ok := next()
				require.True(t, ok, "occurrence %d", i)
				assert.True(t, occ.Min.Equal(got), "occurrence %d: %s, want %s", i, got, occ.Min)
			}
		})
	}
}

func TestExport_Options(t *testing.T) {
	ev := exportEvent(t, expr.Weekday(time.Friday), calendar.Options{
		Summary:     "Retro",
		Description: "Sprint retrospective",
		UID:         "retro@example.com",
	})

	assert.Equal(t, "Retro", propValue(ev, ics.ComponentPropertySummary))
	assert.Equal(t, "Sprint retrospective", propValue(ev, ics.ComponentPropertyDescription))
	assert.Equal(t, "retro@example.com", ev.Id())
}

func TestExport_Defaults(t *testing.T) {
	ev := exportEvent(t, expr.Tomorrow, calendar.Options{})

	assert.Equal(t, "Tomorrow", propValue(ev, ics.ComponentPropertySummary))
	assert.Equal(t, calendar.EventUID(expr.Tomorrow, expr.Resolve(expr.Tomorrow, ref)), ev.Id())
	assert.Empty(t, propValue(ev, ics.ComponentPropertyDescription))
	assert.NotEmpty(t, propValue(ev, ics.ComponentPropertyDtstamp))
}

func TestExport_CalendarHeader(t *testing.T) {
	out, err := calendar.Export(expr.Today, expr.Resolve(expr.Today, ref), calendar.Options{Now: stamp})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "PRODID:"+calendar.ProductID)
	assert.Contains(t, out, "METHOD:PUBLISH")
}

func TestAllDay(t *testing.T) {
	midnight := time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC)

	assert.True(t, calendar.AllDay(expr.Range{Min: midnight, Max: midnight.AddDate(0, 0, 1)}))
	assert.False(t, calendar.AllDay(expr.Range{Min: midnight, Max: midnight}), "precise")
	assert.False(t, calendar.AllDay(expr.Range{Min: ref, Max: ref.Add(time.Hour)}))
}

func TestEventUID(t *testing.T) {
	monday := expr.Weekday(time.Monday)
	rng := expr.Resolve(monday, ref)

	uid := calendar.EventUID(monday, rng)
	parsed, err := uuid.Parse(uid)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())

	assert.Equal(t, uid, calendar.EventUID(monday, rng), "stable across exports")
	assert.NotEqual(t, uid, calendar.EventUID(monday, expr.Resolve(monday, rng.Max)), "next occurrence differs")
	assert.NotEqual(t, uid, calendar.EventUID(expr.Today, rng), "expression is part of the name")
}
