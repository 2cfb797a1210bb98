package schedule

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/CodexForgeBR/reltime/internal/expr"
)

// QuartzSpec returns a seven-field Quartz-style spec
// (second minute hour day-of-month month day-of-week year). Unlike
// CronSpec it can pin dated expressions to their year. Relative keywords
// and timestamps have none.
func QuartzSpec(e expr.Expression) (string, error) {
	switch v := e.(type) {
	case expr.Weekday:
		return fmt.Sprintf("0 0 0 ? * %d *", int(v)), nil
	case expr.Month:
		return fmt.Sprintf("0 0 0 1 %d ? *", int(v)), nil
	case expr.ExactTime:
		return fmt.Sprintf("%d %d %d * * ? *", v.Second, v.Minute, v.Hour), nil
	case expr.ExactDate:
		return fmt.Sprintf("0 0 0 %d %d ? %s", v.Day, v.Month, yearField(v)), nil
	case expr.ExactDateTime:
		return fmt.Sprintf("%d %d %d %d %d ? %s", v.Time.Second, v.Time.Minute, v.Time.Hour, v.Date.Day, v.Date.Month, yearField(v.Date)), nil
	}
	return "", fmt.Errorf("%s: %w", e, ErrNotRecurring)
}

func yearField(d expr.ExactDate) string {
	if d.HasYear {
		return fmt.Sprint(d.Year)
	}
	return "*"
}

// NextFire is NextAfter for the Quartz projection, so dated expressions
// report their single fire time and then ErrNoOccurrence. Years outside
// 1970-2099 are not representable.
func NextFire(e expr.Expression, after time.Time) (time.Time, error) {
	spec, err := QuartzSpec(e)
	if err != nil {
		return time.Time{}, err
	}
	x, err := cronexpr.Parse(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse quartz spec %q: %w", spec, err)
	}
	next := x.Next(after)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("%s after %s: %w", e, after.Format(time.RFC3339), ErrNoOccurrence)
	}
	return next, nil
}
