package expr

import (
	"time"

	"github.com/CodexForgeBR/reltime/internal/instant"
)

// describeOrder lists the keyword candidates for Describe, most natural first.
var describeOrder = func() []Expression {
	out := []Expression{Today, Tomorrow}
	for d := time.Monday; d <= time.Saturday; d++ {
		out = append(out, Weekday(d))
	}
	out = append(out, Weekday(time.Sunday))
	for m := time.January; m <= time.December; m++ {
		out = append(out, Month(m))
	}
	return append(out, ThisWeek, ThisMonth)
}()

// Describe returns the most natural expression whose resolved Max relative
// to ref is t. Instants that are not a midnight in ref's location, or that no
// keyword reaches, come back as a Timestamp.
func Describe(t, ref time.Time) Expression {
	local := t.In(ref.Location())
	if local.Equal(instant.StartOfDay(local)) {
		for _, e := range describeOrder {
			if Resolve(e, ref).Max.Equal(t) {
				return e
			}
		}
	}
	return Timestamp{Time: t}
}
