package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/CodexForgeBR/reltime/internal/config"
	"github.com/CodexForgeBR/reltime/internal/expr"
)

// bound selects which ends of a range a command prints.
type bound int

const (
	boundMin bound = iota + 1
	boundMax
	boundRange
)

// result is the JSON form of one resolution.
type result struct {
	Name       string     `json:"name,omitempty"`
	Expression string     `json:"expression"`
	Min        *time.Time `json:"min,omitempty"`
	Max        *time.Time `json:"max,omitempty"`
}

func newResult(e expr.Expression, rng expr.Range, b bound) result {
	r := result{Expression: e.String()}
	if b != boundMax {
		r.Min = &rng.Min
	}
	if b != boundMin {
		r.Max = &rng.Max
	}
	return r
}

func formatInstant(t time.Time, format string) string {
	if format == config.FormatUnix {
		return strconv.FormatInt(t.Unix(), 10)
	}
	return t.Format(time.RFC3339Nano)
}

// formatRange renders both bounds: an ISO 8601 interval, or two Unix
// seconds separated by a space.
func formatRange(rng expr.Range, format string) string {
	if format == config.FormatUnix {
		return formatInstant(rng.Min, format) + " " + formatInstant(rng.Max, format)
	}
	return formatInstant(rng.Min, format) + "/" + formatInstant(rng.Max, format)
}

// writeBound prints the selected bound of rng in format.
func writeBound(w io.Writer, e expr.Expression, rng expr.Range, b bound, format string) error {
	if format == config.FormatJSON {
		return writeJSON(w, newResult(e, rng, b))
	}
	switch b {
	case boundMin:
		_, err := fmt.Fprintln(w, formatInstant(rng.Min, format))
		return err
	case boundMax:
		_, err := fmt.Fprintln(w, formatInstant(rng.Max, format))
		return err
	default:
		_, err := fmt.Fprintln(w, formatRange(rng, format))
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
