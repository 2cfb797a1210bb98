// Package banner renders resolutions for people rather than pipes.
//
// Every function writes to the given writer with color-coded headers and
// separators. The CLI sends them to stderr so stdout stays machine-readable.
package banner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/logging"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const rule = "═══════════════════════════════════════════════════"

// Resolution is everything shown about one resolved expression.
type Resolution struct {
	// Input is the text as typed.
	Input      string
	Expression expr.Expression
	// Locale names the table a keyword matched in, empty for numeric forms.
	Locale    string
	Reference time.Time
	Range     expr.Range
}

// PrintResolution displays one resolved expression.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  reltime - Måndag
//	═══════════════════════════════════════════════════
//	  Expression: Monday (Weekday, Svenska)
//	  Reference:  2025-07-30T10:30:05Z
//	  Min:        2025-08-04T00:00:00Z
//	  Max:        2025-08-05T00:00:00Z
//	  Span:       1d 0h 0m 0s
//	  Recurring:  yes
//	═══════════════════════════════════════════════════
func PrintResolution(w io.Writer, r Resolution) {
	sep := headerColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor("  reltime - "+r.Input))
	fmt.Fprintln(w, sep)

	kind := expr.KindOf(r.Expression)
	if r.Locale != "" {
		kind += ", " + r.Locale
	}
	fmt.Fprintf(w, "  Expression: %s (%s)\n", r.Expression, kind)
	fmt.Fprintf(w, "  Reference:  %s\n", r.Reference.Format(time.RFC3339))
	fmt.Fprintf(w, "  Min:        %s\n", r.Range.Min.Format(time.RFC3339))
	fmt.Fprintf(w, "  Max:        %s\n", r.Range.Max.Format(time.RFC3339))
	fmt.Fprintf(w, "  Span:       %s\n", logging.FormatDuration(int(r.Range.Duration()/time.Second)))
	fmt.Fprintf(w, "  Recurring:  %s\n", yesNo(r.Expression.Recurring()))
	fmt.Fprintln(w, sep)
}

// PrintOccurrences lists upcoming occurrences, one per line.
//
// Example output:
//
//	──────────────────────────────────────────────────
//	  Monday, next 2:
//	    1. 2025-08-04T00:00:00Z → 2025-08-05T00:00:00Z
//	    2. 2025-08-11T00:00:00Z → 2025-08-12T00:00:00Z
//	──────────────────────────────────────────────────
func PrintOccurrences(w io.Writer, label string, occurrences []expr.Range) {
	sep := strings.Repeat("─", 50)
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  %s, next %d:\n", label, len(occurrences))
	for i, r := range occurrences {
		if r.Precise() {
			fmt.Fprintf(w, "    %d. %s\n", i+1, r.Min.Format(time.RFC3339))
			continue
		}
		fmt.Fprintf(w, "    %d. %s → %s\n", i+1, r.Min.Format(time.RFC3339), r.Max.Format(time.RFC3339))
	}
	fmt.Fprintln(w, sep)
}

// PrintDescription shows the reverse mapping of an instant.
//
// Example output:
//
//	  2025-07-31T00:00:00Z is the end of Tomorrow (Relative)
func PrintDescription(w io.Writer, at time.Time, e expr.Expression) {
	if _, ok := e.(expr.Timestamp); ok {
		fmt.Fprintf(w, "  %s has no keyword form\n", at.Format(time.RFC3339))
		return
	}
	fmt.Fprintf(w, "  %s is the end of %s (%s)\n", at.Format(time.RFC3339), e, expr.KindOf(e))
}

// PrintReachedBanner displays when a wait completes.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ Reached 14:30
//	  At:         2025-07-29T14:30:00Z
//	═══════════════════════════════════════════════════
func PrintReachedBanner(w io.Writer, label string, at time.Time) {
	sep := successColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, successColor("  ✓ Reached "+label))
	fmt.Fprintf(w, "  At:         %s\n", at.Format(time.RFC3339))
	fmt.Fprintln(w, sep)
}

// PrintInterruptedBanner displays when a wait is interrupted.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ⚠ Wait interrupted
//	  Target:     2025-07-29T14:30:00Z
//	  Remaining:  1h 2m 3s
//	═══════════════════════════════════════════════════
func PrintInterruptedBanner(w io.Writer, target time.Time, remaining time.Duration) {
	sep := warnColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, warnColor("  ⚠ Wait interrupted"))
	fmt.Fprintf(w, "  Target:     %s\n", target.Format(time.RFC3339))
	fmt.Fprintf(w, "  Remaining:  %s\n", logging.FormatDuration(int(remaining.Round(time.Second)/time.Second)))
	fmt.Fprintln(w, sep)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
