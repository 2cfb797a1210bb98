package banner

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/reltime/internal/expr"
)

func init() {
	color.NoColor = true
}

var ref = time.Date(2025, 7, 30, 10, 30, 5, 0, time.UTC)

// TestPrintResolution verifies the resolution box includes every field
func TestPrintResolution(t *testing.T) {
	tests := []struct {
		name         string
		resolution   Resolution
		expectedText []string
	}{
		{
			name: "keyword matched in a locale",
			resolution: Resolution{
				Input:      "Måndag",
				Expression: expr.Weekday(time.Monday),
				Locale:     "Svenska",
				Reference:  ref,
				Range:      expr.Resolve(expr.Weekday(time.Monday), ref),
			},
			expectedText: []string{
				"reltime - Måndag",
				"Expression: Monday (Weekday, Svenska)",
				"Reference:  2025-07-30T10:30:05Z",
				"Min:        2025-08-04T00:00:00Z",
				"Max:        2025-08-05T00:00:00Z",
				"Span:       1d 0h 0m 0s",
				"Recurring:  yes",
			},
		},
		{
			name: "absolute date-time",
			resolution: Resolution{
				Input: "15/3/2025 17:00",
				Expression: expr.ExactDateTime{
					Date: expr.ExactDate{Day: 15, Month: 3, Year: 2025, HasYear: true},
					Time: expr.ExactTime{Hour: 17},
				},
				Reference: ref,
				Range: expr.Range{
					Min: time.Date(2025, 3, 15, 17, 0, 0, 0, time.UTC),
					Max: time.Date(2025, 3, 15, 17, 0, 0, 0, time.UTC),
				},
			},
			expectedText: []string{
				"Expression: 15/3/2025 17:00 (ExactDateTime)",
				"Span:       0s",
				"Recurring:  no",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintResolution(&buf, tt.resolution)

			out := buf.String()
			for _, text := range tt.expectedText {
				assert.Contains(t, out, text)
			}
			assert.Equal(t, 3, strings.Count(out, rule), "header, separator and footer rules")
		})
	}
}

func TestPrintOccurrences(t *testing.T) {
	var buf bytes.Buffer
	PrintOccurrences(&buf, "Monday", []expr.Range{
		{Min: time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC), Max: time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)},
		{Min: time.Date(2025, 8, 11, 9, 0, 0, 0, time.UTC), Max: time.Date(2025, 8, 11, 9, 0, 0, 0, time.UTC)},
	})

	out := buf.String()
	assert.Contains(t, out, "Monday, next 2:")
	assert.Contains(t, out, "1. 2025-08-04T00:00:00Z → 2025-08-05T00:00:00Z")
	assert.Contains(t, out, "2. 2025-08-11T09:00:00Z\n")
	assert.Contains(t, out, strings.Repeat("─", 50))
}

func TestPrintDescription(t *testing.T) {
	at := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	PrintDescription(&buf, at, expr.Tomorrow)
	assert.Equal(t, "  2025-07-31T00:00:00Z is the end of Tomorrow (Relative)\n", buf.String())

	buf.Reset()
	PrintDescription(&buf, at, expr.Timestamp{Time: at})
	assert.Equal(t, "  2025-07-31T00:00:00Z has no keyword form\n", buf.String())
}

func TestPrintReachedBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintReachedBanner(&buf, "14:30", time.Date(2025, 7, 29, 14, 30, 0, 0, time.UTC))
	assert.Contains(t, buf.String(), "✓ Reached 14:30")
	assert.Contains(t, buf.String(), "At:         2025-07-29T14:30:00Z")
}

func TestPrintInterruptedBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintInterruptedBanner(&buf, time.Date(2025, 7, 29, 14, 30, 0, 0, time.UTC), time.Hour+2*time.Minute+3*time.Second)
	assert.Contains(t, buf.String(), "⚠ Wait interrupted")
	assert.Contains(t, buf.String(), "Remaining:  1h 2m 3s")
}
