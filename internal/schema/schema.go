// Package schema emits a JSON Schema describing every expression reltime
// accepts, in the string form used by the codec and the object form used
// by tools that prefer structured input.
package schema

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/CodexForgeBR/reltime/internal/locale"
)

// ID is the schema's $id.
const ID = "https://github.com/CodexForgeBR/reltime/expression.schema.json"

// String patterns for the numeric forms, matching the parser.
const (
	TimePattern     = `^\d{1,2}:\d{2}(:\d{2})?$`
	DatePattern     = `^\d{1,2}/\d{1,2}(/\d+)?$`
	DateTimePattern = `^\d{1,2}/\d{1,2}(/\d+)?\s+\d{1,2}:\d{2}(:\d{2})?$`
)

// Definition names under $defs.
const (
	DefRelative            = "Relative"
	DefWeekday             = "Weekday"
	DefMonth               = "Month"
	DefExactTime           = "ExactTime"
	DefExactDate           = "ExactDate"
	DefExactDateTime       = "ExactDateTime"
	DefTimestamp           = "Timestamp"
	DefExactTimeFields     = "ExactTimeFields"
	DefExactDateFields     = "ExactDateFields"
	DefExactDateTimeFields = "ExactDateTimeFields"
)

// variants is the oneOf order.
var variants = []string{
	DefRelative, DefWeekday, DefMonth,
	DefExactTime, DefExactDate, DefExactDateTime, DefTimestamp,
}

// Generate builds the schema. Keyword enums list every canonical spelling
// of the given locales, English first, without duplicates.
func Generate(locales locale.Set) *jsonschema.Schema {
	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		ID:          jsonschema.ID(ID),
		Title:       "Expression",
		Description: "A natural-language time expression. Keywords match case-insensitively in " + strings.Join(locales.Names(), ", ") + ".",
		Definitions: jsonschema.Definitions{},
	}
	for _, name := range variants {
		root.OneOf = append(root.OneOf, ref(name))
	}

	root.Definitions[DefRelative] = keywordDef(locales, locale.KindRelative,
		"A day, week or month relative to the reference instant, or the instant itself.")
	root.Definitions[DefWeekday] = keywordDef(locales, locale.KindWeekday,
		"The next occurrence of a weekday, the reference day included.")
	root.Definitions[DefMonth] = keywordDef(locales, locale.KindMonth,
		"The next occurrence of a month, the reference month included.")

	root.Definitions[DefExactTime] = &jsonschema.Schema{
		Description: "A time of day, H:MM or H:MM:SS. Resolves today, or tomorrow once passed.",
		OneOf: []*jsonschema.Schema{
			{Type: "string", Pattern: TimePattern, Examples: []any{"14:30", "07:05:09"}},
			ref(DefExactTimeFields),
		},
	}
	root.Definitions[DefExactDate] = &jsonschema.Schema{
		Description: "A calendar date, D/M or D/M/Y. Without a year it recurs annually.",
		OneOf: []*jsonschema.Schema{
			{Type: "string", Pattern: DatePattern, Examples: []any{"25/12", "15/3/2025"}},
			ref(DefExactDateFields),
		},
	}
	root.Definitions[DefExactDateTime] = &jsonschema.Schema{
		Description: "A date and a time of day.",
		OneOf: []*jsonschema.Schema{
			{Type: "string", Pattern: DateTimePattern, Examples: []any{"15/3/2025 17:00", "25/12 08:30"}},
			ref(DefExactDateTimeFields),
		},
	}
	root.Definitions[DefTimestamp] = &jsonschema.Schema{
		Type:        "string",
		Format:      "date-time",
		Description: "An absolute RFC 3339 instant with its own offset.",
		Examples:    []any{"2025-07-29T10:30:05Z"},
	}

	root.Definitions[DefExactTimeFields] = object([]field{
		{"hour", 0, 23, true},
		{"minute", 0, 59, true},
		{"second", 0, 59, false},
	})
	root.Definitions[DefExactDateFields] = object([]field{
		{"day", 1, 31, true},
		{"month", 1, 12, true},
		{"year", 1, 9999, false},
	})

	dt := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		Required:             []string{"date", "time"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
	dt.Properties.Set("date", ref(DefExactDateFields))
	dt.Properties.Set("time", ref(DefExactTimeFields))
	root.Definitions[DefExactDateTimeFields] = dt

	return root
}

// JSON renders Generate(locales) indented.
func JSON(locales locale.Set) ([]byte, error) {
	return json.MarshalIndent(Generate(locales), "", "  ")
}

// Spellings returns the enum values for kind: English canonical forms
// first, then every other table's in order, deduplicated.
func Spellings(locales locale.Set, kind locale.Kind) []string {
	tables := append(locale.Set{locale.English()}, locales...)
	seen := map[string]bool{}
	var out []string
	for _, t := range tables {
		for _, s := range t.Spellings(kind) {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func keywordDef(locales locale.Set, kind locale.Kind, description string) *jsonschema.Schema {
	spellings := Spellings(locales, kind)
	enum := make([]any, len(spellings))
	for i, s := range spellings {
		enum[i] = s
	}
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        enum,
		Description: description,
	}
}

func ref(name string) *jsonschema.Schema {
	return &jsonschema.Schema{Ref: "#/$defs/" + name}
}

type field struct {
	name     string
	min, max int
	required bool
}

func object(fields []field) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}
	for _, f := range fields {
		s.Properties.Set(f.name, &jsonschema.Schema{
			Type:    "integer",
			Minimum: json.Number(strconv.Itoa(f.min)),
			Maximum: json.Number(strconv.Itoa(f.max)),
		})
		if f.required {
			s.Required = append(s.Required, f.name)
		}
	}
	return s
}
