package locale

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLocale is returned by Select for names no compiled-in table answers to.
var ErrUnknownLocale = errors.New("unknown locale")

// builtin lists the compiled-in tables, English first. Optional languages
// append themselves from init functions guarded by build tags.
var builtin = []*Table{english}

// Set is an ordered list of tables. Earlier tables take priority.
type Set []*Table

// Default returns every compiled-in table, English first.
func Default() Set {
	return append(Set(nil), builtin...)
}

// Select builds a Set from locale names in priority order. Each name may be
// a language tag ("en", "sv-SE") or a language name ("Svenska").
// Duplicates are dropped. An empty list selects Default().
func Select(names []string) (Set, error) {
	if len(names) == 0 {
		return Default(), nil
	}

	var out Set
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		t := find(name)
		if t == nil {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLocale, name, strings.Join(Default().Names(), ", "))
		}
		if !out.contains(t) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return Default(), nil
	}
	return out, nil
}

func find(name string) *Table {
	for _, t := range builtin {
		if t.Matches(name) {
			return t
		}
	}
	return nil
}

func (s Set) contains(t *Table) bool {
	for _, have := range s {
		if have == t {
			return true
		}
	}
	return false
}

// Lookup tries each table in order and returns the first match together
// with the table that matched. When two tables claim the same spelling with
// different meanings, the earlier table wins.
func (s Set) Lookup(text string) (Token, *Table, bool) {
	for _, t := range s {
		if tok, ok := t.Lookup(text); ok {
			return tok, t, true
		}
	}
	return 0, nil, false
}

// Names returns the tables' own names.
func (s Set) Names() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.Name()
	}
	return out
}

// Tags returns the tables' language tags as strings.
func (s Set) Tags() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.Tag().String()
	}
	return out
}

// Primary returns the first table, or English for an empty set.
func (s Set) Primary() *Table {
	if len(s) == 0 {
		return english
	}
	return s[0]
}
