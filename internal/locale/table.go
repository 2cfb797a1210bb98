package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrAmbiguousSpelling is returned when one table maps a spelling to two tokens.
var ErrAmbiguousSpelling = errors.New("ambiguous spelling")

// Table is one language's keyword mapping.
type Table struct {
	tag       language.Tag
	name      string
	selectors []string
	spellings map[Token]string
	index     map[string]Token
}

// Definition describes a table before it is indexed.
type Definition struct {
	Tag language.Tag
	// Name is the language's own name for itself.
	Name string
	// Selectors are extra names the table can be selected by, such as the
	// language name in other languages.
	Selectors []string
	// Spellings holds the canonical spelling of each token.
	Spellings map[Token]string
	// Aliases are additional accepted spellings.
	Aliases map[string]Token
}

// NewTable indexes a definition. Matching is case-insensitive through
// Unicode case folding; accented letters are never folded to ASCII.
func NewTable(def Definition) (*Table, error) {
	t := &Table{
		tag:       def.Tag,
		name:      def.Name,
		selectors: append([]string(nil), def.Selectors...),
		spellings: make(map[Token]string, len(def.Spellings)),
		index:     make(map[string]Token, len(def.Spellings)+len(def.Aliases)),
	}

	add := func(spelling string, tok Token) error {
		key := fold(spelling)
		if key == "" {
			return fmt.Errorf("%s: empty spelling for %s", def.Name, tok)
		}
		if prev, ok := t.index[key]; ok && prev != tok {
			return fmt.Errorf("%w: %s maps %q to both %s and %s", ErrAmbiguousSpelling, def.Name, spelling, prev, tok)
		}
		t.index[key] = tok
		return nil
	}

	for tok, spelling := range def.Spellings {
		if err := add(spelling, tok); err != nil {
			return nil, err
		}
		t.spellings[tok] = spelling
	}
	for spelling, tok := range def.Aliases {
		if err := add(spelling, tok); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustTable is NewTable for compiled-in definitions.
func MustTable(def Definition) *Table {
	t, err := NewTable(def)
	if err != nil {
		panic(err)
	}
	return t
}

// Tag returns the table's BCP 47 language tag.
func (t *Table) Tag() language.Tag { return t.tag }

// Name returns the language's own name.
func (t *Table) Name() string { return t.name }

// Lookup matches the whole of text against the table's spellings.
func (t *Table) Lookup(text string) (Token, bool) {
	tok, ok := t.index[fold(text)]
	return tok, ok
}

// Spelling returns the canonical spelling of tok in this language.
// Tokens the table does not define fall back to English.
func (t *Table) Spelling(tok Token) string {
	if s, ok := t.spellings[tok]; ok {
		return s
	}
	return tok.String()
}

// Spellings returns every canonical spelling of tokens of kind k, in token order.
func (t *Table) Spellings(k Kind) []string {
	var out []string
	for _, tok := range Tokens() {
		if tok.Kind() != k {
			continue
		}
		if s, ok := t.spellings[tok]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Matches reports whether name selects this table. name may be a BCP 47
// tag (base language compared, so "sv-SE" selects Swedish), the table's own
// name or one of its selectors.
func (t *Table) Matches(name string) bool {
	key := fold(name)
	if key == fold(t.name) {
		return true
	}
	for _, s := range t.selectors {
		if key == fold(s) {
			return true
		}
	}

	tag, err := language.Parse(name)
	if err != nil {
		return false
	}
	want, _ := tag.Base()
	have, _ := t.tag.Base()
	return want == have
}

// fold normalizes a spelling for comparison. A Caser keeps state, so one is
// created per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
