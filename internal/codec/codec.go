// Package codec moves expressions in and out of text, JSON and YAML.
//
// Every format carries an expression as a single string scalar holding its
// natural form, so "Monday" in a YAML file and "Monday" on the command line
// mean the same thing.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/locale"
	"github.com/CodexForgeBR/reltime/internal/parser"
)

var (
	// ErrNotScalar is returned when a YAML or JSON value is not a string scalar.
	ErrNotScalar = errors.New("expression must be a string scalar")
	// ErrNilExpression is returned when encoding an empty Value.
	ErrNilExpression = errors.New("nil expression")
)

// ToNatural returns the canonical surface form: English keywords, numeric
// forms as written by the parser, RFC 3339 for timestamps.
func ToNatural(e expr.Expression) string {
	return e.String()
}

// FromNatural parses s with the given locales.
func FromNatural(s string, locales locale.Set) (expr.Expression, error) {
	return parser.Parse(s, locales)
}

// Codec decodes with an explicit locale set. A nil Locales uses
// locale.Default().
type Codec struct {
	Locales locale.Set
}

func (c Codec) locales() locale.Set {
	if c.Locales == nil {
		return locale.Default()
	}
	return c.Locales
}

// DecodeJSON reads a JSON string holding an expression.
func (c Codec) DecodeJSON(data []byte) (expr.Expression, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotScalar, err)
	}
	return parser.Parse(s, c.locales())
}

// EncodeJSON writes e as a JSON string.
func (c Codec) EncodeJSON(e expr.Expression) ([]byte, error) {
	if e == nil {
		return nil, ErrNilExpression
	}
	return json.Marshal(ToNatural(e))
}

// DecodeYAML reads a YAML document whose root is a string scalar.
func (c Codec) DecodeYAML(data []byte) (expr.Expression, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, ErrNotScalar
	}
	return c.decodeNode(doc.Content[0])
}

// EncodeYAML writes e as a YAML scalar document.
func (c Codec) EncodeYAML(e expr.Expression) ([]byte, error) {
	if e == nil {
		return nil, ErrNilExpression
	}
	return yaml.Marshal(ToNatural(e))
}

func (c Codec) decodeNode(n *yaml.Node) (expr.Expression, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: %w", n.Line, ErrNotScalar)
	}
	// n.Value is the raw text, so timestamps and "14:30" arrive unconverted.
	return parser.Parse(n.Value, c.locales())
}

// Value wraps an Expression for use as a struct field. It encodes as a
// string and decodes with locale.Default().
type Value struct {
	Expression expr.Expression
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return Codec{}.EncodeJSON(v.Expression)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	e, err := Codec{}.DecodeJSON(data)
	if err != nil {
		return err
	}
	v.Expression = e
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.Expression == nil {
		return nil, ErrNilExpression
	}
	return ToNatural(v.Expression), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	e, err := Codec{}.decodeNode(n)
	if err != nil {
		return err
	}
	v.Expression = e
	return nil
}

func (v Value) String() string {
	if v.Expression == nil {
		return ""
	}
	return ToNatural(v.Expression)
}
