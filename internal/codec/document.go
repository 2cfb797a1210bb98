package codec

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/CodexForgeBR/reltime/internal/expr"
)

var (
	// ErrNotMapping is returned when a document root is not a mapping.
	ErrNotMapping = errors.New("document must be a mapping of names to expressions")
	// ErrDuplicateName is returned when a document repeats a name.
	ErrDuplicateName = errors.New("duplicate name")
)

// Entry is one named expression in a Document.
type Entry struct {
	Name       string
	Expression expr.Expression
}

// Document is an ordered list of named expressions, such as
//
//	standup: Monday
//	deploy: 25/12 17:00
//
// JSON objects decode too, since JSON is a subset of YAML. File order is kept.
type Document []Entry

// Lookup returns the expression named name.
func (d Document) Lookup(name string) (expr.Expression, bool) {
	for _, e := range d {
		if e.Name == name {
			return e.Expression, true
		}
	}
	return nil, false
}

// Names returns the entry names in order.
func (d Document) Names() []string {
	out := make([]string, len(d))
	for i, e := range d {
		out[i] = e.Name
	}
	return out
}

// DecodeDocument parses a YAML or JSON mapping. Errors name the entry and
// its line.
func (c Codec) DecodeDocument(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if root.Kind == 0 {
		return Document{}, nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	mapping := root.Content[0]
	doc := make(Document, 0, len(mapping.Content)/2)
	seen := make(map[string]bool, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if seen[key.Value] {
			return nil, fmt.Errorf("%q (line %d): %w", key.Value, key.Line, ErrDuplicateName)
		}
		seen[key.Value] = true

		e, err := c.decodeNode(value)
		if err != nil {
			return nil, fmt.Errorf("%q (line %d): %w", key.Value, value.Line, err)
		}
		doc = append(doc, Entry{Name: key.Value, Expression: e})
	}
	return doc, nil
}

// EncodeDocument writes doc as a YAML mapping in entry order.
func (c Codec) EncodeDocument(doc Document) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range doc {
		if e.Expression == nil {
			return nil, fmt.Errorf("%q: %w", e.Name, ErrNilExpression)
		}
		value := &yaml.Node{}
		if err := value.Encode(ToNatural(e.Expression)); err != nil {
			return nil, fmt.Errorf("%q: %w", e.Name, err)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			value,
		)
	}
	return yaml.Marshal(mapping)
}
