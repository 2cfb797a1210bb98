package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/reltime/internal/expr"
)

func TestDecodeDocument_YAMLKeepsOrder(t *testing.T) {
	input := `
standup: Monday
deploy: 25/12 17:00
lunch: "12:00"
review: ThisWeek
`
	doc, err := Codec{}.DecodeDocument([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"standup", "deploy", "lunch", "review"}, doc.Names())

	e, ok := doc.Lookup("lunch")
	require.True(t, ok)
	assert.Equal(t, expr.ExactTime{Hour: 12}, e)

	_, ok = doc.Lookup("missing")
	assert.False(t, ok)
}

func TestDecodeDocument_JSON(t *testing.T) {
	doc, err := Codec{}.DecodeDocument([]byte(`{"b": "Friday", "a": "May"}`))
	require.NoError(t, err)
	assert.Equal(t, Document{
		{Name: "b", Expression: expr.Weekday(time.Friday)},
		{Name: "a", Expression: expr.Month(time.May)},
	}, doc)
}

func TestDecodeDocument_Empty(t *testing.T) {
	doc, err := Codec{}.DecodeDocument(nil)
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestDecodeDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		contain string
	}{
		{"not a mapping", "- Monday\n", ErrNotMapping, ""},
		{"duplicate", "a: Monday\na: Friday\n", ErrDuplicateName, `"a" (line 2)`},
		{"bad value", "a: Monday\nb: 31/2\n", expr.ErrInvalidCalendarDate, `"b" (line 2)`},
		{"nested", "a:\n  b: Monday\n", ErrNotScalar, `"a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Codec{}.DecodeDocument([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
			assert.Contains(t, err.Error(), tt.contain)
		})
	}
}

func TestEncodeDocument_RoundTrip(t *testing.T) {
	doc := Document{
		{Name: "z", Expression: expr.ExactTime{Hour: 9, Minute: 30}},
		{Name: "a", Expression: expr.Tomorrow},
		{Name: "m", Expression: expr.ExactDate{Day: 29, Month: 2}},
		{Name: "t", Expression: expr.Timestamp{Time: time.Date(2025, 7, 29, 10, 30, 5, 0, time.UTC)}},
	}

	data, err := Codec{}.EncodeDocument(doc)
	require.NoError(t, err)

	back, err := Codec{}.DecodeDocument(data)
	require.NoError(t, err)
	require.Len(t, back, len(doc))
	assert.Equal(t, doc.Names(), back.Names())
	for i := range doc {
		assert.Equal(t, doc[i].Expression.String(), back[i].Expression.String())
	}
}

func TestEncodeDocument_NilExpression(t *testing.T) {
	_, err := Codec{}.EncodeDocument(Document{{Name: "x"}})
	assert.True(t, errors.Is(err, ErrNilExpression))
}
