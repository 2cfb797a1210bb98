//go:build !noswedish

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/reltime/internal/locale"
)

func TestJSON_IncludesSwedishSpellings(t *testing.T) {
	defs := decode(t, locale.Default())["$defs"].(map[string]any)

	weekdays := defs[DefWeekday].(map[string]any)["enum"].([]any)
	assert.Len(t, weekdays, 14)
	assert.Equal(t, "Monday", weekdays[0])
	assert.Contains(t, weekdays, "Måndag")

	// April, September, November and December are shared.
	months := defs[DefMonth].(map[string]any)["enum"].([]any)
	assert.Len(t, months, 20)

	relative := defs[DefRelative].(map[string]any)["enum"].([]any)
	assert.Contains(t, relative, "NästaVecka")
}

func TestJSON_SwedishOnlyStillListsEnglish(t *testing.T) {
	defs := decode(t, locale.Set{locale.Swedish()})["$defs"].(map[string]any)
	weekdays := defs[DefWeekday].(map[string]any)["enum"].([]any)
	assert.Equal(t, "Monday", weekdays[0])
	assert.Contains(t, weekdays, "Söndag")
}
