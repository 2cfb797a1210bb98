//go:build !noswedish

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/reltime/internal/exitcode"
)

func TestSwedishKeywords(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default locales", []string{"min", "måndag"}, "2025-08-04T00:00:00Z"},
		{"alias", []string{"range", "nästa", "vecka"}, "2025-08-04T00:00:00Z/2025-08-11T00:00:00Z"},
		{"selected", []string{"-l", "sv", "min", "Imorgon"}, "2025-07-31T00:00:00Z"},
		{"describe", []string{"-l", "sv", "describe", "2025-08-01T00:00:00Z"}, "Imorgon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := execute(t, tt.args...)
			require.Equal(t, exitcode.Success, code, stderr)
			assert.Equal(t, tt.expected+"\n", out)
		})
	}
}

func TestSwedishKeywords_ExcludedLocale(t *testing.T) {
	code, _, _ := execute(t, "-l", "en", "min", "måndag")
	assert.Equal(t, exitcode.Unrecognized, code)
}

func TestSwedishKeywords_Verbose(t *testing.T) {
	code, _, stderr := execute(t, "-v", "min", "Fredag")
	require.Equal(t, exitcode.Success, code)
	assert.Contains(t, stderr, "Expression: Friday (Weekday, Svenska)")
}
