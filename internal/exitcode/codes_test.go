package exitcode_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/reltime/internal/exitcode"
	"github.com/CodexForgeBR/reltime/internal/expr"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", exitcode.Success, 0},
		{"Error", exitcode.Error, 1},
		{"Unrecognized", exitcode.Unrecognized, 2},
		{"InvalidDate", exitcode.InvalidDate, 3},
		{"InvalidTime", exitcode.InvalidTime, 4},
		{"Interrupted", exitcode.Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code)
		})
	}
}

func TestExitCodeNames(t *testing.T) {
	tests := []struct {
		code         int
		expectedName string
	}{
		{exitcode.Success, "Success"},
		{exitcode.Error, "Error"},
		{exitcode.Unrecognized, "Unrecognized"},
		{exitcode.InvalidDate, "InvalidDate"},
		{exitcode.InvalidTime, "InvalidTime"},
		{exitcode.Interrupted, "Interrupted"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedName, func(t *testing.T) {
			assert.Equal(t, tt.expectedName, exitcode.Name(tt.code))
		})
	}
}

func TestExitCodeNameUnknown(t *testing.T) {
	assert.Equal(t, "unknown", exitcode.Name(99))
	assert.Equal(t, "unknown", exitcode.Name(-1))
	assert.Equal(t, "unknown", exitcode.Name(7))
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, exitcode.Success},
		{"canceled", fmt.Errorf("wait: %w", context.Canceled), exitcode.Interrupted},
		{"unrecognized", fmt.Errorf("min: %w", expr.ErrUnrecognizedExpression), exitcode.Unrecognized},
		{"invalid date", fmt.Errorf("x: %w", expr.ErrInvalidCalendarDate), exitcode.InvalidDate},
		{"invalid time", expr.ErrInvalidTimeOfDay, exitcode.InvalidTime},
		{"other", errors.New("boom"), exitcode.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitcode.FromError(tt.err))
		})
	}
}
