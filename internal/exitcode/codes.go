// Package exitcode defines named exit codes for the reltime CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

import (
	"context"
	"errors"

	"github.com/CodexForgeBR/reltime/internal/expr"
)

// Exit code constants.
const (
	Success      = 0   // Expression resolved and printed
	Error        = 1   // Invalid args, file not found, misconfiguration
	Unrecognized = 2   // Text matched no numeric form or keyword
	InvalidDate  = 3   // Well-formed date that does not exist
	InvalidTime  = 4   // Hour, minute or second out of range
	Interrupted  = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Unrecognized:
		return "Unrecognized"
	case InvalidDate:
		return "InvalidDate"
	case InvalidTime:
		return "InvalidTime"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}

// FromError maps an error returned by a command to its exit code.
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, context.Canceled):
		return Interrupted
	case errors.Is(err, expr.ErrUnrecognizedExpression):
		return Unrecognized
	case errors.Is(err, expr.ErrInvalidCalendarDate):
		return InvalidDate
	case errors.Is(err, expr.ErrInvalidTimeOfDay):
		return InvalidTime
	default:
		return Error
	}
}
