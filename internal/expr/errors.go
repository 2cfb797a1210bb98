package expr

import "errors"

// Error kinds shared by construction and parsing. Match with errors.Is.
var (
	// ErrUnrecognizedExpression means no numeric form and no keyword matched.
	ErrUnrecognizedExpression = errors.New("unrecognized expression")
	// ErrInvalidCalendarDate means a well-formed date does not exist.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	// ErrInvalidTimeOfDay means an hour, minute or second is out of range.
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)
