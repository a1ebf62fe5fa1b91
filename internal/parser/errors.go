package parser

import "errors"

// Parse failures fall into a small fixed taxonomy. Each sentinel is wrapped
// with field-level context at the point of failure; match with errors.Is.
var (
	// ErrTooFewFields: the line has fewer tokens than the detected layout.
	ErrTooFewFields = errors.New("too few fields")

	// ErrBadNumber: a numeric field contains non-digit content.
	ErrBadNumber = errors.New("invalid number")

	// ErrUnknownMonth: month abbreviation not in the fixed 12-entry table.
	ErrUnknownMonth = errors.New("unknown month abbreviation")

	// ErrUnknownWeekday: weekday abbreviation not in the fixed 7-entry table.
	ErrUnknownWeekday = errors.New("unknown weekday abbreviation")

	// ErrBadDate: the components do not form a valid calendar instant.
	ErrBadDate = errors.New("invalid calendar date")
)
