package dateline

import "github.com/crimson-sun/dateline/internal/parser"

// Sentinel errors re-exported for callers; match with errors.Is.
var (
	ErrTooFewFields   = parser.ErrTooFewFields
	ErrBadNumber      = parser.ErrBadNumber
	ErrUnknownMonth   = parser.ErrUnknownMonth
	ErrUnknownWeekday = parser.ErrUnknownWeekday
	ErrBadDate        = parser.ErrBadDate
)
