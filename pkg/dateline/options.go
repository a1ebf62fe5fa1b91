package dateline

import (
	"time"

	"github.com/crimson-sun/dateline/internal/parser"
)

type options struct {
	parser parser.Options
}

// Option configures a Parse call.
type Option func(*options)

// WithRaw makes Parse return the unprocessed token mapping instead of the
// normalized record.
func WithRaw() Option {
	return func(o *options) {
		o.parser.Raw = true
	}
}

// WithLocation sets the timezone the naive epoch is interpreted in.
// Default: the host's local timezone, matching what `date` printed.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.parser.Location = loc
	}
}

func defaultOptions() options {
	return options{}
}
