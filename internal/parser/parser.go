// Package parser converts `date` command output into structured data.
//
// Parsing is a pure two-stage transformation: Tokenize maps the line's
// whitespace-delimited tokens onto named fields according to one of two
// fixed locale layouts, and Normalize turns those raw strings into a typed
// record with derived epoch timestamps. Both stages are stateless and safe
// for concurrent use.
package parser

import (
	"time"

	"github.com/crimson-sun/dateline/internal/model"
)

// Options control a Parse call.
type Options struct {
	// Raw returns the unprocessed token mapping instead of the
	// normalized record.
	Raw bool

	// Location is the timezone the naive epoch is interpreted in.
	// Nil means the host's local timezone.
	Location *time.Location
}

// Parse is the main entry point: tokenize, then (unless opts.Raw) normalize.
// Blank input returns an empty document in both modes.
func Parse(text string, opts Options) (model.Document, error) {
	fields, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if opts.Raw {
		return fields.Document(), nil
	}
	rec, err := Normalize(fields, opts.Location)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return model.Document{}, nil
	}
	return rec.Document(), nil
}
