package dateline

import (
	"github.com/crimson-sun/dateline/internal/model"
	"github.com/crimson-sun/dateline/internal/parser"
)

// Record is a normalized, typed rendition of one line of `date` output.
type Record = model.Record

// RawFields is the unprocessed token mapping (field name to raw string).
type RawFields = model.RawFields

// Document is the flat serialization form: either raw tokens, a normalized
// record, or empty for blank input.
type Document = model.Document

// Parse converts `date` output into a Document. With WithRaw the tokens are
// returned unprocessed; otherwise the document carries the normalized record.
// Blank input returns an empty Document and no error.
func Parse(text string, opts ...Option) (Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return parser.Parse(text, o.parser)
}

// ParseRecord converts `date` output into a typed Record. Blank input
// returns (nil, nil). WithRaw has no effect here.
func ParseRecord(text string, opts ...Option) (*Record, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fields, err := parser.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return parser.Normalize(fields, o.parser.Location)
}

// Tokenize exposes the first stage alone: the raw field mapping for one
// line, or empty fields for blank input.
func Tokenize(text string) (RawFields, error) {
	return parser.Tokenize(text)
}
