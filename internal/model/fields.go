package model

// Field names produced by the tokenizer. The set is fixed by the output
// schema; FieldPeriod is present only for 12-hour locale output.
const (
	FieldYear     = "year"
	FieldMonth    = "month"
	FieldDay      = "day"
	FieldWeekday  = "weekday"
	FieldHour     = "hour"
	FieldMinute   = "minute"
	FieldSecond   = "second"
	FieldPeriod   = "period"
	FieldTimezone = "timezone"
)

// RawFields is the intermediate type produced by the tokenizer and consumed
// by the normalizer — a flat mapping of field name to the raw string token.
// Blank input yields an empty (or nil) RawFields.
type RawFields map[string]string

// Empty reports whether no fields were extracted.
func (f RawFields) Empty() bool {
	return len(f) == 0
}

// Document converts the raw mapping into the serialization shape handed to
// outputs, preserving the tokens unmodified.
func (f RawFields) Document() Document {
	doc := make(Document, len(f))
	for k, v := range f {
		doc[k] = v
	}
	return doc
}
