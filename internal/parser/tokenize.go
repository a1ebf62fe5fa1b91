package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crimson-sun/dateline/internal/model"
)

// upperCase folds a token to upper case. A cases.Caser carries state, so a
// fresh one is built per call to keep parsing safe for concurrent use.
func upperCase(s string) string {
	return cases.Upper(language.English).String(s)
}

// isPeriodToken reports whether a token is an AM/PM marker, ignoring case.
func isPeriodToken(tok string) bool {
	u := upperCase(tok)
	return u == "AM" || u == "PM"
}

// Tokenize splits one line of `date` output into named raw fields.
//
// Colons are normalized to spaces first, so the clock contributes three
// separate tokens. Blank input yields empty fields and no error. Extraction
// is positional per layout; tokens beyond the layout's last index are
// ignored, and too few tokens for even the 24-hour layout is an error.
func Tokenize(text string) (model.RawFields, error) {
	tokens := strings.Fields(strings.ReplaceAll(text, ":", " "))
	if len(tokens) == 0 {
		return nil, nil
	}

	layout := DetectLayout(tokens)
	if layout == TwelveHour {
		return model.RawFields{
			model.FieldWeekday:  tokens[0],
			model.FieldMonth:    tokens[1],
			model.FieldDay:      tokens[2],
			model.FieldHour:     tokens[3],
			model.FieldMinute:   tokens[4],
			model.FieldSecond:   tokens[5],
			model.FieldPeriod:   tokens[6],
			model.FieldTimezone: tokens[7],
			model.FieldYear:     tokens[8],
		}, nil
	}

	if len(tokens) < minTwentyFourHourTokens {
		return nil, fmt.Errorf("%w: got %d tokens, %s layout needs %d",
			ErrTooFewFields, len(tokens), layout, minTwentyFourHourTokens)
	}
	return model.RawFields{
		model.FieldWeekday:  tokens[0],
		model.FieldMonth:    tokens[1],
		model.FieldDay:      tokens[2],
		model.FieldHour:     tokens[3],
		model.FieldMinute:   tokens[4],
		model.FieldSecond:   tokens[5],
		model.FieldTimezone: tokens[6],
		model.FieldYear:     tokens[7],
	}, nil
}
