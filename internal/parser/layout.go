package parser

// Layout identifies which of the two fixed token orderings a `date` line
// uses. GNU date switches between them based on locale: en_US-style locales
// print a 12-hour clock with an AM/PM marker, the C locale prints 24-hour.
type Layout int

const (
	// TwentyFourHour is the C-locale ordering:
	// weekday month day hour minute second timezone year
	TwentyFourHour Layout = iota

	// TwelveHour is the en_US-style ordering:
	// weekday month day hour minute second period timezone year
	TwelveHour
)

func (l Layout) String() string {
	switch l {
	case TwelveHour:
		return "12-hour"
	default:
		return "24-hour"
	}
}

// twelveHourTokens is the exact token count of the 12-hour layout after
// colon normalization. Token counts are not otherwise validated; the
// 24-hour branch is the fallback for every other count.
const twelveHourTokens = 9

// minTwentyFourHourTokens is the smallest token count the 24-hour layout
// can be extracted from.
const minTwentyFourHourTokens = 8

// DetectLayout selects the layout for a tokenized line: exactly nine tokens
// with an AM/PM marker means 12-hour, anything else is treated as 24-hour.
func DetectLayout(tokens []string) Layout {
	if len(tokens) != twelveHourTokens {
		return TwentyFourHour
	}
	for _, tok := range tokens {
		if isPeriodToken(tok) {
			return TwelveHour
		}
	}
	return TwentyFourHour
}
