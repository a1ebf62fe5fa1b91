package model

// Record is dateline's output type — a normalized, typed rendition of one
// line of `date` command output.
type Record struct {
	Year       int     `json:"year"`
	MonthNum   int     `json:"month_num"` // ISO 8601, Jan=1
	Day        int     `json:"day"`
	Hour       int     `json:"hour"`    // hour as originally printed (1-12 or 0-23)
	Hour24     int     `json:"hour_24"` // hour converted to a 24-hour value
	Minute     int     `json:"minute"`
	Second     int     `json:"second"`
	Period     *string `json:"period"` // "AM" or "PM"; nil for 24-hour output
	Month      string  `json:"month"`  // three-letter abbreviation as printed
	Weekday    string  `json:"weekday"`
	WeekdayNum int     `json:"weekday_num"` // ISO 8601, Mon=1
	Timezone   string  `json:"timezone"`
	Epoch      int64   `json:"epoch"`               // naive timestamp (host-local offset)
	EpochUTC   *int64  `json:"epoch_utc,omitempty"` // set only when Timezone is exactly "UTC"
}

// Document is the serialization shape handed to outputs: either a raw token
// mapping, a normalized record, or empty for blank input.
type Document map[string]any

// Document flattens the record into output form. epoch_utc is the only
// conditionally present key.
func (r *Record) Document() Document {
	doc := Document{
		"year":        r.Year,
		"month_num":   r.MonthNum,
		"day":         r.Day,
		"hour":        r.Hour,
		"hour_24":     r.Hour24,
		"minute":      r.Minute,
		"second":      r.Second,
		"month":       r.Month,
		"weekday":     r.Weekday,
		"weekday_num": r.WeekdayNum,
		"timezone":    r.Timezone,
		"epoch":       r.Epoch,
	}
	if r.Period != nil {
		doc["period"] = *r.Period
	} else {
		doc["period"] = nil
	}
	if r.EpochUTC != nil {
		doc["epoch_utc"] = *r.EpochUTC
	}
	return doc
}
