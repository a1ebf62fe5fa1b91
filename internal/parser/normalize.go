package parser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/crimson-sun/dateline/internal/model"
)

// ISO 8601 month numberings.
var monthNum = map[string]int{
	"Jan": 1,
	"Feb": 2,
	"Mar": 3,
	"Apr": 4,
	"May": 5,
	"Jun": 6,
	"Jul": 7,
	"Aug": 8,
	"Sep": 9,
	"Oct": 10,
	"Nov": 11,
	"Dec": 12,
}

// ISO 8601 weekday numberings, Monday first.
var weekdayNum = map[string]int{
	"Mon": 1,
	"Tue": 2,
	"Wed": 3,
	"Thu": 4,
	"Fri": 5,
	"Sat": 6,
	"Sun": 7,
}

// Normalize converts raw tokens into a typed record: integer fields parsed,
// month/weekday resolved against the fixed tables, the hour reduced to a
// 24-hour value, and epoch timestamps derived.
//
// The naive epoch interprets the components in loc; nil means the host's
// local timezone, which is what the `date` command printed in. The UTC epoch
// is computed only when the timezone token is exactly "UTC" — other
// abbreviations are ambiguous and left unconverted.
//
// Empty fields are the documented no-data case and return (nil, nil).
func Normalize(fields model.RawFields, loc *time.Location) (*model.Record, error) {
	if fields.Empty() {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	year, err := intField(fields, model.FieldYear)
	if err != nil {
		return nil, err
	}
	day, err := intField(fields, model.FieldDay)
	if err != nil {
		return nil, err
	}
	hour, err := intField(fields, model.FieldHour)
	if err != nil {
		return nil, err
	}
	minute, err := intField(fields, model.FieldMinute)
	if err != nil {
		return nil, err
	}
	second, err := intField(fields, model.FieldSecond)
	if err != nil {
		return nil, err
	}

	month := fields[model.FieldMonth]
	monthN, ok := monthNum[month]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMonth, month)
	}
	weekday := fields[model.FieldWeekday]
	weekdayN, ok := weekdayNum[weekday]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, weekday)
	}

	// 12 vs. 24 hour normalization. 12 PM is noon and 12 AM is midnight;
	// the >23 clamp keeps noon at 12 rather than 24.
	hour24 := hour
	var period *string
	if p, ok := fields[model.FieldPeriod]; ok && p != "" {
		u := upperCase(p)
		switch u {
		case "PM":
			hour24 = hour + 12
			if hour24 > 23 {
				hour24 = 12
			}
		case "AM":
			if hour == 12 {
				hour24 = 0
			}
		}
		period = &u
	}

	if err := validateClock(hour24, minute, second); err != nil {
		return nil, err
	}
	// Day validation round-trips through time.Date, which normalizes
	// out-of-range days (Apr 31 becomes May 1) instead of failing. The check
	// runs in UTC so DST gaps in loc cannot shift the day.
	probe := time.Date(year, time.Month(monthN), day, 0, 0, 0, 0, time.UTC)
	if probe.Year() != year || probe.Month() != time.Month(monthN) || probe.Day() != day {
		return nil, fmt.Errorf("%w: %s %d, %d", ErrBadDate, month, day, year)
	}

	rec := &model.Record{
		Year:       year,
		MonthNum:   monthN,
		Day:        day,
		Hour:       hour,
		Hour24:     hour24,
		Minute:     minute,
		Second:     second,
		Period:     period,
		Month:      month,
		Weekday:    weekday,
		WeekdayNum: weekdayN,
		Timezone:   fields[model.FieldTimezone],
		Epoch:      time.Date(year, time.Month(monthN), day, hour24, minute, second, 0, loc).Unix(),
	}
	if rec.Timezone == "UTC" {
		utc := time.Date(year, time.Month(monthN), day, hour24, minute, second, 0, time.UTC).Unix()
		rec.EpochUTC = &utc
	}
	return rec, nil
}

// intField parses a required unsigned decimal field.
func intField(fields model.RawFields, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrTooFewFields, name)
	}
	n, err := strconv.ParseUint(raw, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadNumber, name, raw)
	}
	return int(n), nil
}

func validateClock(hour24, minute, second int) error {
	if hour24 > 23 {
		return fmt.Errorf("%w: hour %d out of range", ErrBadDate, hour24)
	}
	if minute > 59 {
		return fmt.Errorf("%w: minute %d out of range", ErrBadDate, minute)
	}
	if second > 59 {
		return fmt.Errorf("%w: second %d out of range", ErrBadDate, second)
	}
	return nil
}
