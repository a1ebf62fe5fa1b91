// Package dateline parses the output of the system `date` command into
// structured data with derived POSIX timestamps.
//
// Quick start:
//
//	rec, err := dateline.ParseRecord("Tue Mar 23 20:45:29 UTC 2021")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rec.Year, rec.Hour24, *rec.EpochUTC) // 2021 20 1616532329
//
// Both of the `date` locale layouts are recognized: the C-locale 24-hour
// form and the en_US-style 12-hour form with an AM/PM marker. The epoch
// field is naive (interpreted in the host's local timezone unless
// WithLocation overrides it); epoch_utc is derived only when the printed
// timezone is exactly "UTC".
//
// Parsing is stateless and safe for concurrent use.
package dateline
