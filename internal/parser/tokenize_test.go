package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/crimson-sun/dateline/internal/model"
)

func TestTokenizeTwelveHour(t *testing.T) {
	fields, err := Tokenize("Tue Mar 23 08:45:29 PM UTC 2021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.RawFields{
		"weekday":  "Tue",
		"month":    "Mar",
		"day":      "23",
		"hour":     "08",
		"minute":   "45",
		"second":   "29",
		"period":   "PM",
		"timezone": "UTC",
		"year":     "2021",
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("got %v, want %v", fields, want)
	}
}

func TestTokenizeTwentyFourHour(t *testing.T) {
	fields, err := Tokenize("Tue Mar 23 20:45:29 UTC 2021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.RawFields{
		"weekday":  "Tue",
		"month":    "Mar",
		"day":      "23",
		"hour":     "20",
		"minute":   "45",
		"second":   "29",
		"timezone": "UTC",
		"year":     "2021",
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("got %v, want %v", fields, want)
	}
	if _, ok := fields["period"]; ok {
		t.Fatal("period should be absent for 24-hour output")
	}
}

func TestTokenizeLowercaseMarker(t *testing.T) {
	fields, err := Tokenize("Tue Mar 23 08:45:29 pm UTC 2021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["period"] != "pm" {
		t.Fatalf("expected period token preserved as 'pm', got %q", fields["period"])
	}
	if fields["year"] != "2021" {
		t.Fatalf("expected 12-hour extraction, got year %q", fields["year"])
	}
}

func TestTokenizeBlank(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  \n"} {
		fields, err := Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q): unexpected error: %v", input, err)
		}
		if !fields.Empty() {
			t.Fatalf("Tokenize(%q): expected empty fields, got %v", input, fields)
		}
	}
}

func TestTokenizeExtraTokensIgnored(t *testing.T) {
	// Nine tokens without a marker fall through to positional 24-hour
	// extraction; the trailing token is ignored.
	fields, err := Tokenize("Tue Mar 23 20:45:29 UTC 2021 trailing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["year"] != "2021" {
		t.Fatalf("expected year 2021, got %q", fields["year"])
	}
	if fields["timezone"] != "UTC" {
		t.Fatalf("expected timezone UTC, got %q", fields["timezone"])
	}
}

func TestTokenizeTooFewFields(t *testing.T) {
	_, err := Tokenize("Tue Mar 23")
	if !errors.Is(err, ErrTooFewFields) {
		t.Fatalf("expected ErrTooFewFields, got %v", err)
	}
}

func TestTokenizeColonNormalization(t *testing.T) {
	// Each colon becomes a token boundary, so a bare clock splits in three.
	fields, err := Tokenize("Tue Mar 23 20:45:29 UTC 2021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["hour"] != "20" || fields["minute"] != "45" || fields["second"] != "29" {
		t.Fatalf("clock not split on colons: %v", fields)
	}
}
