package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/crimson-sun/dateline/internal/model"
)

func testDocument() model.Document {
	return model.Document{
		"year":      2021,
		"month_num": 3,
		"day":       23,
		"hour_24":   20,
		"timezone":  "UTC",
		"epoch_utc": int64(1616532329),
	}
}

// captureStdout redirects os.Stdout to capture output.
func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestOutputCompactJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(false)
		out.Write(context.Background(), testDocument())
	})

	// Should be a single line.
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["timezone"] != "UTC" {
		t.Fatalf("expected timezone=UTC, got %v", m["timezone"])
	}
	if m["epoch_utc"] != float64(1616532329) {
		t.Fatalf("expected epoch_utc, got %v", m["epoch_utc"])
	}
}

func TestOutputPrettyJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(true)
		out.Write(context.Background(), testDocument())
	})

	// Pretty JSON should have multiple lines with indentation.
	if !strings.Contains(result, "  ") {
		t.Fatal("expected indented output for pretty mode")
	}
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected multi-line pretty output, got %d lines", len(lines))
	}
}

func TestOutputEmptyDocument(t *testing.T) {
	result := captureStdout(func() {
		out := New(false)
		out.Write(context.Background(), model.Document{})
	})

	if strings.TrimSpace(result) != "{}" {
		t.Fatalf("expected empty object for blank input, got %q", result)
	}
}
