package stdin

import (
	"context"
	"strings"
	"testing"

	"github.com/crimson-sun/dateline/internal/source"
)

func TestRead(t *testing.T) {
	const content = "Tue Mar 23 08:45:29 PM UTC 2021\n"
	src := New(strings.NewReader(content))

	got, err := src.Read(context.Background(), source.Config{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != content {
		t.Fatalf("expected blob passed through unmodified, got %q", got)
	}
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := New(strings.NewReader("unused"))
	if _, err := src.Read(ctx, source.Config{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestRegistered(t *testing.T) {
	ctor, err := source.Get("stdin")
	if err != nil {
		t.Fatalf("stdin source not registered: %v", err)
	}
	if ctor() == nil {
		t.Fatal("constructor returned nil source")
	}
}
