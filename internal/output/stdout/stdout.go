package stdout

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/crimson-sun/dateline/internal/model"
)

// Output writes JSON-encoded documents to stdout.
type Output struct {
	enc *json.Encoder
}

// New creates a stdout Output, optionally pretty-printing the JSON.
// Compact output is one document per line.
func New(pretty bool) *Output {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, doc model.Document) error {
	if err := o.enc.Encode(doc); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
