package stdin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/dateline/internal/source"
)

func init() {
	source.Register("stdin", func() source.Source {
		return &Source{r: os.Stdin}
	})
}

// Source implements the source.Source interface over standard input,
// the usual home of piped `date` output.
type Source struct {
	r io.Reader
}

// New creates a stdin source reading from r. The registry constructor wires
// os.Stdin; tests can supply their own reader.
func New(r io.Reader) *Source {
	return &Source{r: r}
}

func (s *Source) Read(ctx context.Context, _ source.Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(s.r)
	if err != nil {
		return "", fmt.Errorf("stdin source: %w", err)
	}
	return string(data), nil
}
