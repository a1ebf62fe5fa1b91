package file

import (
	"context"
	"fmt"
	"os"

	"github.com/crimson-sun/dateline/internal/source"
)

func init() {
	source.Register("file", func() source.Source {
		return &Source{}
	})
}

// Source implements the source.Source interface over a file on disk,
// for captured `date` output.
type Source struct{}

func (s *Source) Read(ctx context.Context, cfg source.Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if cfg.Path == "" {
		return "", fmt.Errorf("file source: no path configured")
	}
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return "", fmt.Errorf("file source: %w", err)
	}
	return string(data), nil
}
