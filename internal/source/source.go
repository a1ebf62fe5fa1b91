package source

import "context"

// Source defines the interface all text sources must implement. A source
// supplies the single bounded blob of `date` output that one run parses.
type Source interface {
	// Read returns the raw text blob. Implementations must not parse or
	// trim it; blank input is meaningful downstream.
	Read(ctx context.Context, cfg Config) (string, error)
}

// Config holds source-specific settings.
type Config struct {
	Provider string
	Path     string // file path, for sources that read from disk
}
