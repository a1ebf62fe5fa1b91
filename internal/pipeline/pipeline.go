package pipeline

import (
	"context"
	"fmt"

	"github.com/crimson-sun/dateline/internal/output"
	"github.com/crimson-sun/dateline/internal/parser"
	"github.com/crimson-sun/dateline/internal/source"
)

// Pipeline connects a source, the parser, and an output into a one-shot run:
// read the blob, parse it, write the document.
type Pipeline struct {
	source source.Source
	output output.Output
	opts   parser.Options
}

// New creates a Pipeline from the given components.
func New(src source.Source, out output.Output, opts parser.Options) *Pipeline {
	return &Pipeline{
		source: src,
		output: out,
		opts:   opts,
	}
}

// Run reads one text blob, parses it, and writes the resulting document.
func (p *Pipeline) Run(ctx context.Context, cfg source.Config) error {
	text, err := p.source.Read(ctx, cfg)
	if err != nil {
		return fmt.Errorf("pipeline read: %w", err)
	}
	doc, err := parser.Parse(text, p.opts)
	if err != nil {
		return fmt.Errorf("pipeline parse: %w", err)
	}
	if err := p.output.Write(ctx, doc); err != nil {
		return fmt.Errorf("pipeline output: %w", err)
	}
	return nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
