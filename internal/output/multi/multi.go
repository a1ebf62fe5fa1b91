package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/dateline/internal/model"
	"github.com/crimson-sun/dateline/internal/output"
)

// Multi fans out documents to multiple output.Output implementations.
// A failing output does not stop delivery to the rest; errors are joined.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

func (m *Multi) Write(ctx context.Context, doc model.Document) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, doc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
