package output

import (
	"context"

	"github.com/crimson-sun/dateline/internal/model"
)

// Output defines the interface for parsed document destinations.
type Output interface {
	Write(ctx context.Context, doc model.Document) error
	Close() error
}
