package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"

	"github.com/crimson-sun/dateline/internal/model"
)

const defaultBufSize = 4 * 1024

// Output appends JSON lines to a file with buffered I/O, keeping a running
// log of parsed records across invocations.
type Output struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// New creates a file output appending to the given path.
func New(path string) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	return &Output{f: f, w: bufio.NewWriterSize(f, defaultBufSize)}, nil
}

// Write JSON-encodes the document and appends it as one line.
func (o *Output) Write(_ context.Context, doc model.Document) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
