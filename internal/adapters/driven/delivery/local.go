package delivery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
)

// Compile-time check that LocalSink implements the DeliverySink interface.
var _ driven.DeliverySink = (*LocalSink)(nil)

// LocalSink writes reports to a directory on the local filesystem.
type LocalSink struct {
	dir string
}

// NewLocalSink creates a sink writing into dir, creating the directory if it
// does not exist. An empty dir means the current working directory.
func NewLocalSink(dir string) (*LocalSink, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}
	return &LocalSink{dir: dir}, nil
}

// NewLocalDialer returns a SinkDialer producing LocalSinks for dir.
func NewLocalDialer(dir string) driven.SinkDialer {
	return func(ctx context.Context) (driven.DeliverySink, error) {
		return NewLocalSink(dir)
	}
}

// Deliver removes any previous report with the same name, then writes the
// payload. A missing previous report is not an error.
func (s *LocalSink) Deliver(ctx context.Context, name string, payload []byte) error {
	path := filepath.Join(s.dir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove previous report: %w", err)
	}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
