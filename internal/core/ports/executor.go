package ports

import (
	"context"
	"io"
)

// Executor runs the external graph rebuild command.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute invokes command with the build directive and the graph
	// directory as arguments, writing the combined stdout/stderr to
	// output. A non-zero exit status is returned as an error wrapping
	// domain.ErrRebuildFailed carrying the exit code; the exit code is
	// the only consumed signal.
	Execute(ctx context.Context, command, graphDir string, output io.Writer) error
}
