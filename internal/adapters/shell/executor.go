// Package shell runs the external graph rebuild command.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/otpsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// buildDirective is the fixed argument passed before the graph
// directory when invoking the rebuild command.
const buildDirective = "--build"

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute invokes the rebuild command with the build directive and the
// graph directory, writing the combined stdout/stderr to output. It
// blocks until the child process exits; the exit code is the sole
// success signal.
func (e *Executor) Execute(ctx context.Context, command, graphDir string, output io.Writer) error {
	cmd := exec.CommandContext(ctx, command, buildDirective, graphDir) //nolint:gosec // Command comes from resolved run options
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(err, domain.ErrRebuildFailed.Error())
		wrapped = zerr.With(wrapped, "command", command)
		return zerr.With(wrapped, "exit_code", exitCode)
	}

	return nil
}
