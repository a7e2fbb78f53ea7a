package nextflow

import (
	"context"
	"os"
	"os/exec"
)

// CommandRunner abstracts engine execution for testing.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// osCommandRunner is the real implementation using os/exec. The child
// inherits the launcher's stdio so engine output streams straight through
// to the terminal.
type osCommandRunner struct{}

func (r *osCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
