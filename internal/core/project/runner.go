package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner executes an external program and blocks until it exits.
type CommandRunner interface {
	// Run executes name with args in dir. A non-zero exit status is an error.
	Run(ctx context.Context, dir, name string, args ...string) error
}

// Compile-time interface compliance check.
var _ CommandRunner = (*ExecRunner)(nil)

// ExecRunner runs commands with os/exec. Standard input and output are
// discarded; standard error is forwarded so generator diagnostics stay
// visible to the user.
type ExecRunner struct {
	stderr io.Writer
	logger *slog.Logger
}

// NewExecRunner creates an ExecRunner. A nil stderr forwards to os.Stderr;
// a nil logger discards log output.
func NewExecRunner(stderr io.Writer, logger *slog.Logger) *ExecRunner {
	if stderr == nil {
		stderr = os.Stderr
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{stderr: stderr, logger: logger}
}

// Run implements CommandRunner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stderr = r.stderr

	r.logger.Debug("running command", "dir", dir, "cmd", name, "args", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
