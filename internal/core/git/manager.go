package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Client runs git commands through the system git binary.
type Client struct {
	logger *slog.Logger
}

// NewClient creates a Client. A nil logger discards all output.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{logger: logger.With("module", "git")}
}

// InitialCommit initializes a repository in dir, stages every file and
// records a single commit with the given message.
func (c *Client) InitialCommit(ctx context.Context, dir, message string) error {
	steps := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", message},
	}

	for _, args := range steps {
		c.logger.Debug("running git", "dir", dir, "args", args)
		if _, err := execGit(ctx, dir, args...); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	c.logger.Debug("initial commit created", "dir", dir)
	return nil
}

// ConfigValue returns the effective value of a git config key as seen from
// dir. An empty dir uses the current working directory. A key without a
// value yields ErrConfigKeyNotSet.
func (c *Client) ConfigValue(ctx context.Context, dir, key string) (string, error) {
	out, err := execGit(ctx, dir, "config", "--get", key)
	if err != nil {
		// git config --get exits 1 when the key is missing.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", fmt.Errorf("%w: %s", ErrConfigKeyNotSet, key)
		}
		return "", err
	}

	value := strings.TrimSpace(out)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrConfigKeyNotSet, key)
	}
	return value, nil
}

// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
