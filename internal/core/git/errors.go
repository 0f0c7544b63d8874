// Package git wraps the system git binary for the few operations the
// scaffolder needs: creating the initial commit of a generated project and
// reading user identity from git config.
package git

import "errors"

// Sentinel errors for git operations.
var (
	// ErrSystemGitNotFound indicates that no git binary is available on PATH.
	ErrSystemGitNotFound = errors.New("git: system git not found")

	// ErrConfigKeyNotSet indicates the requested git config key has no value.
	ErrConfigKeyNotSet = errors.New("git: config key not set")
)
