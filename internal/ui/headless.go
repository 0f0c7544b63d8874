package ui

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nitro-tools/create-nitro-project/internal/config"
)

// HeadlessManager decides whether the UI may prompt and animate, or must
// fall back to plain line output.
type HeadlessManager struct {
	forced *bool
	getenv func(string) string
}

// NewHeadlessManager creates a HeadlessManager that detects
// headless mode from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{getenv: os.Getenv}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection. Otherwise, it checks whether
// os.Stdin is connected to a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// IsCI reports whether the CI environment variable is set to a non-empty value.
func (h *HeadlessManager) IsCI() bool {
	return h.getenv(config.CIEnvVar) != ""
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}
