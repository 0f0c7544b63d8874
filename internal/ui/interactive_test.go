package ui

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// newTestProgram creates a tea.Program configured for test environments without a TTY.
// It uses an empty string reader for input, io.Discard for output, and disables the renderer
// to avoid any TTY requirements.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// startTestProgram starts a tea.Program in a goroutine and returns a done channel.
func startTestProgram(p *tea.Program) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	// Allow the program goroutine to initialize before sending messages.
	time.Sleep(10 * time.Millisecond)
	return done
}

// waitForProgram waits for the program to exit, failing the test if it exceeds timeout.
func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
		// program exited cleanly
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 second timeout")
	}
}

// --- interactiveSpinner method tests ---
// These tests directly construct interactiveSpinner structs with TTY-free tea.Programs
// to cover SetTitle and Stop methods without requiring a real terminal.

func TestInteractiveSpinner_SetTitle(t *testing.T) {
	m := newSpinnerModel(testTheme(), "Initial")
	p := newTestProgram(m)
	s := &interactiveSpinner{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	s.SetTitle("Updated title")
	s.Stop()

	waitForProgram(t, done)
}

func TestInteractiveSpinner_Stop_Idempotent(t *testing.T) {
	m := newSpinnerModel(testTheme(), "Loading")
	p := newTestProgram(m)
	s := &interactiveSpinner{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	// sync.Once ensures Stop is idempotent; calling it multiple times is safe.
	s.Stop()
	s.Stop()
	s.Stop()

	waitForProgram(t, done)
}

func TestInteractiveSpinner_SetTitleThenStop(t *testing.T) {
	m := newSpinnerModel(testTheme(), "Checking dependencies")
	p := newTestProgram(m)
	s := &interactiveSpinner{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	s.SetTitle("Downloading packages")
	s.SetTitle("Installing files")
	s.Stop()

	waitForProgram(t, done)
}

// --- Spinner model additional coverage ---

func TestSpinnerModel_Update_SpinnerTickMsg(t *testing.T) {
	theme := NewTheme(ThemeConfig{Mode: "dark"})
	m := newSpinnerModel(theme, "Ticking")
	// Obtain a real TickMsg by calling Init and executing the command.
	tickCmd := m.Init()
	if tickCmd == nil {
		t.Fatal("Init should return a non-nil tick command")
	}
	msg := tickCmd()
	if msg == nil {
		t.Skip("tick command returned nil message; skipping")
	}
	// Only proceed if we got a spinner.TickMsg to exercise that branch.
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Skip("unexpected message type from tick command")
	}
	updated, cmd := m.Update(msg)
	result := updated.(spinnerModel)
	if result.done {
		t.Error("tick should not stop the spinner")
	}
	_ = cmd
}

// --- newInteractiveSpinner constructor coverage ---
// The constructor disables input and writes to the given writer, so it runs
// without a terminal.

func TestProgressImpl_Spinner_InteractivePath(t *testing.T) {
	theme := NewTheme(ThemeConfig{NoColor: false, Mode: "dark"})
	hm := NewHeadlessManager()
	// Force non-headless to reach newInteractiveSpinner.
	hm.ForceHeadless(false)

	var buf strings.Builder
	prog := NewProgress(theme, hm, &buf)
	sp := prog.Spinner("Interactive spinner test")

	sp.SetTitle("Updated title")
	sp.Stop()
	// Calling Stop a second time must be safe (sync.Once on interactiveSpinner).
	sp.Stop()
}
