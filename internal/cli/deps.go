// Package cli provides the cobra command and the dependency wiring of
// create-nitro-project. This file defines the Dependencies struct
// (Composition Root) that wires the domain packages together.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nitro-tools/create-nitro-project/internal/cli/wizard"
	"github.com/nitro-tools/create-nitro-project/internal/core/git"
	"github.com/nitro-tools/create-nitro-project/internal/core/project"
	"github.com/nitro-tools/create-nitro-project/internal/template"
	"github.com/nitro-tools/create-nitro-project/internal/ui"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// Generator runs the scaffolding pipeline.
type Generator interface {
	Generate(ctx context.Context, cfg *models.ProjectConfig, opts project.GenerateOptions) (*project.GenerateResult, error)
}

// GitConfig reads git configuration values used as prompt defaults.
type GitConfig interface {
	ConfigValue(ctx context.Context, dir, key string) (string, error)
}

// Prompter asks questions and stores the answers in a.
type Prompter func(questions []wizard.Question, a *wizard.Answers) error

// Dependencies holds the services used by the create command.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Generator Generator
	GitConfig GitConfig
	Prompt    Prompter
	Headless  *ui.HeadlessManager
	Theme     *ui.Theme
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// DepsOptions configures InitDependencies.
type DepsOptions struct {
	Verbose bool      // Debug logs on Stderr.
	Stderr  io.Writer // Defaults to os.Stderr.

	// Template overrides; empty keeps the built-in value.
	Description         string
	NitroModulesVersion string
}

// InitDependencies creates and wires all domain dependencies.
// It should be called once during application startup.
func InitDependencies(opts DepsOptions) error {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	logger := newLogger(opts.Verbose, opts.Stderr)

	templates, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}

	runner := project.NewExecRunner(opts.Stderr, logger)
	gitClient := git.NewClient(logger)
	ctxOpts := contextOptions(opts)

	deps = &Dependencies{
		Generator: project.NewGenerator(
			project.NewLayout(templates, logger, ctxOpts...),
			project.NewExampleBootstrapper(runner, templates, logger, ctxOpts...),
			gitClient,
			logger,
		),
		GitConfig: gitClient,
		Prompt:    wizard.Run,
		Headless:  ui.NewHeadlessManager(),
		Theme:     ui.NewTheme(ui.ThemeConfig{Mode: "auto"}),
		Logger:    logger,
	}
	return nil
}

// contextOptions turns the template overrides into rendering options shared
// by the layout and the example app.
func contextOptions(opts DepsOptions) []template.ContextOption {
	return []template.ContextOption{
		template.WithDescription(opts.Description),
		template.WithNitroModulesVersion(opts.NitroModulesVersion),
	}
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newLogger returns a discard logger unless verbose is set, in which case
// debug-level text logs go to w.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
