package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nitro-tools/create-nitro-project/internal/config"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// Reporter receives a title for each generation stage as it starts.
type Reporter interface {
	Stage(title string)
}

// Committer creates the initial commit of a freshly generated project.
type Committer interface {
	InitialCommit(ctx context.Context, dir, message string) error
}

// Stage titles passed to the Reporter.
const (
	StageLayout  = "Scaffolding project..."
	StageExample = "Initializing example app (this may take a few minutes)..."
	StageGit     = "Initializing git repository..."
)

// GenerateOptions configures one Generate call.
type GenerateOptions struct {
	SkipGit  bool     // If true, no repository is created.
	Reporter Reporter // May be nil.
}

// GenerateResult summarizes a successful generation.
type GenerateResult struct {
	TargetDir      string
	PackageDir     string
	Fixups         []FixupResult
	GitInitialized bool
	Warnings       []string // Non-fatal problems, such as a failed git step.
}

// Generator runs the full scaffolding pipeline.
type Generator struct {
	layout  *Layout
	example *ExampleBootstrapper
	git     Committer // May be nil, which behaves like SkipGit.
	logger  *slog.Logger
}

// NewGenerator creates a Generator from its stages.
func NewGenerator(layout *Layout, example *ExampleBootstrapper, git Committer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		layout:  layout,
		example: example,
		git:     git,
		logger:  logger,
	}
}

// Generate validates cfg, lays out the workspace, bootstraps the example
// app and, unless disabled, commits the result. Only the git step is
// allowed to fail without failing the run.
func (g *Generator) Generate(ctx context.Context, cfg *models.ProjectConfig, opts GenerateOptions) (*GenerateResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	report := func(title string) {
		if opts.Reporter != nil {
			opts.Reporter.Stage(title)
		}
		g.logger.Info(title)
	}

	report(StageLayout)
	layout, err := g.layout.Apply(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		TargetDir:  layout.TargetDir,
		PackageDir: layout.PackageDir,
		Fixups:     layout.Fixups,
	}

	report(StageExample)
	if err := g.example.Bootstrap(ctx, cfg); err != nil {
		return nil, err
	}

	if opts.SkipGit || g.git == nil {
		return result, nil
	}

	report(StageGit)
	if err := g.git.InitialCommit(ctx, result.TargetDir, config.InitialCommitMessage); err != nil {
		g.logger.Warn("git initialization failed", "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("git initialization failed (optional step): %s", err))
		return result, nil
	}
	result.GitInitialized = true

	return result, nil
}
