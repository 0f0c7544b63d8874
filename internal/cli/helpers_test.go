package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"

	"github.com/nitro-tools/create-nitro-project/internal/cli/wizard"
	"github.com/nitro-tools/create-nitro-project/internal/core/git"
	"github.com/nitro-tools/create-nitro-project/internal/core/project"
	"github.com/nitro-tools/create-nitro-project/internal/ui"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// fakeGenerator records the config it was called with and reports every stage.
type fakeGenerator struct {
	calls  int
	cfg    *models.ProjectConfig
	opts   project.GenerateOptions
	result *project.GenerateResult
	err    error
}

func (g *fakeGenerator) Generate(_ context.Context, cfg *models.ProjectConfig, opts project.GenerateOptions) (*project.GenerateResult, error) {
	g.calls++
	g.cfg = cfg
	g.opts = opts
	if opts.Reporter != nil {
		opts.Reporter.Stage(project.StageLayout)
		opts.Reporter.Stage(project.StageExample)
	}
	if g.err != nil {
		return nil, g.err
	}
	if g.result != nil {
		return g.result, nil
	}
	return &project.GenerateResult{TargetDir: cfg.TargetDir, GitInitialized: !opts.SkipGit}, nil
}

// fakeGitConfig serves git config values from a map; absent keys are unset.
type fakeGitConfig struct {
	values map[string]string
	err    error
}

func (f *fakeGitConfig) ConfigValue(_ context.Context, _, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.values[key]
	if !ok {
		return "", git.ErrConfigKeyNotSet
	}
	return v, nil
}

// fakePrompt records the asked question IDs and applies answer to the result.
type fakePrompt struct {
	asked  []string
	answer func(*wizard.Answers)
	err    error
}

func (p *fakePrompt) run(questions []wizard.Question, a *wizard.Answers) error {
	for _, q := range questions {
		p.asked = append(p.asked, q.ID)
	}
	if p.err != nil {
		return p.err
	}
	if p.answer != nil {
		p.answer(a)
	}
	return nil
}

type testEnv struct {
	gen    *fakeGenerator
	git    *fakeGitConfig
	prompt *fakePrompt
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// setupDeps installs fake dependencies. headless selects the prompt-free path.
func setupDeps(t *testing.T, headless bool) *testEnv {
	t.Helper()
	t.Setenv("CI", "")

	env := &testEnv{
		gen: &fakeGenerator{},
		git: &fakeGitConfig{values: map[string]string{
			"user.name":  "Jane Doe",
			"user.email": "jane@example.com",
		}},
		prompt: &fakePrompt{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(headless)

	SetDeps(&Dependencies{
		Generator: env.gen,
		GitConfig: env.git,
		Prompt:    env.prompt.run,
		Headless:  hm,
		Theme:     ui.NewTheme(ui.ThemeConfig{NoColor: true}),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(func() { SetDeps(nil) })

	return env
}

// runCommand executes a fresh root command with args.
func (e *testEnv) runCommand(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	return cmd.Execute()
}

// newTestCmd returns a root command whose flags are parsed from args.
func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := newRootCmd()
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd
}
