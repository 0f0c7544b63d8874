package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nitro-tools/create-nitro-project/internal/cli/wizard"
	"github.com/nitro-tools/create-nitro-project/internal/config"
	"github.com/nitro-tools/create-nitro-project/internal/core/git"
	"github.com/nitro-tools/create-nitro-project/internal/core/project"
	"github.com/nitro-tools/create-nitro-project/internal/ui"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateCreateFlags validates flag values before execution and wires
// the dependencies if no test replaced them.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	if name := getStringFlag(cmd, "name"); name != "" && !models.IsValidProjectName(name) {
		return fmt.Errorf("invalid --name value %q: must contain only letters, digits, hyphens and underscores", name)
	}
	if v := getStringFlag(cmd, "android"); v != "" && !models.AndroidLanguage(v).IsValid() {
		return fmt.Errorf("invalid --android value %q: must be one of: %s", v, joinValues(models.ValidAndroidLanguages(), ", "))
	}
	if v := getStringFlag(cmd, "ios"); v != "" && !models.IOSLanguage(v).IsValid() {
		return fmt.Errorf("invalid --ios value %q: must be one of: %s", v, joinValues(models.ValidIOSLanguages(), ", "))
	}
	if v := getStringFlag(cmd, "example"); v != "" && !models.ExampleConfig(v).IsValid() {
		return fmt.Errorf("invalid --example value %q: must be one of: %s", v, joinValues(models.ValidExampleConfigs(), ", "))
	}
	addons, _ := cmd.Flags().GetStringSlice("addon")
	for _, a := range addons {
		if !models.Platform(a).IsValid() {
			return fmt.Errorf("invalid --addon value %q: must be one of: %s", a, joinValues(models.ValidPlatforms(), ", "))
		}
	}

	if deps == nil {
		return InitDependencies(DepsOptions{
			Verbose:             getBoolFlag(cmd, "verbose"),
			Stderr:              cmd.ErrOrStderr(),
			Description:         getStringFlag(cmd, "description"),
			NitroModulesVersion: getStringFlag(cmd, "nitro-version"),
		})
	}
	return nil
}

// runCreate collects the answers, prints the configuration and runs the
// generator.
func runCreate(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	ctx := cmd.Context()
	out := ui.NewOutput(deps.Theme, cmd.OutOrStdout())

	parent, err := parentDir(getStringFlag(cmd, "dir"))
	if err != nil {
		return err
	}

	answers, answered, err := collectAnswers(cmd)
	if err != nil {
		return err
	}

	// Scripted runs get plain progress lines as well as no prompts.
	if getBoolFlag(cmd, "non-interactive") {
		deps.Headless.ForceHeadless(true)
	}

	defaults := gitDefaults(ctx, parent)
	if !deps.Headless.IsHeadless() {
		out.Banner("Welcome to create-nitro-project!", "Let's set up your new Nitro Module.")
		questions := wizard.FilteredQuestions(wizard.Without(wizard.DefaultQuestions(defaults), answered...), answers)
		if len(questions) > 0 {
			if err := deps.Prompt(questions, answers); err != nil {
				return err
			}
		}
	}
	applyDefaults(answers, defaults)

	cfg := buildConfig(answers, parent)
	out.Summary("Configuration", summaryRows(cfg))

	reporter := newSpinnerReporter(ui.NewProgress(deps.Theme, deps.Headless, cmd.ErrOrStderr()))
	result, err := deps.Generator.Generate(ctx, cfg, project.GenerateOptions{
		SkipGit:  getBoolFlag(cmd, "skip-git"),
		Reporter: reporter,
	})
	reporter.Stop()
	if err != nil {
		out.Error("Failed to create project.")
		return err
	}

	for _, f := range result.Fixups {
		deps.Logger.Debug("fixup", "name", f.Name, "status", f.Status)
	}
	out.Success(fmt.Sprintf("Project %s created successfully!", cfg.ProjectName))
	for _, w := range result.Warnings {
		out.Warn(w)
	}
	if result.GitInitialized {
		out.Success("Git repository initialized with initial commit")
	}

	out.NextSteps(nextSteps(cfg.ProjectName))
	return nil
}

// parentDir resolves the directory the project is created in.
func parentDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve --dir %q: %w", dir, err)
	}
	return abs, nil
}

// collectAnswers merges flags over the optional preset and reports which
// questions no longer need asking.
func collectAnswers(cmd *cobra.Command) (*wizard.Answers, []string, error) {
	a := &wizard.Answers{}
	var answered []string

	var preset config.Preset
	if path := getStringFlag(cmd, "preset"); path != "" {
		p, err := config.LoadPreset(path)
		if err != nil {
			return nil, nil, err
		}
		preset = *p
	}

	pick := func(id, flag, fromPreset string, dst *string) {
		v := getStringFlag(cmd, flag)
		if v == "" {
			v = fromPreset
		}
		if v != "" {
			*dst = v
			answered = append(answered, id)
		}
	}
	pick(wizard.QuestionName, "name", preset.Name, &a.ProjectName)
	pick(wizard.QuestionAndroid, "android", preset.Android, &a.Android)
	pick(wizard.QuestionIOS, "ios", preset.IOS, &a.IOS)
	pick(wizard.QuestionExample, "example", preset.Example, &a.Example)
	pick(wizard.QuestionAuthor, "author", preset.Author, &a.Author)
	pick(wizard.QuestionGithub, "author-url", preset.AuthorGithub, &a.AuthorGithub)
	pick(wizard.QuestionHomepage, "repo-url", preset.Homepage, &a.Homepage)

	switch {
	case cmd.Flags().Changed("addon"):
		a.Addons, _ = cmd.Flags().GetStringSlice("addon")
		answered = append(answered, wizard.QuestionAddons)
	case preset.Addons != nil:
		for _, p := range preset.Platforms() {
			a.Addons = append(a.Addons, string(p))
		}
		answered = append(answered, wizard.QuestionAddons)
	}

	return a, answered, nil
}

// gitDefaults reads the author suggestions from git config. Missing git or
// unset keys leave the fields empty.
func gitDefaults(ctx context.Context, dir string) wizard.Defaults {
	d := wizard.Defaults{CI: deps.Headless.IsCI()}
	if deps.GitConfig == nil {
		return d
	}

	if name, err := deps.GitConfig.ConfigValue(ctx, dir, "user.name"); err == nil {
		d.Author = name
	} else if !errors.Is(err, git.ErrConfigKeyNotSet) {
		deps.Logger.Debug("read git user.name", "error", err)
	}
	if email, err := deps.GitConfig.ConfigValue(ctx, dir, "user.email"); err == nil {
		d.GithubHandle, _, _ = strings.Cut(email, "@")
	} else if !errors.Is(err, git.ErrConfigKeyNotSet) {
		deps.Logger.Debug("read git user.email", "error", err)
	}
	return d
}

// applyDefaults fills every unanswered field.
func applyDefaults(a *wizard.Answers, d wizard.Defaults) {
	if a.ProjectName == "" {
		a.ProjectName = config.DefaultProjectName
	}
	if a.Android == "" {
		a.Android = config.DefaultAndroid
	}
	if a.IOS == "" {
		a.IOS = config.DefaultIOS
	}
	if a.Example == "" {
		a.Example = config.DefaultExample
	}
	if a.Author == "" {
		a.Author = d.Author
		if a.Author == "" {
			a.Author = config.DefaultAuthorName
		}
	}
	if a.AuthorGithub == "" {
		a.AuthorGithub = d.GithubHandle
	}
	if a.Homepage == "" {
		a.Homepage = wizard.DefaultHomepage(a)
	}
}

// buildConfig converts the answers into the generator input.
func buildConfig(a *wizard.Answers, parent string) *models.ProjectConfig {
	platforms := make([]models.Platform, 0, len(a.Addons))
	for _, p := range a.Addons {
		platforms = append(platforms, models.Platform(p))
	}
	return &models.ProjectConfig{
		ProjectName:     a.ProjectName,
		AndroidLanguage: models.AndroidLanguage(a.Android),
		IOSLanguage:     models.IOSLanguage(a.IOS),
		Platforms:       platforms,
		TargetDir:       filepath.Join(parent, a.ProjectName),
		ExampleConfig:   models.ExampleConfig(a.Example),
		Author:          a.Author,
		AuthorGithub:    a.AuthorGithub,
		Homepage:        a.Homepage,
	}
}

func summaryRows(cfg *models.ProjectConfig) []ui.SummaryRow {
	addons := "None"
	if len(cfg.Platforms) > 0 {
		addons = joinValues(cfg.Platforms, ", ")
	}
	return []ui.SummaryRow{
		{Label: "Project Name", Value: cfg.ProjectName},
		{Label: "Android", Value: string(cfg.AndroidLanguage)},
		{Label: "iOS", Value: string(cfg.IOSLanguage)},
		{Label: "Addons", Value: addons},
		{Label: "Example", Value: string(cfg.ExampleConfig)},
		{Label: "Location", Value: cfg.TargetDir},
	}
}

// joinValues lists enum values for flag help and error messages.
func joinValues[T ~string](values []T, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, sep)
}

func nextSteps(name string) []string {
	return []string{
		"cd " + name,
		"bun install",
		"bun run build",
		"bun run example start",
	}
}

// spinnerReporter shows the generation stages on one spinner.
type spinnerReporter struct {
	progress ui.Progress
	spinner  ui.Spinner
}

func newSpinnerReporter(p ui.Progress) *spinnerReporter {
	return &spinnerReporter{progress: p}
}

// Stage starts the spinner on the first call and retitles it afterwards.
func (r *spinnerReporter) Stage(title string) {
	if r.spinner == nil {
		r.spinner = r.progress.Spinner(title)
		return
	}
	r.spinner.SetTitle(title)
}

// Stop halts the spinner if it was started.
func (r *spinnerReporter) Stop() {
	if r.spinner != nil {
		r.spinner.Stop()
	}
}
