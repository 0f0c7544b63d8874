package wizard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nitro-tools/create-nitro-project/internal/config"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// Question IDs.
const (
	QuestionName     = "name"
	QuestionAndroid  = "android"
	QuestionIOS      = "ios"
	QuestionAddons   = "addons"
	QuestionExample  = "example"
	QuestionAuthor   = "author"
	QuestionGithub   = "author_github"
	QuestionHomepage = "homepage"
)

// Defaults are the environment-derived suggestions shown in the prompts.
type Defaults struct {
	Author       string // git config user.name
	GithubHandle string // local part of git config user.email
	CI           bool   // addons are not asked on CI
}

// DefaultQuestions returns the project questions in prompt order:
// 1. Project name
// 2. Android language
// 3. iOS language
// 4. Addon platforms (skipped on CI)
// 5. Example app configuration
// 6. Author name
// 7. GitHub username
// 8. Repository URL
func DefaultQuestions(d Defaults) []Question {
	author := d.Author
	if author == "" {
		author = config.DefaultAuthorName
	}

	return []Question{
		{
			ID:       QuestionName,
			Type:     QuestionTypeInput,
			Title:    "What is the name of your project?",
			Default:  config.DefaultProjectName,
			Validate: validateProjectName,
		},
		{
			// Default option must be first to avoid the huh v0.8.0 viewport YOffset bug.
			ID:    QuestionAndroid,
			Type:  QuestionTypeSelect,
			Title: "Which language do you want to use for Android?",
			Options: []Option{
				{Label: "Kotlin (Default)", Value: string(models.AndroidKotlin)},
				{Label: "C++ (Advanced)", Value: string(models.AndroidCpp)},
			},
			Default: config.DefaultAndroid,
		},
		{
			ID:    QuestionIOS,
			Type:  QuestionTypeSelect,
			Title: "Which language do you want to use for iOS?",
			Options: []Option{
				{Label: "Swift (Default)", Value: string(models.IOSSwift)},
				{Label: "C++ (Advanced)", Value: string(models.IOSCpp)},
			},
			Default: config.DefaultIOS,
		},
		{
			ID:          QuestionAddons,
			Type:        QuestionTypeMultiSelect,
			Title:       "Select additional platforms to support (addons):",
			Description: "Space to toggle, Enter to confirm.",
			Options: []Option{
				{Label: "macOS", Value: string(models.PlatformMacOS)},
				{Label: "Windows", Value: string(models.PlatformWindows)},
			},
			Condition: func(*Answers) bool { return !d.CI },
		},
		{
			ID:    QuestionExample,
			Type:  QuestionTypeSelect,
			Title: "How do you want to configure the example app?",
			Options: []Option{
				{Label: "Default (Minimal)", Value: string(models.ExampleDefault)},
				{Label: "Full (Tests, Benchmarks, Navigation)", Value: string(models.ExampleFull)},
			},
			Default: config.DefaultExample,
		},
		{
			ID:      QuestionAuthor,
			Type:    QuestionTypeInput,
			Title:   "Author name:",
			Default: author,
		},
		{
			ID:      QuestionGithub,
			Type:    QuestionTypeInput,
			Title:   "GitHub username:",
			Default: d.GithubHandle,
		},
		{
			ID:          QuestionHomepage,
			Type:        QuestionTypeInput,
			Title:       "GitHub repository URL:",
			DefaultFunc: DefaultHomepage,
		},
	}
}

// DefaultHomepage builds the repository URL suggested for a.
func DefaultHomepage(a *Answers) string {
	handle := a.AuthorGithub
	if handle == "" {
		handle = config.DefaultGithubHandle
	}
	return fmt.Sprintf(config.HomepageURLFormat, handle, a.ProjectName)
}

// Without returns the questions whose ID is not listed in ids.
func Without(questions []Question, ids ...string) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if !slices.Contains(ids, q.ID) {
			out = append(out, q)
		}
	}
	return out
}

// FilteredQuestions returns the questions whose condition holds for a.
func FilteredQuestions(questions []Question, a *Answers) []Question {
	var out []Question
	for _, q := range questions {
		if q.Condition == nil || q.Condition(a) {
			out = append(out, q)
		}
	}
	return out
}

func validateProjectName(v string) error {
	if !models.IsValidProjectName(strings.TrimSpace(v)) {
		return ErrInvalidName
	}
	return nil
}
