package models

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
)

// projectNamePattern matches the names accepted by the wizard prompt.
// Matching is case-insensitive.
var projectNamePattern = regexp.MustCompile(`(?i)^[a-z0-9_-]+$`)

// ProjectConfig is the input of one scaffolding run. It is built once per
// invocation and must not be mutated afterwards.
type ProjectConfig struct {
	ProjectName     string          `yaml:"name" json:"name"`
	AndroidLanguage AndroidLanguage `yaml:"android" json:"android"`
	IOSLanguage     IOSLanguage     `yaml:"ios" json:"ios"`
	Platforms       []Platform      `yaml:"addons" json:"addons"`
	TargetDir       string          `yaml:"-" json:"-"`
	ExampleConfig   ExampleConfig   `yaml:"example" json:"example"`
	Author          string          `yaml:"author" json:"author"`
	AuthorGithub    string          `yaml:"author_github" json:"author_github"`
	Homepage        string          `yaml:"homepage" json:"homepage"`
}

// IsValidProjectName reports whether name is an acceptable project name.
func IsValidProjectName(name string) bool {
	return projectNamePattern.MatchString(name)
}

// UsesCpp reports whether either platform chose the C++ implementation.
func (c *ProjectConfig) UsesCpp() bool {
	return c.AndroidLanguage == AndroidCpp || c.IOSLanguage == IOSCpp
}

// HasPlatform reports whether the addon platform p was selected.
func (c *ProjectConfig) HasPlatform(p Platform) bool {
	return slices.Contains(c.Platforms, p)
}

// Validate checks every field and returns a *ValidationErrors listing all
// problems, or nil.
func (c *ProjectConfig) Validate() error {
	var errs []ValidationError

	if !IsValidProjectName(c.ProjectName) {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "must contain only letters, digits, hyphens and underscores",
			Value:   c.ProjectName,
			Wrapped: ErrInvalidProjectName,
		})
	}
	if !c.AndroidLanguage.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "android",
			Message: fmt.Sprintf("must be one of: %s, %s", AndroidKotlin, AndroidCpp),
			Value:   string(c.AndroidLanguage),
			Wrapped: ErrInvalidLanguage,
		})
	}
	if !c.IOSLanguage.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "ios",
			Message: fmt.Sprintf("must be one of: %s, %s", IOSSwift, IOSCpp),
			Value:   string(c.IOSLanguage),
			Wrapped: ErrInvalidLanguage,
		})
	}
	for _, p := range c.Platforms {
		if !p.IsValid() {
			errs = append(errs, ValidationError{
				Field:   "addons",
				Message: fmt.Sprintf("must be one of: %s, %s", PlatformMacOS, PlatformWindows),
				Value:   string(p),
				Wrapped: ErrInvalidPlatform,
			})
		}
	}
	if !c.ExampleConfig.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "example",
			Message: fmt.Sprintf("must be one of: %s, %s", ExampleDefault, ExampleFull),
			Value:   string(c.ExampleConfig),
			Wrapped: ErrInvalidExampleConfig,
		})
	}
	if c.TargetDir == "" || !filepath.IsAbs(c.TargetDir) {
		errs = append(errs, ValidationError{
			Field:   "target_dir",
			Message: "must be an absolute path",
			Value:   c.TargetDir,
			Wrapped: ErrInvalidTargetDir,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
