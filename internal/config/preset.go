package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// Preset holds pre-answered prompt values loaded from a YAML file.
// Empty fields mean "not answered".
//
//	name: my-nitro-module
//	android: cpp
//	ios: swift
//	addons: [macos]
//	example: full
//	author: Jane Doe
//	author_github: janedoe
//	homepage: https://github.com/janedoe/my-nitro-module
type Preset struct {
	Name         string   `yaml:"name"`
	Android      string   `yaml:"android"`
	IOS          string   `yaml:"ios"`
	Addons       []string `yaml:"addons"`
	Example      string   `yaml:"example"`
	Author       string   `yaml:"author"`
	AuthorGithub string   `yaml:"author_github"`
	Homepage     string   `yaml:"homepage"`
}

// LoadPreset reads and validates the preset file at path.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, path)
		}
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}
	return ParsePreset(data)
}

// ParsePreset decodes YAML preset data. Unknown keys are rejected.
func ParsePreset(data []byte) (*Preset, error) {
	p := &Preset{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the answered fields of the preset.
func (p *Preset) Validate() error {
	var errs []models.ValidationError

	if p.Name != "" && !models.IsValidProjectName(p.Name) {
		errs = append(errs, models.ValidationError{
			Field:   "name",
			Message: "must contain only letters, digits, hyphens and underscores",
			Value:   p.Name,
			Wrapped: ErrInvalidPreset,
		})
	}
	if p.Android != "" && !models.AndroidLanguage(p.Android).IsValid() {
		errs = append(errs, models.ValidationError{
			Field:   "android",
			Message: "must be one of: kotlin, cpp",
			Value:   p.Android,
			Wrapped: ErrInvalidPreset,
		})
	}
	if p.IOS != "" && !models.IOSLanguage(p.IOS).IsValid() {
		errs = append(errs, models.ValidationError{
			Field:   "ios",
			Message: "must be one of: swift, cpp",
			Value:   p.IOS,
			Wrapped: ErrInvalidPreset,
		})
	}
	for _, a := range p.Addons {
		if !models.Platform(a).IsValid() {
			errs = append(errs, models.ValidationError{
				Field:   "addons",
				Message: "must be one of: macos, windows",
				Value:   a,
				Wrapped: ErrInvalidPreset,
			})
		}
	}
	if p.Example != "" && !models.ExampleConfig(p.Example).IsValid() {
		errs = append(errs, models.ValidationError{
			Field:   "example",
			Message: "must be one of: default, full",
			Value:   p.Example,
			Wrapped: ErrInvalidPreset,
		})
	}

	if len(errs) > 0 {
		return &models.ValidationErrors{Errors: errs}
	}
	return nil
}

// Platforms converts the addon names to models.Platform values, dropping duplicates.
func (p *Preset) Platforms() []models.Platform {
	out := make([]models.Platform, 0, len(p.Addons))
	for _, a := range p.Addons {
		pl := models.Platform(a)
		if !slices.Contains(out, pl) {
			out = append(out, pl)
		}
	}
	return out
}
