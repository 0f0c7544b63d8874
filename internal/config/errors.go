// Package config provides the default answers and the YAML preset file
// support for create-nitro-project.
package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrPresetNotFound indicates the preset file does not exist.
	ErrPresetNotFound = errors.New("config: preset file not found")

	// ErrInvalidYAML indicates invalid YAML syntax in a preset file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidPreset indicates the preset contains unsupported values.
	ErrInvalidPreset = errors.New("config: invalid preset")
)
