package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for project configuration validation.
var (
	// ErrInvalidConfig indicates the project configuration is invalid.
	ErrInvalidConfig = errors.New("models: invalid project configuration")

	// ErrInvalidProjectName indicates the project name does not match the allowed pattern.
	ErrInvalidProjectName = errors.New("models: invalid project name")

	// ErrInvalidLanguage indicates an unsupported Android or iOS language.
	ErrInvalidLanguage = errors.New("models: invalid platform language")

	// ErrInvalidPlatform indicates an unsupported addon platform.
	ErrInvalidPlatform = errors.New("models: invalid addon platform")

	// ErrInvalidExampleConfig indicates an unsupported example configuration.
	ErrInvalidExampleConfig = errors.New("models: invalid example configuration")

	// ErrInvalidTargetDir indicates the target directory is empty or relative.
	ErrInvalidTargetDir = errors.New("models: target directory must be an absolute path")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
