package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a template referenced a key the context does not provide.
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrPathTraversal indicates a template path escapes its destination root.
	ErrPathTraversal = errors.New("template: path traversal detected")
)
