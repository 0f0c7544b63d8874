package template

import (
	"embed"
	"fmt"
	"io/fs"
)

// The template tree is laid out as one directory per subtree name
// (base, android-kotlin, android-cpp, ios-swift, ios-cpp, cpp-shared,
// example-default, example-full).
//
//go:embed all:templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the embedded template tree rooted at its
// subtree directories.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}
