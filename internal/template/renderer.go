package template

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"

	"github.com/nitro-tools/create-nitro-project/internal/defs"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// jsonEscape escapes a string for safe embedding in JSON values.
	// It handles backslashes, quotes, and control characters by leveraging
	// encoding/json.Marshal, then stripping the surrounding quotes.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
	// screamingSnake builds C++ include guards: "MyNitroModule" -> "MY_NITRO_MODULE".
	"screamingSnake": strcase.ToScreamingSnake,
}

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}
	return execute(templateName, content, data)
}

// RenderTree renders every file under dir whose name ends in the template
// suffix. Each rendered file is written next to its source with the suffix
// stripped, and the source is removed. Other files are left untouched.
// It returns the paths of the rendered files in walk order. The first
// failure aborts the pass; files rendered before it stay on disk.
func RenderTree(ctx context.Context, dir string, data any) ([]string, error) {
	dir = filepath.Clean(dir)

	var sources []string
	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), defs.TemplateSuffix) {
			sources = append(sources, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("template walk %q: %w", dir, walkErr)
	}

	rendered := make([]string, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return rendered, err
		}
		dest, err := renderFile(src, data)
		if err != nil {
			return rendered, err
		}
		rendered = append(rendered, dest)
	}

	return rendered, nil
}

// renderFile renders src in place and returns the output path.
func renderFile(src string, data any) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("template stat %q: %w", src, err)
	}
	content, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("template read %q: %w", src, err)
	}

	result, err := execute(filepath.Base(src), content, data)
	if err != nil {
		return "", fmt.Errorf("template render %q: %w", src, err)
	}

	dest := strings.TrimSuffix(src, defs.TemplateSuffix)
	if err := os.WriteFile(dest, result, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("template write %q: %w", dest, err)
	}
	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("template remove %q: %w", src, err)
	}

	return dest, nil
}

// execute parses content as a template named name and runs it against data.
func execute(name string, content []byte, data any) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	return buf.Bytes(), nil
}
