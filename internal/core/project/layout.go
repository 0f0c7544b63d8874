package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nitro-tools/create-nitro-project/internal/defs"
	"github.com/nitro-tools/create-nitro-project/internal/template"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// prettierIgnore is written into the library package.
const prettierIgnore = "lib/\nandroid/build/\nios/build/\n"

// LayoutResult summarizes the library workspace produced by Layout.Apply.
type LayoutResult struct {
	TargetDir  string
	PackageDir string        // packages/<name>
	Rendered   []string      // rendered file paths
	Fixups     []FixupResult // outcome of every fixup rule, in order
}

// Layout materializes the library workspace from the template subtrees.
type Layout struct {
	deployer    template.Deployer
	contextOpts []template.ContextOption
	logger      *slog.Logger
}

// NewLayout creates a Layout reading subtrees from templates. The context
// options are applied to every TemplateContext it builds.
func NewLayout(templates fs.FS, logger *slog.Logger, opts ...template.ContextOption) *Layout {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Layout{
		deployer:    template.NewDeployer(templates),
		contextOpts: opts,
		logger:      logger,
	}
}

// Apply builds the workspace at cfg.TargetDir. The target must not exist;
// when it does, ErrProjectExists is returned and nothing is written. A
// failure after that point leaves the partial tree on disk.
func (l *Layout) Apply(ctx context.Context, cfg *models.ProjectConfig) (*LayoutResult, error) {
	target := filepath.Clean(cfg.TargetDir)

	if ok, err := exists(target); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, target)
	}

	l.logger.Info("creating project layout", "target", target, "name", cfg.ProjectName)

	// Step 1: base tree
	if err := os.MkdirAll(target, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create target: %w", err)
	}
	copied, err := l.deployer.CopyIfExists(ctx, defs.BaseTemplate, target)
	if err != nil {
		return nil, fmt.Errorf("copy base templates: %w", err)
	}
	if !copied {
		return nil, fmt.Errorf("%w: %s", template.ErrTemplateNotFound, defs.BaseTemplate)
	}

	// Step 2: library package directory
	packagesDir := filepath.Join(target, defs.PackagesDir)
	packageDir := filepath.Join(packagesDir, cfg.ProjectName)
	if err := os.Rename(filepath.Join(packagesDir, defs.LibraryPlaceholder), packageDir); err != nil {
		return nil, fmt.Errorf("rename library package: %w", err)
	}

	// Step 3: platform subtrees
	if err := l.copyPlatforms(ctx, cfg, packageDir); err != nil {
		return nil, err
	}

	// Step 4: render
	data := template.NewTemplateContext(cfg, l.contextOpts...)
	rendered, err := template.RenderTree(ctx, target, data)
	if err != nil {
		return nil, fmt.Errorf("render templates: %w", err)
	}
	l.logger.Debug("templates rendered", "count", len(rendered))

	// Step 5: fixups
	fixups, err := applyFixups(ctx, fixupTarget{
		packageDir: packageDir,
		className:  data.ClassName,
		namespace:  data.ProjectNamespace,
		useKotlin:  data.UseKotlin,
		useSwift:   data.UseSwift,
	})
	if err != nil {
		return nil, err
	}
	for _, f := range fixups {
		l.logger.Debug("fixup", "rule", f.Name, "status", f.Status)
	}

	// Step 6: C++ tooling config is only kept for C++ projects
	if !cfg.UsesCpp() {
		for _, name := range []string{defs.CppLintConfig, defs.ClangFormat} {
			if err := os.Remove(filepath.Join(target, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("remove %s: %w", name, err)
			}
		}
	}

	// Step 7: lint and format config shared with the package
	if err := finishPackage(target, packageDir); err != nil {
		return nil, err
	}

	return &LayoutResult{
		TargetDir:  target,
		PackageDir: packageDir,
		Rendered:   rendered,
		Fixups:     fixups,
	}, nil
}

func (l *Layout) copyPlatforms(ctx context.Context, cfg *models.ProjectConfig, packageDir string) error {
	android := defs.AndroidKotlinTemplate
	if cfg.AndroidLanguage == models.AndroidCpp {
		android = defs.AndroidCppTemplate
	}
	ios := defs.IOSSwiftTemplate
	if cfg.IOSLanguage == models.IOSCpp {
		ios = defs.IOSCppTemplate
	}

	copies := [][2]string{
		{android, defs.AndroidDir},
		{ios, defs.IOSDir},
	}
	if cfg.UsesCpp() {
		copies = append(copies, [2]string{defs.CppSharedTemplate, defs.CppDir})
	}

	for _, c := range copies {
		copied, err := l.deployer.CopyIfExists(ctx, c[0], filepath.Join(packageDir, c[1]))
		if err != nil {
			return fmt.Errorf("copy %s templates: %w", c[0], err)
		}
		l.logger.Debug("platform subtree", "template", c[0], "copied", copied)
	}
	return nil
}

// finishPackage copies the root lint and format config into the package,
// replacing any existing copies, and writes the package .prettierignore.
func finishPackage(target, packageDir string) error {
	for _, name := range []string{defs.ESLintConfigJS, defs.PrettierRC} {
		data, err := os.ReadFile(filepath.Join(target, name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(packageDir, name), data, defs.FilePerm); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := os.WriteFile(filepath.Join(packageDir, defs.PrettierIgnore), []byte(prettierIgnore), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.PrettierIgnore, err)
	}
	return nil
}
