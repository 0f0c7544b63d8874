package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nitro-tools/create-nitro-project/internal/defs"
)

// Deployer copies named template subtrees from an embedded filesystem into
// a project directory.
type Deployer interface {
	// CopyIfExists copies the subtree name to dest when it exists. Files
	// already present at dest are never overwritten. It reports whether
	// the subtree existed.
	CopyIfExists(ctx context.Context, name, dest string) (bool, error)

	// Overlay copies the subtree name to dest, replacing existing files.
	// It reports whether the subtree existed.
	Overlay(ctx context.Context, name, dest string) (bool, error)
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys fs.FS
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys}
}

func (d *deployer) CopyIfExists(ctx context.Context, name, dest string) (bool, error) {
	return copyIfExists(ctx, d.fsys, name, dest, false)
}

func (d *deployer) Overlay(ctx context.Context, name, dest string) (bool, error) {
	return copyIfExists(ctx, d.fsys, name, dest, true)
}

// CopyIfExists copies the subtree src of fsys to the directory dest. A
// missing src is a no-op and reports false. Existing destination files are
// left unchanged, so the first writer of a path wins.
func CopyIfExists(ctx context.Context, fsys fs.FS, src, dest string) (bool, error) {
	return copyIfExists(ctx, fsys, src, dest, false)
}

// CopyDir copies the on-disk directory src to dest, overwriting existing files.
func CopyDir(ctx context.Context, src, dest string) error {
	_, err := copyIfExists(ctx, os.DirFS(src), ".", dest, true)
	return err
}

func copyIfExists(ctx context.Context, fsys fs.FS, src, dest string, overwrite bool) (bool, error) {
	if _, err := fs.Stat(fsys, src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("template stat %q: %w", src, err)
	}
	if err := CopyTree(ctx, fsys, src, dest, overwrite); err != nil {
		return true, err
	}
	return true, nil
}

// CopyTree walks the subtree src of fsys and writes every file below dest.
// When overwrite is false, files that already exist at dest are skipped.
func CopyTree(ctx context.Context, fsys fs.FS, src, dest string, overwrite bool) error {
	dest = filepath.Clean(dest)

	return fs.WalkDir(fsys, src, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each entry
		if err := ctx.Err(); err != nil {
			return err
		}

		rel := relativeTo(src, p)
		if err := validateDeployPath(dest, rel); err != nil {
			return err
		}
		target := filepath.Join(dest, filepath.FromSlash(rel))

		if entry.IsDir() {
			if err := os.MkdirAll(target, defs.DirPerm); err != nil {
				return fmt.Errorf("template deploy mkdir %q: %w", target, err)
			}
			return nil
		}

		if !overwrite {
			if _, statErr := os.Lstat(target); statErr == nil {
				return nil
			}
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("template deploy read %q: %w", p, err)
		}

		if err := os.MkdirAll(filepath.Dir(target), defs.DirPerm); err != nil {
			return fmt.Errorf("template deploy mkdir %q: %w", filepath.Dir(target), err)
		}

		// Shell scripts and gradle wrappers need the executable bit.
		perm := defs.FilePerm
		if isExecutable(rel) {
			perm = defs.ExecPerm
		}

		if err := os.WriteFile(target, content, perm); err != nil {
			return fmt.Errorf("template deploy write %q: %w", target, err)
		}
		return nil
	})
}

// relativeTo returns p relative to root within an fs.FS ("." for root itself).
func relativeTo(root, p string) string {
	if root == "." {
		return p
	}
	if p == root {
		return "."
	}
	return strings.TrimPrefix(p, root+"/")
}

func isExecutable(rel string) bool {
	base := path.Base(rel)
	return strings.HasSuffix(base, ".sh") || base == "gradlew"
}

// validateDeployPath ensures a template path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	// Reject absolute paths
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	// Reject path traversal components
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	// Verify containment: the resolved path must be under projectRoot
	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
