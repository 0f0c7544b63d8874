package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nitro-tools/create-nitro-project/internal/defs"
	"github.com/nitro-tools/create-nitro-project/internal/template"
)

// FixupStatus is the outcome of one fixup rule.
type FixupStatus string

const (
	// FixupApplied means the rule found its source and changed the tree.
	FixupApplied FixupStatus = "applied"

	// FixupSkipped means the rule's source was absent or the rule did not
	// apply to the chosen languages.
	FixupSkipped FixupStatus = "skipped"
)

// FixupResult records what one named rule did.
type FixupResult struct {
	Name   string
	Status FixupStatus
}

// fixupTarget carries the paths and names every rule works from.
type fixupTarget struct {
	packageDir string
	className  string
	namespace  string
	useKotlin  bool
	useSwift   bool
}

type fixupRule struct {
	name  string
	apply func(ctx context.Context, t fixupTarget) (FixupStatus, error)
}

// fixupRules run in order after rendering. Each rule renames placeholder
// files to their class-specific names.
var fixupRules = []fixupRule{
	{name: "podspec", apply: fixPodspec},
	{name: "android-package", apply: fixAndroidPackage},
	{name: "swift-impl", apply: fixSwiftImpl},
	{name: "cpp-impl", apply: fixCppFile("HybridModule.cpp", ".cpp")},
	{name: "cpp-header", apply: fixCppFile("HybridModule.hpp", ".hpp")},
}

// applyFixups runs every rule and returns their outcomes. The first rule
// error aborts the sequence.
func applyFixups(ctx context.Context, t fixupTarget) ([]FixupResult, error) {
	results := make([]FixupResult, 0, len(fixupRules))
	for _, rule := range fixupRules {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		status, err := rule.apply(ctx, t)
		if err != nil {
			return results, fmt.Errorf("fixup %s: %w", rule.name, err)
		}
		results = append(results, FixupResult{Name: rule.name, Status: status})
	}
	return results, nil
}

func fixPodspec(_ context.Context, t fixupTarget) (FixupStatus, error) {
	src := filepath.Join(t.packageDir, defs.IOSDir, defs.PodspecTemplate)
	dst := filepath.Join(t.packageDir, t.className+".podspec")
	return moveIfExists(src, dst)
}

func fixAndroidPackage(ctx context.Context, t fixupTarget) (FixupStatus, error) {
	javaRoot := filepath.Join(t.packageDir, defs.AndroidDir, "src", "main", "java")
	placeholder := filepath.Join(javaRoot, "package")
	dest := filepath.Join(javaRoot, "com", "margelo", "nitro", t.namespace)

	if ok, err := exists(placeholder); err != nil || !ok {
		return FixupSkipped, err
	}
	if err := os.MkdirAll(dest, defs.DirPerm); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dest, err)
	}

	if t.useKotlin {
		moves := [][2]string{
			{"HybridModule.kt", "Hybrid" + t.className + ".kt"},
			{"HybridModulePackage.kt", "Hybrid" + t.className + "Package.kt"},
		}
		for _, m := range moves {
			if _, err := moveIfExists(filepath.Join(placeholder, m[0]), filepath.Join(dest, m[1])); err != nil {
				return "", err
			}
		}
	} else {
		status, err := moveIfExists(
			filepath.Join(placeholder, "HybridModulePackage.java"),
			filepath.Join(dest, "Hybrid"+t.className+"Package.java"),
		)
		if err != nil {
			return "", err
		}
		if status == FixupSkipped {
			if err := template.CopyDir(ctx, placeholder, dest); err != nil {
				return "", fmt.Errorf("copy %s: %w", placeholder, err)
			}
		}
	}

	if err := os.RemoveAll(placeholder); err != nil {
		return "", fmt.Errorf("remove %s: %w", placeholder, err)
	}
	return FixupApplied, nil
}

func fixSwiftImpl(_ context.Context, t fixupTarget) (FixupStatus, error) {
	if !t.useSwift {
		return FixupSkipped, nil
	}
	iosDir := filepath.Join(t.packageDir, defs.IOSDir)
	return moveIfExists(
		filepath.Join(iosDir, "HybridModule.swift"),
		filepath.Join(iosDir, "Hybrid"+t.className+".swift"),
	)
}

func fixCppFile(placeholder, ext string) func(context.Context, fixupTarget) (FixupStatus, error) {
	return func(_ context.Context, t fixupTarget) (FixupStatus, error) {
		cppDir := filepath.Join(t.packageDir, defs.CppDir)
		return moveIfExists(
			filepath.Join(cppDir, placeholder),
			filepath.Join(cppDir, "Hybrid"+t.className+ext),
		)
	}
}

// moveIfExists renames src to dst, creating dst's parent. A missing src
// yields FixupSkipped.
func moveIfExists(src, dst string) (FixupStatus, error) {
	if ok, err := exists(src); err != nil || !ok {
		return FixupSkipped, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), defs.DirPerm); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", filepath.Dir(dst), err)
	}
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("rename %s: %w", src, err)
	}
	return FixupApplied, nil
}

func exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}
