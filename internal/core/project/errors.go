// Package project implements the generation of a React Native Nitro Module
// workspace: laying out the template tree, applying filename fixups,
// bootstrapping the example app and creating the initial commit.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the target directory already exists.
	ErrProjectExists = errors.New("project: target directory already exists")

	// ErrInvalidConfig indicates the project configuration failed validation.
	ErrInvalidConfig = errors.New("project: invalid configuration")

	// ErrExampleInit indicates the external example app generator failed.
	ErrExampleInit = errors.New("project: example app initialization failed")

	// ErrInvalidManifest indicates a package.json could not be patched.
	ErrInvalidManifest = errors.New("project: invalid package manifest")
)
