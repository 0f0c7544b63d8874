// Package models provides the shared data model for create-nitro-project.
//
// # Project Configuration
//
// [ProjectConfig] is the immutable input of one scaffolding run. It is
// produced by the CLI front end (flags, preset file or wizard) and handed to
// the generator unchanged:
//
//	cfg := models.ProjectConfig{
//	    ProjectName:     "my-nitro-module",
//	    AndroidLanguage: models.AndroidKotlin,
//	    IOSLanguage:     models.IOSSwift,
//	    TargetDir:       "/home/user/my-nitro-module",
//	    ExampleConfig:   models.ExampleDefault,
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Language Choices
//
// Each mobile platform picks exactly one implementation language:
//   - Android: [AndroidKotlin] or [AndroidCpp]
//   - iOS: [IOSSwift] or [IOSCpp]
//
// Choosing C++ on either side pulls the shared C++ sources into the package
// (see [ProjectConfig.UsesCpp]).
//
// # Addon Platforms
//
// [PlatformMacOS] and [PlatformWindows] are optional targets enabled by
// explicit selection.
package models
