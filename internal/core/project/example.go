package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nitro-tools/create-nitro-project/internal/config"
	"github.com/nitro-tools/create-nitro-project/internal/defs"
	"github.com/nitro-tools/create-nitro-project/internal/template"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

const metroConfig = `const { getDefaultConfig, mergeConfig } = require('@react-native/metro-config');
const path = require('path');
const root = path.resolve(__dirname, '..');
const packagesDir = path.join(root, 'packages');

const config = {
  watchFolders: [root],
  resolver: {
    nodeModulesPaths: [
      path.join(__dirname, 'node_modules'),
      path.join(root, 'node_modules'),
      packagesDir,
    ],
    extraNodeModules: {
      stream: require.resolve('readable-stream'),
    },
  },
  transformer: {
    getTransformOptions: async () => ({
      transform: {
        experimentalImportSupport: false,
        inlineRequires: true,
      },
    }),
  },
};

module.exports = mergeConfig(getDefaultConfig(__dirname), config);
`

const babelConfig = `module.exports = {
  presets: ['module:@react-native/babel-preset', '@babel/preset-typescript'],
  plugins: [
    ['@babel/plugin-transform-class-static-block'],
    [
      'module-resolver',
      {
        extensions: ['.tsx', '.ts', '.js', '.json'],
      },
    ],
  ],
};
`

// gradlePluginInclude matches the example's reference to the React Native
// gradle plugin, which lives in the workspace root node_modules instead.
var gradlePluginInclude = regexp.MustCompile(`includeBuild\(['"]\.\./node_modules/@react-native/gradle-plugin['"]\)`)

const gradlePluginRootInclude = "includeBuild('../../node_modules/@react-native/gradle-plugin')"

// fullExampleDirs are created before the example-full overlay is copied.
var fullExampleDirs = []string{"tests", "benchmarks", "navigators", "components"}

// ExampleBootstrapper creates the example app next to the library package
// by running the React Native community CLI and then wiring the result
// into the workspace.
type ExampleBootstrapper struct {
	runner      CommandRunner
	templates   fs.FS
	contextOpts []template.ContextOption
	logger      *slog.Logger
}

// NewExampleBootstrapper creates an ExampleBootstrapper. templates must
// contain the example-default and example-full subtrees.
func NewExampleBootstrapper(runner CommandRunner, templates fs.FS, logger *slog.Logger, opts ...template.ContextOption) *ExampleBootstrapper {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExampleBootstrapper{
		runner:      runner,
		templates:   templates,
		contextOpts: opts,
		logger:      logger,
	}
}

// GeneratorArgs returns the npx arguments that create the example app for
// className.
func GeneratorArgs(className string) []string {
	return []string{
		config.ExampleGeneratorPackage,
		"init", className + config.ExampleAppSuffix,
		"--directory", defs.ExampleDir,
		"--skip-install",
		"--version", config.ExampleGeneratorRNVersion,
		"--pm", config.ExampleGeneratorPackageMgr,
	}
}

// Bootstrap replaces <target>/example with a freshly generated app and
// patches it to consume the library from the workspace. A generator
// failure is returned as ErrExampleInit.
func (b *ExampleBootstrapper) Bootstrap(ctx context.Context, cfg *models.ProjectConfig) error {
	target := filepath.Clean(cfg.TargetDir)
	exampleDir := filepath.Join(target, defs.ExampleDir)
	data := template.NewTemplateContext(cfg, b.contextOpts...)

	if err := os.RemoveAll(exampleDir); err != nil {
		return fmt.Errorf("remove example dir: %w", err)
	}

	b.logger.Info("generating example app", "dir", exampleDir)
	if err := b.runner.Run(ctx, target, "npx", GeneratorArgs(data.ClassName)...); err != nil {
		return fmt.Errorf("%w: %w", ErrExampleInit, err)
	}

	// The generator initializes its own repository.
	if err := os.RemoveAll(filepath.Join(exampleDir, defs.GitDir)); err != nil {
		return fmt.Errorf("remove example git dir: %w", err)
	}

	if err := writeExampleFile(exampleDir, defs.MetroConfigJS, metroConfig); err != nil {
		return err
	}
	if err := writeExampleFile(exampleDir, defs.BabelConfigJS, babelConfig); err != nil {
		return err
	}

	manifest := filepath.Join(exampleDir, defs.PackageJSON)
	patched, err := patchManifest(manifest,
		manifestPatch{Section: "dependencies", Entries: []manifestEntry{
			{config.NitroModulesPackage, data.NitroModulesVersion},
			{cfg.ProjectName, config.WorkspaceVersion},
		}},
		manifestPatch{Section: "devDependencies", Entries: []manifestEntry{
			{"babel-plugin-module-resolver", config.ModuleResolverVersion},
			{"readable-stream", config.ReadableStreamVersion},
		}},
	)
	if err != nil {
		return fmt.Errorf("patch example manifest: %w", err)
	}
	b.logger.Debug("example manifest", "patched", patched)

	if err := patchSettingsGradle(filepath.Join(exampleDir, defs.AndroidDir, defs.SettingsGradle)); err != nil {
		return err
	}

	if cfg.ExampleConfig == models.ExampleFull {
		return b.applyFull(ctx, cfg, exampleDir, data)
	}

	app, err := template.NewRenderer(b.templates).Render(path.Join(defs.ExampleDefaultTemplate, defs.AppTSX+defs.TemplateSuffix), data)
	if err != nil {
		return fmt.Errorf("render example app: %w", err)
	}
	return writeExampleFile(exampleDir, defs.AppTSX, string(app))
}

// applyFull adds navigation, tests and benchmarks to the example app.
func (b *ExampleBootstrapper) applyFull(ctx context.Context, cfg *models.ProjectConfig, exampleDir string, data *template.TemplateContext) error {
	b.logger.Info("configuring full example app")

	manifest := filepath.Join(exampleDir, defs.PackageJSON)
	if _, err := patchManifest(manifest,
		manifestPatch{Section: "dependencies", Entries: []manifestEntry{
			{cfg.ProjectName, config.WorkspaceVersion},
			{"chai", config.ChaiVersion},
			{"tinybench", config.TinybenchVersion},
			{"@react-navigation/native", config.ReactNavigationVersion},
			{"@react-navigation/native-stack", config.ReactNavigationVersion},
			{"@react-navigation/bottom-tabs", config.ReactNavigationVersion},
			{"react-native-screens", config.ReactNativeScreensVersion},
			{"react-native-safe-area-context", config.ReactNativeSafeAreaVersion},
		}},
		manifestPatch{Section: "devDependencies", Entries: []manifestEntry{
			{"@types/chai", config.ChaiTypesVersion},
		}},
		manifestPatch{Section: "scripts", Entries: []manifestEntry{
			{"pods", "pod-install ios"},
		}},
	); err != nil {
		return fmt.Errorf("patch full example manifest: %w", err)
	}

	for _, dir := range fullExampleDirs {
		path := filepath.Join(exampleDir, "src", dir)
		if err := os.MkdirAll(path, defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", path, err)
		}
	}

	if _, err := template.NewDeployer(b.templates).Overlay(ctx, defs.ExampleFullTemplate, exampleDir); err != nil {
		return fmt.Errorf("copy full example templates: %w", err)
	}
	if _, err := template.RenderTree(ctx, exampleDir, data); err != nil {
		return fmt.Errorf("render full example templates: %w", err)
	}

	if err := os.Remove(filepath.Join(exampleDir, defs.AppTSX)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", defs.AppTSX, err)
	}

	return patchIndexJS(filepath.Join(exampleDir, defs.IndexJS))
}

func writeExampleFile(exampleDir, name, content string) error {
	if err := os.WriteFile(filepath.Join(exampleDir, name), []byte(content), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// patchSettingsGradle points the gradle plugin include at the workspace
// root node_modules. A missing file is skipped.
func patchSettingsGradle(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", defs.SettingsGradle, err)
	}

	patched := gradlePluginInclude.ReplaceAllLiteralString(string(data), gradlePluginRootInclude)
	if err := os.WriteFile(path, []byte(patched), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.SettingsGradle, err)
	}
	return nil
}

// patchIndexJS makes the entry point load the full app from src/. Only the
// first reference is rewritten. A missing file is skipped.
func patchIndexJS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", defs.IndexJS, err)
	}

	patched := strings.Replace(string(data), "./App", "./src/App", 1)
	if err := os.WriteFile(path, []byte(patched), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.IndexJS, err)
	}
	return nil
}
