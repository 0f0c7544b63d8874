package project

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nitro-tools/create-nitro-project/internal/template"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// --- Fakes ---

type runCall struct {
	dir  string
	name string
	args []string
}

// fakeRunner records calls and, unless err is set, writes a minimal app
// into <dir>/example the way the React Native CLI would.
type fakeRunner struct {
	calls []runCall
	err   error
	files map[string]string // relative to the example dir; nil uses generatedApp
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, runCall{dir: dir, name: name, args: args})
	if f.err != nil {
		return f.err
	}

	files := f.files
	if files == nil {
		files = generatedApp()
	}
	exampleDir := filepath.Join(dir, "example")
	if err := os.MkdirAll(exampleDir, 0o755); err != nil {
		return err
	}
	for rel, content := range files {
		path := filepath.Join(exampleDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

const generatedManifest = `{
  "name": "MyNitroModuleExample",
  "version": "0.0.1",
  "private": true,
  "scripts": {
    "android": "react-native run-android",
    "start": "react-native start"
  },
  "dependencies": {
    "react": "19.1.0",
    "react-native": "0.81.0"
  },
  "devDependencies": {
    "@babel/core": "^7.25.2",
    "typescript": "^5.8.3"
  },
  "engines": {
    "node": ">=20"
  }
}
`

const generatedSettingsGradle = `pluginManagement { includeBuild("../node_modules/@react-native/gradle-plugin") }
plugins { id("com.facebook.react.settings") }
rootProject.name = 'MyNitroModuleExample'
include ':app'
includeBuild('../node_modules/@react-native/gradle-plugin')
`

func generatedApp() map[string]string {
	return map[string]string{
		"package.json":             generatedManifest,
		"index.js":                 "import { AppRegistry } from 'react-native';\nimport App from './App';\n// see ./App\nAppRegistry.registerComponent('MyNitroModuleExample', () => App);\n",
		"App.tsx":                  "export default function App() { return null; }\n",
		"android/settings.gradle":  generatedSettingsGradle,
		".git/HEAD":                "ref: refs/heads/main\n",
		"__tests__/App.test.tsx":   "test('renders', () => {});\n",
		"ios/Podfile":              "platform :ios\n",
		"android/app/build.gradle": "apply plugin: 'com.android.application'\n",
	}
}

type fakeCommitter struct {
	calls   int
	dir     string
	message string
	err     error
}

func (f *fakeCommitter) InitialCommit(_ context.Context, dir, message string) error {
	f.calls++
	f.dir = dir
	f.message = message
	return f.err
}

type recordingReporter struct {
	stages []string
}

func (r *recordingReporter) Stage(title string) {
	r.stages = append(r.stages, title)
}

// --- Fixtures ---

func embeddedTemplates(t *testing.T) fs.FS {
	t.Helper()
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates: %v", err)
	}
	return fsys
}

func testConfig(t *testing.T, android models.AndroidLanguage, ios models.IOSLanguage) *models.ProjectConfig {
	t.Helper()
	return &models.ProjectConfig{
		ProjectName:     "my-nitro-module",
		AndroidLanguage: android,
		IOSLanguage:     ios,
		TargetDir:       filepath.Join(t.TempDir(), "my-nitro-module"),
		ExampleConfig:   models.ExampleDefault,
		Author:          "Jane Doe",
		AuthorGithub:    "janedoe",
		Homepage:        "https://github.com/janedoe/my-nitro-module",
	}
}

// --- Assertions ---

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// snapshot returns every regular file below root keyed by slash path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return files
}

// assertOrder checks that each needle appears in s after the previous one.
func assertOrder(t *testing.T, s string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		idx := strings.Index(s[pos:], n)
		if idx < 0 {
			t.Errorf("%q not found after offset %d in:\n%s", n, pos, s)
			return
		}
		pos += idx + len(n)
	}
}
