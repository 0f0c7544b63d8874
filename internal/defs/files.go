package defs

import "io/fs"

// Permissions for generated directories and files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)

// TemplateSuffix marks files rendered by the template engine.
const TemplateSuffix = ".tmpl"

// Embedded template subtree names.
const (
	BaseTemplate           = "base"
	AndroidKotlinTemplate  = "android-kotlin"
	AndroidCppTemplate     = "android-cpp"
	IOSSwiftTemplate       = "ios-swift"
	IOSCppTemplate         = "ios-cpp"
	CppSharedTemplate      = "cpp-shared"
	ExampleDefaultTemplate = "example-default"
	ExampleFullTemplate    = "example-full"
)

// Directory names inside a generated project.
const (
	PackagesDir        = "packages"
	LibraryPlaceholder = "library"
	AndroidDir         = "android"
	IOSDir             = "ios"
	CppDir             = "cpp"
	ExampleDir         = "example"
	GitDir             = ".git"
)

// Common file names used across the project.
const (
	PackageJSON     = "package.json"
	MetroConfigJS   = "metro.config.js"
	BabelConfigJS   = "babel.config.js"
	SettingsGradle  = "settings.gradle"
	AppTSX          = "App.tsx"
	IndexJS         = "index.js"
	ESLintConfigJS  = "eslint.config.js"
	PrettierRC      = ".prettierrc.json"
	PrettierIgnore  = ".prettierignore"
	ClangFormat     = ".clang-format"
	CppLintConfig   = "CPPLINT.cfg"
	PodspecTemplate = "library.podspec"
)
