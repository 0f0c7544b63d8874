package config

// Default answers used when neither a flag, a preset nor the wizard
// provides a value.
const (
	DefaultProjectName   = "my-nitro-module"
	DefaultAndroid       = "kotlin"
	DefaultIOS           = "swift"
	DefaultExample       = "default"
	DefaultAuthorName    = "Your Name"
	DefaultGithubHandle  = "username"
	DefaultDescription   = "A React Native Nitro Module"
	AndroidPackagePrefix = "com.margelo.nitro."
)

// Dependency versions written into the example app manifest.
const (
	NitroModulesVersion        = "^0.29.1"
	ModuleResolverVersion      = "^5.0.0"
	ReadableStreamVersion      = "^4.5.0"
	WorkspaceVersion           = "workspace:*"
	ChaiVersion                = "^5.0.0"
	ChaiTypesVersion           = "^5.0.0"
	TinybenchVersion           = "^2.0.0"
	ReactNavigationVersion     = "^7.0.0"
	ReactNativeScreensVersion  = "^4.0.0"
	ReactNativeSafeAreaVersion = "^5.0.0"
	NitroModulesPackage        = "react-native-nitro-modules"
)

// Example app generator invocation and project finishing.
const (
	ExampleAppSuffix           = "Example"
	InitialCommitMessage       = "Initial commit: Generated Nitro module"
	ExampleGeneratorPackage    = "@react-native-community/cli@latest"
	ExampleGeneratorPackageMgr = "npm"
	ExampleGeneratorRNVersion  = "latest"
	HomepageURLFormat          = "https://github.com/%s/%s"
	CIEnvVar                   = "CI"
)
