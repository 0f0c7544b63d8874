package models

// AndroidLanguage is the implementation language of the Android module.
type AndroidLanguage string

const (
	// AndroidKotlin generates a Kotlin HybridObject (default).
	AndroidKotlin AndroidLanguage = "kotlin"

	// AndroidCpp generates a pure C++ HybridObject with a Java package shim.
	AndroidCpp AndroidLanguage = "cpp"
)

// ValidAndroidLanguages returns all valid Android language values.
func ValidAndroidLanguages() []AndroidLanguage {
	return []AndroidLanguage{AndroidKotlin, AndroidCpp}
}

// IsValid checks if the Android language is a valid value.
func (l AndroidLanguage) IsValid() bool {
	switch l {
	case AndroidKotlin, AndroidCpp:
		return true
	}
	return false
}

// IOSLanguage is the implementation language of the iOS module.
type IOSLanguage string

const (
	// IOSSwift generates a Swift HybridObject (default).
	IOSSwift IOSLanguage = "swift"

	// IOSCpp generates a pure C++ HybridObject.
	IOSCpp IOSLanguage = "cpp"
)

// ValidIOSLanguages returns all valid iOS language values.
func ValidIOSLanguages() []IOSLanguage {
	return []IOSLanguage{IOSSwift, IOSCpp}
}

// IsValid checks if the iOS language is a valid value.
func (l IOSLanguage) IsValid() bool {
	switch l {
	case IOSSwift, IOSCpp:
		return true
	}
	return false
}

// Platform is an optional addon platform.
type Platform string

const (
	PlatformMacOS   Platform = "macos"
	PlatformWindows Platform = "windows"
)

// ValidPlatforms returns all supported addon platforms.
func ValidPlatforms() []Platform {
	return []Platform{PlatformMacOS, PlatformWindows}
}

// IsValid checks if the platform is a supported addon.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformMacOS, PlatformWindows:
		return true
	}
	return false
}

// ExampleConfig selects how much of the example app is generated.
type ExampleConfig string

const (
	// ExampleDefault writes a single minimal App.tsx.
	ExampleDefault ExampleConfig = "default"

	// ExampleFull adds tests, benchmarks and navigation to the example app.
	ExampleFull ExampleConfig = "full"
)

// ValidExampleConfigs returns all valid example configurations.
func ValidExampleConfigs() []ExampleConfig {
	return []ExampleConfig{ExampleDefault, ExampleFull}
}

// IsValid checks if the example configuration is a valid value.
func (e ExampleConfig) IsValid() bool {
	switch e {
	case ExampleDefault, ExampleFull:
		return true
	}
	return false
}
