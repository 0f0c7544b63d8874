package template

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/nitro-tools/create-nitro-project/internal/config"
	"github.com/nitro-tools/create-nitro-project/pkg/models"
)

// TemplateContext provides data for template rendering during project generation.
// All fields are exported for use with Go's text/template package. The set of
// fields is closed: a template referencing anything else fails to render.
type TemplateContext struct {
	// Project
	ProjectName string // e.g., "my-nitro-module"
	ClassName   string // e.g., "MyNitroModule"
	Description string

	// Namespaces
	ProjectNamespace string // e.g., "mynitromodule"
	AndroidNamespace string
	AndroidPackage   string // e.g., "com.margelo.nitro.mynitromodule"
	CxxNamespace     string

	// Language settings
	AndroidLang   string // "kotlin", "cpp"
	IosLang       string // "swift", "cpp"
	UseKotlin     bool
	UseSwift      bool
	UseAndroidCpp bool
	UseIosCpp     bool
	UseCpp        bool // true when either platform uses C++

	// Addon platforms
	SupportMacos   bool
	SupportWindows bool

	// Meta
	Author              string
	AuthorGithub        string
	Homepage            string
	Year                int
	NitroModulesVersion string // e.g., "^0.29.1"
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext derives a TemplateContext from cfg, then applies any
// provided options. The result depends only on cfg, the options and, unless
// WithYear is given, the current year.
func NewTemplateContext(cfg *models.ProjectConfig, opts ...ContextOption) *TemplateContext {
	namespace := SimpleNamespace(cfg.ProjectName)

	ctx := &TemplateContext{
		ProjectName:         cfg.ProjectName,
		ClassName:           ToPascalCase(cfg.ProjectName),
		Description:         config.DefaultDescription,
		ProjectNamespace:    namespace,
		AndroidNamespace:    namespace,
		AndroidPackage:      config.AndroidPackagePrefix + namespace,
		CxxNamespace:        namespace,
		AndroidLang:         string(cfg.AndroidLanguage),
		IosLang:             string(cfg.IOSLanguage),
		UseKotlin:           cfg.AndroidLanguage == models.AndroidKotlin,
		UseSwift:            cfg.IOSLanguage == models.IOSSwift,
		UseAndroidCpp:       cfg.AndroidLanguage == models.AndroidCpp,
		UseIosCpp:           cfg.IOSLanguage == models.IOSCpp,
		UseCpp:              cfg.UsesCpp(),
		SupportMacos:        cfg.HasPlatform(models.PlatformMacOS),
		SupportWindows:      cfg.HasPlatform(models.PlatformWindows),
		Author:              norm.NFC.String(cfg.Author),
		AuthorGithub:        norm.NFC.String(cfg.AuthorGithub),
		Homepage:            norm.NFC.String(cfg.Homepage),
		Year:                time.Now().Year(),
		NitroModulesVersion: config.NitroModulesVersion,
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// WithYear overrides the copyright year.
func WithYear(year int) ContextOption {
	return func(c *TemplateContext) {
		c.Year = year
	}
}

// WithDescription sets the package description.
func WithDescription(desc string) ContextOption {
	return func(c *TemplateContext) {
		if desc != "" {
			c.Description = norm.NFC.String(desc)
		}
	}
}

// WithNitroModulesVersion sets the react-native-nitro-modules version range.
func WithNitroModulesVersion(version string) ContextOption {
	return func(c *TemplateContext) {
		if version != "" {
			c.NitroModulesVersion = version
		}
	}
}

// ToPascalCase upper-cases the first character and every character that
// follows a hyphen, dropping those hyphens: "my-nitro-module" becomes
// "MyNitroModule". A hyphen not followed by a word character is kept.
func ToPascalCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '-' && i+1 < len(runes) && isWordRune(runes[i+1]) {
			b.WriteString(strings.ToUpper(string(runes[i+1])))
			i++
			continue
		}
		if i == 0 && isWordRune(r) {
			b.WriteString(strings.ToUpper(string(r)))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// SimpleNamespace strips hyphens and lower-cases name: "My-Lib" becomes "mylib".
func SimpleNamespace(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", ""))
}

// isWordRune matches the ASCII word class [A-Za-z0-9_].
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
