package ui

import "os"

// ThemeConfig selects the color behavior of a Theme.
type ThemeConfig struct {
	// Mode is "dark", "light" or "auto". Unknown values behave like "auto".
	Mode string
	// NoColor disables all styling. A non-empty NO_COLOR in the environment forces it.
	NoColor bool
}

// Colors holds the hex colors used by the spinner and the output cards.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme is the resolved set of colors shared by every UI component.
type Theme struct {
	Mode    string
	NoColor bool
	Colors  Colors
}

var (
	darkColors = Colors{
		Primary:   "#DA7756",
		Secondary: "#F2A58E",
		Success:   "#5FD787",
		Warning:   "#FFD75F",
		Error:     "#FF5F5F",
		Muted:     "#8A8A8A",
	}
	lightColors = Colors{
		Primary:   "#C45A3B",
		Secondary: "#A04A30",
		Success:   "#008700",
		Warning:   "#AF8700",
		Error:     "#D70000",
		Muted:     "#6C6C6C",
	}
)

// NewTheme resolves cfg into a Theme.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{Mode: cfg.Mode, NoColor: cfg.NoColor}
	if os.Getenv("NO_COLOR") != "" {
		t.NoColor = true
	}

	switch cfg.Mode {
	case "light":
		t.Colors = lightColors
	case "dark":
		t.Colors = darkColors
	default:
		t.Mode = "auto"
		t.Colors = darkColors
	}
	return t
}
