package styles

import (
	"sayhalo/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a complete color scheme for the application
type Theme struct {
	Name models.Theme

	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Background colors
	BgBase     lipgloss.Color
	BgSurface  lipgloss.Color
	BgElevated lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextOnPrimary lipgloss.Color

	Error lipgloss.Color

	Border lipgloss.Color

	// Glamour style name
	Markdown string
}

// DarkTheme is the dark mode color scheme
var DarkTheme = Theme{
	Name:      models.ThemeDark,
	Primary:   lipgloss.Color("#60A5FA"), // Blue 400
	Secondary: lipgloss.Color("#A78BFA"), // Violet 400
	Accent:    lipgloss.Color("#F472B6"), // Pink 400

	BgBase:     lipgloss.Color("#111827"), // Gray 900
	BgSurface:  lipgloss.Color("#1F2937"), // Gray 800
	BgElevated: lipgloss.Color("#374151"), // Gray 700

	TextPrimary:   lipgloss.Color("#F3F4F6"),
	TextSecondary: lipgloss.Color("#9CA3AF"),
	TextMuted:     lipgloss.Color("#6B7280"),
	TextOnPrimary: lipgloss.Color("#FFFFFF"),

	Error: lipgloss.Color("#FB7185"),

	Border: lipgloss.Color("#374151"),

	Markdown: "dark",
}

// LightTheme is the light mode color scheme
var LightTheme = Theme{
	Name:      models.ThemeLight,
	Primary:   lipgloss.Color("#2563EB"), // Blue 600
	Secondary: lipgloss.Color("#7C3AED"), // Violet 600
	Accent:    lipgloss.Color("#DB2777"), // Pink 600

	BgBase:     lipgloss.Color("#EFF6FF"), // Blue 50
	BgSurface:  lipgloss.Color("#FFFFFF"),
	BgElevated: lipgloss.Color("#FCE7F3"), // Pink 100

	TextPrimary:   lipgloss.Color("#111827"),
	TextSecondary: lipgloss.Color("#4B5563"),
	TextMuted:     lipgloss.Color("#9CA3AF"),
	TextOnPrimary: lipgloss.Color("#FFFFFF"),

	Error: lipgloss.Color("#DC2626"),

	Border: lipgloss.Color("#D1D5DB"),

	Markdown: "light",
}

func ThemeFor(name models.Theme) Theme {
	if name == models.ThemeDark {
		return DarkTheme
	}
	return LightTheme
}

// DetectTheme picks a theme from the terminal background.
func DetectTheme() models.Theme {
	if lipgloss.HasDarkBackground() {
		return models.ThemeDark
	}
	return models.ThemeLight
}
