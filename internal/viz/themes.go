package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fegerar/folio/internal/config"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
	Background lipgloss.Color
	Accent     lipgloss.Color
	Positive   lipgloss.Color
	Negative   lipgloss.Color
	Primary    lipgloss.Color
}

// ThemeFromPalette converts a config palette into terminal colors.
func ThemeFromPalette(p config.Palette) Theme {
	return Theme{
		Name:       p.Name,
		Text:       lipgloss.Color(p.Foreground),
		Muted:      lipgloss.Color(p.Muted),
		Subtle:     lipgloss.Color(p.Subtle),
		Border:     lipgloss.Color(p.Border),
		Background: lipgloss.Color(p.Background),
		Accent:     lipgloss.Color(p.Accent),
		Positive:   lipgloss.Color(p.Positive),
		Negative:   lipgloss.Color(p.Negative),
		Primary:    lipgloss.Color(p.Highlight),
	}
}

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	p, ok := config.GetTheme(name)
	if !ok {
		p, _ = config.GetTheme(config.DefaultTheme)
	}
	return ThemeFromPalette(p)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	return config.ThemeNames()
}
