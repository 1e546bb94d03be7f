package config

import "sort"

// Palette is a named color scheme shared by the terminal page and the static
// site. Values are hex colors.
type Palette struct {
	Name       string
	Foreground string
	Muted      string
	Subtle     string
	Border     string
	Background string
	Accent     string
	Positive   string
	Negative   string
	Highlight  string
}

var Themes = map[string]Palette{
	"light": {
		Name: "light", Foreground: "#111827", Muted: "#4b5563", Subtle: "#9ca3af",
		Border: "#e5e7eb", Background: "#ffffff", Accent: "#3b82f6",
		Positive: "#60a5fa", Negative: "#f87171", Highlight: "#2563eb",
	},
	"dark": {
		Name: "dark", Foreground: "#e4e4e7", Muted: "#a1a1aa", Subtle: "#71717a",
		Border: "#27272a", Background: "#18181b", Accent: "#60a5fa",
		Positive: "#60a5fa", Negative: "#f87171", Highlight: "#3b82f6",
	},
	"mono": {
		Name: "mono", Foreground: "#ffffff", Muted: "#cccccc", Subtle: "#888888",
		Border: "#444444", Background: "#000000", Accent: "#ffffff",
		Positive: "#dddddd", Negative: "#777777", Highlight: "#ffffff",
	},
}

func GetTheme(name string) (Palette, bool) {
	p, ok := Themes[name]
	return p, ok
}

// ThemeNames returns the preset names in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme cycles through ThemeNames.
func NextTheme(name string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
