package preview

import "github.com/charmbracelet/lipgloss"

// Theme colors the chrome around terminal previews.
type Theme struct {
	Name   string
	Header lipgloss.Color
	Value  lipgloss.Color
	Muted  lipgloss.Color
	Graph  lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:   "default",
		Header: lipgloss.Color("#ffffff"),
		Value:  lipgloss.Color("#00ccff"),
		Muted:  lipgloss.Color("#888899"),
		Graph:  lipgloss.Color("#18bbbb"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Header: lipgloss.Color("#e0f0ff"),
		Value:  lipgloss.Color("#00a8cc"),
		Muted:  lipgloss.Color("#4488aa"),
		Graph:  lipgloss.Color("#0077be"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Header: lipgloss.Color("#ffffff"),
		Value:  lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#888888"),
		Graph:  lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{ThemeDefault, ThemeOcean, ThemeMono}
)

// GetTheme returns a theme by name, the default when unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
