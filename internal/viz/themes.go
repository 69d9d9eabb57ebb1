package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the maze view
type Theme struct {
	Name      string
	Wall      lipgloss.Color
	Visited   lipgloss.Color
	Unvisited lipgloss.Color
	Current   lipgloss.Color
	Goal      lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
}

// Available themes
var (
	// ThemeClassic follows the canvas look: white walls, purple head, green goal.
	ThemeClassic = Theme{
		Name:      "classic",
		Wall:      lipgloss.Color("#ffffff"),
		Visited:   lipgloss.Color("#000000"),
		Unvisited: lipgloss.Color("#303030"),
		Current:   lipgloss.Color("#800080"),
		Goal:      lipgloss.Color("#53f72b"),
		Accent:    lipgloss.Color("86"),
		Muted:     lipgloss.Color("240"),
	}

	ThemeNeon = Theme{
		Name:      "neon",
		Wall:      lipgloss.Color("#00ffff"),
		Visited:   lipgloss.Color("#0a0a0a"),
		Unvisited: lipgloss.Color("#1a001a"),
		Current:   lipgloss.Color("#ff00ff"),
		Goal:      lipgloss.Color("#ffff00"),
		Accent:    lipgloss.Color("#ff00ff"),
		Muted:     lipgloss.Color("#666666"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Wall:      lipgloss.Color("#00ff00"),
		Visited:   lipgloss.Color("#001100"),
		Unvisited: lipgloss.Color("#003300"),
		Current:   lipgloss.Color("#88ff88"),
		Goal:      lipgloss.Color("#ffff00"),
		Accent:    lipgloss.Color("#00cc00"),
		Muted:     lipgloss.Color("#005500"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeNeon,
		ThemeRetro,
	}
)

// GetTheme returns a theme by name, falling back to classic
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after the named one, wrapping around
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
