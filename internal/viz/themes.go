package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the palette used by the renderer.
type Theme struct {
	Name       string
	Gradient   [3]lipgloss.Color // resting bars, cycled by index
	Current    lipgloss.Color
	Displaced  lipgloss.Color
	Compared   lipgloss.Color
	Title      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:       "classic",
		Gradient:   [3]lipgloss.Color{"#808080", "#a0a0a0", "#c0c0c0"},
		Current:    lipgloss.Color("#00ff00"),
		Displaced:  lipgloss.Color("#ff0000"),
		Compared:   lipgloss.Color("#ffcc00"),
		Title:      lipgloss.Color("#00ff00"),
		Text:       lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#555555"),
		Background: lipgloss.Color("#ffffff"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Gradient:   [3]lipgloss.Color{"#5f00af", "#8700d7", "#af00ff"},
		Current:    lipgloss.Color("#00ffff"), // Cyan
		Displaced:  lipgloss.Color("#ff00ff"), // Magenta
		Compared:   lipgloss.Color("#ffff00"),
		Title:      lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Background: lipgloss.Color("#0a0a0a"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Gradient:   [3]lipgloss.Color{"#005500", "#007700", "#009900"},
		Current:    lipgloss.Color("#88ff88"), // Green phosphor
		Displaced:  lipgloss.Color("#ffff00"),
		Compared:   lipgloss.Color("#00cc00"),
		Title:      lipgloss.Color("#00ff00"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Background: lipgloss.Color("#001100"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Gradient:   [3]lipgloss.Color{"#0077be", "#0090c8", "#00a8cc"},
		Current:    lipgloss.Color("#00ff88"),
		Displaced:  lipgloss.Color("#ff4444"),
		Compared:   lipgloss.Color("#ffd700"),
		Title:      lipgloss.Color("#00a8cc"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Background: lipgloss.Color("#001a33"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Gradient:   [3]lipgloss.Color{"#8b6b8c", "#a8789a", "#c486a8"},
		Current:    lipgloss.Color("#5fd068"),
		Displaced:  lipgloss.Color("#ff4757"),
		Compared:   lipgloss.Color("#feca57"),
		Title:      lipgloss.Color("#ff6b6b"), // Coral
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Background: lipgloss.Color("#2d1b2e"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// HasTheme reports whether name is a built-in theme.
func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
