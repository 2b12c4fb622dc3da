package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the chart.
type Theme struct {
	Name     string
	Active   lipgloss.Color
	Inactive lipgloss.Color
	Point    lipgloss.Color
	Focus    lipgloss.Color
	Axis     lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Active:   lipgloss.Color("#00ffff"),
		Inactive: lipgloss.Color("#666688"),
		Point:    lipgloss.Color("#ff00ff"),
		Focus:    lipgloss.Color("#ffff00"),
		Axis:     lipgloss.Color("#444466"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#555566"),
		Error:    lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:     "retro",
		Active:   lipgloss.Color("#88ff88"),
		Inactive: lipgloss.Color("#005500"),
		Point:    lipgloss.Color("#00ff00"),
		Focus:    lipgloss.Color("#ffff00"),
		Axis:     lipgloss.Color("#00cc00"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Active:   lipgloss.Color("#ffffff"),
		Inactive: lipgloss.Color("#888888"),
		Point:    lipgloss.Color("#cccccc"),
		Focus:    lipgloss.Color("#0088ff"),
		Axis:     lipgloss.Color("#888888"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Active:   lipgloss.Color("#00a8cc"),
		Inactive: lipgloss.Color("#4488aa"),
		Point:    lipgloss.Color("#e0f0ff"),
		Focus:    lipgloss.Color("#ffd700"),
		Axis:     lipgloss.Color("#0077be"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Error:    lipgloss.Color("#ff4444"),
	}

	// Blossom keeps the pink points of the static export.
	ThemeBlossom = Theme{
		Name:     "blossom",
		Active:   lipgloss.Color("#000000"),
		Inactive: lipgloss.Color("#aaaaaa"),
		Point:    lipgloss.Color("#ffc0cb"),
		Focus:    lipgloss.Color("#ff6b6b"),
		Axis:     lipgloss.Color("#8b6b8c"),
		Text:     lipgloss.Color("#2d1b2e"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Error:    lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeCyberpunk, ThemeRetro, ThemeMinimal, ThemeOcean, ThemeBlossom}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
