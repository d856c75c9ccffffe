package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for terminal rendering. Positive and
// Negative color the two signs of vorticity; Ramp orders the shading
// characters from faint to saturated.
type Theme struct {
	Name     string
	Positive lipgloss.Color
	Negative lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Ramp     []rune
}

// Available themes
var (
	ThemeVortex = Theme{
		Name:     "vortex",
		Positive: lipgloss.Color("#ff5555"), // warm red
		Negative: lipgloss.Color("#5599ff"), // cool blue
		Accent:   lipgloss.Color("#ffff88"),
		Muted:    lipgloss.Color("#666677"),
		Ramp:     []rune{' ', '░', '▒', '▓', '█'},
	}

	ThemePlasma = Theme{
		Name:     "plasma",
		Positive: lipgloss.Color("#ffcc00"), // amber
		Negative: lipgloss.Color("#cc00ff"), // violet
		Accent:   lipgloss.Color("#00ffcc"),
		Muted:    lipgloss.Color("#555566"),
		Ramp:     []rune{' ', '·', '∘', '●', '█'},
	}

	ThemeMono = Theme{
		Name:     "mono",
		Positive: lipgloss.Color("#ffffff"),
		Negative: lipgloss.Color("#888888"),
		Accent:   lipgloss.Color("#cccccc"),
		Muted:    lipgloss.Color("#555555"),
		Ramp:     []rune{' ', '░', '▒', '▓', '█'},
	}

	// Default theme
	CurrentTheme = ThemeVortex

	// All available themes
	Themes = []Theme{
		ThemeVortex,
		ThemePlasma,
		ThemeMono,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeVortex
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
