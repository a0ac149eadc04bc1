package viz

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

// Theme defines the terminal color scheme. Surface runs from the lowest to
// the highest height band.
type Theme struct {
	Name    string
	Surface [SurfaceBands]lipgloss.Color
	Path    lipgloss.Color
	Point   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Surface: [SurfaceBands]lipgloss.Color{"#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf"},
		Path:    lipgloss.Color("#00ffff"),
		Point:   lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Accent:  lipgloss.Color("#ff00ff"),
	}

	// Viridis bands, blue path: the colors of the browser figure.
	ThemeViridis = Theme{
		Name:    "viridis",
		Surface: [SurfaceBands]lipgloss.Color{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
		Path:    lipgloss.Color("#0000ff"),
		Point:   lipgloss.Color("#d73027"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Accent:  lipgloss.Color("#4575b4"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Surface: [SurfaceBands]lipgloss.Color{"#003300", "#005500", "#008800", "#00cc00", "#00ff00"},
		Path:    lipgloss.Color("#88ff88"),
		Point:   lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Accent:  lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Surface: [SurfaceBands]lipgloss.Color{"#001a33", "#004466", "#0077be", "#00a8cc", "#e0f0ff"},
		Path:    lipgloss.Color("#ffd700"),
		Point:   lipgloss.Color("#ff4444"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Accent:  lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Surface: [SurfaceBands]lipgloss.Color{"#2d1b2e", "#8b6b8c", "#ff6b6b", "#feca57", "#fff5f5"},
		Path:    lipgloss.Color("#ff9ff3"),
		Point:   lipgloss.Color("#5fd068"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Accent:  lipgloss.Color("#feca57"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeViridis,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
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

// LookupTheme returns the named theme or ErrUnknownTheme.
func LookupTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, ErrUnknownTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// ClassColor is the foreground color for a cell class.
func (t Theme) ClassColor(c Class) lipgloss.Color {
	switch {
	case c == ClassPath:
		return t.Path
	case c == ClassPoint:
		return t.Point
	case c >= ClassSurface0 && c <= ClassSurface4:
		return t.Surface[c-ClassSurface0]
	}
	return t.Text
}
