package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/photosim/internal/scene"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeLab = Theme{
		Name:       "lab",
		Primary:    lipgloss.Color("#00ffff"),
		Secondary:  lipgloss.Color("#88aacc"),
		Accent:     lipgloss.Color("#ffcc00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#b4b4b4"),
		Muted:      lipgloss.Color("#555566"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemePaper = Theme{
		Name:       "paper",
		Primary:    lipgloss.Color("#0044aa"),
		Secondary:  lipgloss.Color("#444444"),
		Accent:     lipgloss.Color("#aa4400"),
		Background: lipgloss.Color("#eeeeee"),
		Text:       lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#008800"),
		Warning:    lipgloss.Color("#aa6600"),
		Error:      lipgloss.Color("#cc0000"),
	}

	// Default theme
	DefaultTheme = ThemeLab

	// All available themes
	Themes = []Theme{
		ThemeLab,
		ThemeRetroGreen,
		ThemePaper,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return DefaultTheme
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return DefaultTheme
}

// SceneStyle converts the theme into drawing colours for non-terminal
// surfaces.
func (t Theme) SceneStyle() scene.Style {
	return scene.Style{
		Background: nrgba(t.Background),
		Foreground: nrgba(t.Text),
	}
}

func nrgba(c lipgloss.Color) color.NRGBA {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
