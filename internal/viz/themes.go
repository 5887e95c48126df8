package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tslab/internal/anim"
	"github.com/san-kum/tslab/internal/palette"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	// Particle colors for the animation canvas, one per mode.
	Associative  lipgloss.Color
	Dissociative lipgloss.Color
}

// Available themes
var (
	ThemeSlate = Theme{
		Name:         "slate",
		Primary:      lipgloss.Color(palette.Blue),
		Secondary:    lipgloss.Color(palette.LightBlue),
		Accent:       lipgloss.Color(palette.Red),
		Text:         lipgloss.Color(palette.Text),
		Muted:        lipgloss.Color(palette.Slate),
		Border:       lipgloss.Color(palette.Grid),
		Associative:  lipgloss.Color(palette.LightBlue),
		Dissociative: lipgloss.Color(palette.Red),
	}

	ThemeRetro = Theme{
		Name:         "retro",
		Primary:      lipgloss.Color("#00ff00"), // green phosphor
		Secondary:    lipgloss.Color("#00cc00"),
		Accent:       lipgloss.Color("#ffff00"),
		Text:         lipgloss.Color("#00ff00"),
		Muted:        lipgloss.Color("#005500"),
		Border:       lipgloss.Color("#003300"),
		Associative:  lipgloss.Color("#88ff88"),
		Dissociative: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:         "minimal",
		Primary:      lipgloss.Color("#ffffff"),
		Secondary:    lipgloss.Color("#cccccc"),
		Accent:       lipgloss.Color("#0088ff"),
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#888888"),
		Border:       lipgloss.Color("#444444"),
		Associative:  lipgloss.Color("#ffffff"),
		Dissociative: lipgloss.Color("#888888"),
	}
)

var themes = []Theme{ThemeSlate, ThemeRetro, ThemeMinimal}

// GetTheme returns the named theme, falling back to slate.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

// ThemeNames lists the themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after t in cycle order.
func NextTheme(t Theme) Theme {
	for i, th := range themes {
		if th.Name == t.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// ParticleColor is the canvas tint for mode m.
func (t Theme) ParticleColor(m anim.Mode) lipgloss.Color {
	if m == anim.Dissociative {
		return t.Dissociative
	}
	return t.Associative
}
