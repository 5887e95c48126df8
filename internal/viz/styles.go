package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are rebuilt whenever the theme changes.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Panel     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	KeyHint   lipgloss.Style
	Subtle    lipgloss.Style
	Error     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Tab: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			Background(t.Primary).
			Padding(0, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Label: lipgloss.NewStyle().Foreground(t.Muted),
		Value: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Subtle: lipgloss.NewStyle().Foreground(t.Border),
		Error:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

// Slider renders a labelled bar for v within [lo, hi].
func (s Styles) Slider(label string, v, lo, hi float64, unit string, width int) string {
	if width < 1 {
		width = 1
	}
	pct := 0.0
	if hi > lo {
		pct = (v - lo) / (hi - lo)
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := s.Value.Render(strings.Repeat("█", filled)) + s.Subtle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s %s", s.Label.Render(fmt.Sprintf("%-10s", label)), bar,
		s.Value.Render(fmt.Sprintf("%g %s", v, unit)))
}

// Selector renders the integer choices in [lo, hi] with v highlighted.
func (s Styles) Selector(label string, v, lo, hi int) string {
	var b strings.Builder
	b.WriteString(s.Label.Render(fmt.Sprintf("%-10s", label)))
	for i := lo; i <= hi; i++ {
		text := fmt.Sprintf("%+d", i)
		if i == 0 {
			text = " 0"
		}
		if i == v {
			b.WriteString(s.ActiveTab.Padding(0, 1).Render(text))
		} else {
			b.WriteString(s.Tab.Padding(0, 1).Render(text))
		}
	}
	return b.String()
}

// Separator is a decorative rule
func (s Styles) Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}
