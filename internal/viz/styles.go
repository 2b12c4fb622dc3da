package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	point    lipgloss.Style
	focus    lipgloss.Style
	axis     lipgloss.Style
	tick     lipgloss.Style
	panel    lipgloss.Style
	heading  lipgloss.Style
	value    lipgloss.Style
	muted    lipgloss.Style
	key      lipgloss.Style
	err      lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Active),
		active:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(t.Active),
		inactive: lipgloss.NewStyle().Foreground(t.Inactive),
		point:    lipgloss.NewStyle().Foreground(t.Point),
		focus:    lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(t.Focus),
		axis:     lipgloss.NewStyle().Foreground(t.Axis),
		tick:     lipgloss.NewStyle().Foreground(t.Muted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Axis).
			Padding(0, 1).
			Width(panelWidth - 4),
		heading: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		key:     lipgloss.NewStyle().Bold(true).Foreground(t.Active),
		err:     lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}

// label renders an axis caption with its highlight.
func (s styles) label(text string, active bool) string {
	if active {
		return s.active.Render("▸ " + text)
	}
	return s.inactive.Render("  " + text)
}

// hints renders "key action" pairs separated by two spaces.
func (s styles) hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.key.Render(pairs[i]))
		b.WriteString(s.muted.Render(" " + pairs[i+1]))
	}
	return b.String()
}

func (s styles) separator(width int) string {
	if width < 1 {
		return ""
	}
	return s.muted.Render(strings.Repeat("─", width))
}
