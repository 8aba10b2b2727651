package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are derived from a Theme once per renderer.
type styles struct {
	title     lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	stats     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	graph     lipgloss.Style
	status    lipgloss.Style
	gradient  [3]lipgloss.Style
	current   lipgloss.Style
	displaced lipgloss.Style
	compared  lipgloss.Style
	blank     lipgloss.Style
}

func newStyles(t Theme) styles {
	bg := lipgloss.NewStyle().Background(t.Background)
	s := styles{
		title:     bg.Bold(true).Foreground(t.Title),
		text:      bg.Foreground(t.Text),
		muted:     bg.Foreground(t.Muted).Italic(true),
		stats:     lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(0, 2),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(13),
		value:     lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		graph:     lipgloss.NewStyle().Foreground(t.Current),
		status:    lipgloss.NewStyle().Bold(true).Foreground(t.Compared),
		current:   bg.Foreground(t.Current),
		displaced: bg.Foreground(t.Displaced),
		compared:  bg.Foreground(t.Compared),
		blank:     bg,
	}
	for i, c := range t.Gradient {
		s.gradient[i] = bg.Foreground(c)
	}
	return s
}

// progressBar renders a bar filled to percent of width.
func (s styles) progressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.current.Render(strings.Repeat("█", filled)) + s.muted.Render(strings.Repeat("░", width-filled))
}

// separator renders a decorative rule.
func (s styles) separator(width int) string {
	if width < 8 {
		return s.muted.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.muted.Render(left + " ◆ " + right)
}
