package reply

import "github.com/charmbracelet/lipgloss"

type styles struct {
	panel lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	faint lipgloss.Style
}

func newStyles() styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		key:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint: lipgloss.NewStyle().Faint(true),
	}
}
