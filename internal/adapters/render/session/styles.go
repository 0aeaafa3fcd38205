package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	identity lipgloss.Style
	detail   lipgloss.Style
	warning  lipgloss.Style
	empty    lipgloss.Style
	key      lipgloss.Style
	value    lipgloss.Style
	faint    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		identity: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:    lipgloss.NewStyle().Faint(true),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
