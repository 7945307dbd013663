// Package console renders the non-interactive terminal output of the CLI:
// banner, run report and error messages.
package console

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Banner   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Key      lipgloss.Style
	Value    lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Key:      lipgloss.NewStyle().Faint(true).Width(10),
		Value:    lipgloss.NewStyle().Bold(true),
		Card: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
