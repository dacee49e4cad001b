package tui

import "github.com/charmbracelet/lipgloss"

// Styles
type styles struct {
	title    lipgloss.Style
	status   lipgloss.Style
	disk     lipgloss.Style
	peg      lipgloss.Style
	selected lipgloss.Style
	solved   lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
}

func newStyles(c Colors) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Cursor)),

		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),

		disk: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Disk)),

		peg: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Peg)),

		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Cursor)),

		solved: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82")),

		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
