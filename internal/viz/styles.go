package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Subtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Value     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	Curve     = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	Threshold = lipgloss.NewStyle().Foreground(lipgloss.Color("161"))
	KeyHint   = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
)
