package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	priorityStyles = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"none":   dimStyle,
	}
)
