package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("12"))

	selectedStyle = lipgloss.NewStyle().Reverse(true)

	statusColors = map[string]lipgloss.Style{
		"todo":   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		"doing":  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"done":   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"closed": lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}

	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))

	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func statusStyle(status string) lipgloss.Style {
	if s, ok := statusColors[status]; ok {
		return s
	}
	return unknownStyle
}
