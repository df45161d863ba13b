package cli

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle renders section headings in list and stats output.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	// DayStyle renders day-group headers.
	DayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	// SubtleStyle renders ids, timestamps and secondary detail.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// ValueStyle renders computed numbers.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))
)
