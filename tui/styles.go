package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#50FA7B")
	colorGrey   = lipgloss.Color("#888888")
	colorAccent = lipgloss.Color("#BD93F9")
	colorRed    = lipgloss.Color("#FF5555")

	BorderIdle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGrey).
			Padding(0, 2)

	BorderRunning = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(0, 2)

	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorAccent).
			Width(fieldWidth + 2)

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorAccent).
			Bold(true).
			Align(lipgloss.Center).
			Width(6)

	ProgressStyle = lipgloss.NewStyle().Foreground(colorGreen)
	SuccessStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	ErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	FooterStyle   = lipgloss.NewStyle().Foreground(colorGrey)
)
