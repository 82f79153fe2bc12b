package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// LaunchTUI initializes and launches the terminal UI using Bubbletea.
func LaunchTUI(initial string, logger *slog.Logger) error {
	m := NewModel(initial, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
