package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderProgressBar renders how much of a countdown has elapsed.
func RenderProgressBar(remaining float64, planned int, label string, width int, progressStyle lipgloss.Style, format func(int) string) string {
	if planned <= 0 {
		return label + ": N/A"
	}

	elapsed := float64(planned) - remaining
	percent := elapsed / float64(planned)
	if percent < 0 {
		percent = 0
	}
	if percent > 1.0 {
		percent = 1.0
	}

	barWidth := width - 20 // Leave space for text
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * percent)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return lipgloss.JoinHorizontal(lipgloss.Left,
		label+": ",
		progressStyle.Render(bar),
		fmt.Sprintf(" %d%%", int(percent*100)),
		" ("+format(planned)+")",
	)
}
