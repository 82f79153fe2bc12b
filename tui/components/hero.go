package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderButton renders the toggle control showing glyph.
func RenderButton(glyph string, buttonStyle lipgloss.Style) string {
	return buttonStyle.Render(glyph)
}

// RenderField renders the time field box around the input's view.
func RenderField(input string, fieldStyle lipgloss.Style) string {
	return fieldStyle.Render(input)
}

// RenderHero renders the timer row (field and toggle button side by side)
// inside a border that changes colour while the countdown runs.
func RenderHero(field, button string, running bool, width int, borderIdle, borderRunning lipgloss.Style) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, field, " ", button)

	// Determine border style based on state
	borderStyle := borderIdle
	if running {
		borderStyle = borderRunning
	}

	return borderStyle.Width(width).Render(row)
}

// HeroInset returns the column and row offsets of the hero's content
// relative to its top-left corner.
func HeroInset(borderStyle lipgloss.Style) (x, y int) {
	x = borderStyle.GetBorderLeftSize() + borderStyle.GetPaddingLeft()
	y = borderStyle.GetBorderTopSize() + borderStyle.GetPaddingTop()
	return x, y
}
