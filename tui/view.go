package tui

import (
	"github.com/charmbracelet/lipgloss"

	"lazytimer/timer"
	"lazytimer/tui/components"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// geometry records where the clickable controls were drawn.
type geometry struct {
	field  rect
	button rect
}

// layout renders the hero row and reports the control positions within it.
func (m *Model) layout() (string, geometry) {
	running := m.machine.State() == timer.Running

	field := components.RenderField(m.field.View(), FieldStyle)
	button := components.RenderButton(m.affordance.Glyph(), ButtonStyle)

	border := BorderIdle
	if running {
		border = BorderRunning
	}
	x, y := components.HeroInset(border)

	fieldW := lipgloss.Width(field)
	geo := geometry{
		field:  rect{x: x, y: y, w: fieldW, h: lipgloss.Height(field)},
		button: rect{x: x + fieldW + 1, y: y, w: lipgloss.Width(button), h: lipgloss.Height(button)},
	}

	width := heroWidth(geo) + border.GetHorizontalPadding()
	hero := components.RenderHero(field, button, running, width, BorderIdle, BorderRunning)
	return hero, geo
}

func heroWidth(geo geometry) int {
	return geo.button.x + geo.button.w - geo.field.x
}

func (m *Model) View() string {
	hero, _ := m.layout()
	width := lipgloss.Width(hero)

	var progress string
	if remaining, ok := m.machine.Remaining(); ok {
		progress = components.RenderProgressBar(remaining, m.machine.Planned(), "Left", width, ProgressStyle, timer.Format)
	}

	var messageLine string
	if m.message != "" {
		messageLine = SuccessStyle.Render(m.message)
	} else if !timer.IsReady(m.machine.Text()) && m.machine.Text() != "" {
		messageLine = ErrorStyle.Render("incomplete time")
	}

	footer := FooterStyle.Render("[enter] Start/Pause  [click] Field/Button  [esc] Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		hero,
		progress,
		messageLine,
		footer,
	)
}
