package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lazytimer/timer"
)

const fieldWidth = 12

type hitTarget int

const (
	hitNone hitTarget = iota
	hitField
	hitButton
)

// Model is the bubbletea surface for a timer.Machine: a text field and a
// toggle button. Key and mouse events become machine operations; machine
// callbacks rewrite the field, the button glyph and the message line.
type Model struct {
	machine    *timer.Machine
	scheduler  *teaScheduler
	field      textinput.Model
	affordance timer.Affordance
	message    string
	width      int
	height     int
}

// NewModel creates a Model whose field starts with initial. Extra options
// are applied to the underlying machine after the surface wiring.
func NewModel(initial string, logger *slog.Logger, opts ...timer.Option) *Model {
	field := textinput.New()
	field.Prompt = ""
	field.Placeholder = "0:00"
	field.CharLimit = fieldWidth
	field.Width = fieldWidth
	field.SetValue(initial)
	field.Focus()

	m := &Model{
		scheduler: &teaScheduler{},
		field:     field,
	}
	wiring := []timer.Option{
		timer.WithScheduler(m.scheduler),
		timer.WithNotifier(timer.NotifierFunc(m.notify)),
		timer.WithLogger(logger),
		timer.OnDisplayChanged(func(text string) {
			m.field.SetValue(text)
			m.field.CursorEnd()
		}),
		timer.OnAffordanceChanged(func(a timer.Affordance) {
			m.affordance = a
		}),
	}
	m.machine = timer.New(initial, append(wiring, opts...)...)
	return m
}

func (m *Model) notify(title, body string) {
	m.message = title + ": " + body
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, m.scheduler.fire(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch m.hitTest(msg.X, msg.Y) {
		case hitField:
			m.machine.FieldPressed()
		case hitButton:
			m.toggle()
		}
		return m, m.scheduler.cmd()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.machine.Pause()
			return m, tea.Quit
		case tea.KeyEnter:
			m.toggle()
			return m, m.scheduler.cmd()
		}

		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		if value := m.field.Value(); value != m.machine.Text() {
			m.message = ""
			m.machine.FieldEdited(value)
		}
		return m, tea.Batch(cmd, m.scheduler.cmd())
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m *Model) toggle() {
	m.message = ""
	m.machine.Toggle()
}

// hitTest maps a cell to the control drawn there.
func (m *Model) hitTest(x, y int) hitTarget {
	_, geo := m.layout()
	switch {
	case geo.field.contains(x, y):
		return hitField
	case geo.button.contains(x, y):
		return hitButton
	default:
		return hitNone
	}
}
