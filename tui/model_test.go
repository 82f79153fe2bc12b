package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lazytimer/timer"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func newTestModel(initial string) (*Model, *stepClock) {
	clock := &stepClock{now: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewModel(initial, logger, timer.WithClock(clock)), clock
}

func press(m *Model, key tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(key)
	return cmd
}

func TestEnterStartsAndTicksComplete(t *testing.T) {
	m, clock := newTestModel("0:02")

	if cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("Expected a tick command after starting")
	}
	if m.machine.State() != timer.Running {
		t.Fatalf("Expected running, got %v", m.machine.State())
	}
	if m.field.Value() != "2" {
		t.Errorf("Expected field %q, got %q", "2", m.field.Value())
	}
	if m.affordance != timer.AffordancePause {
		t.Errorf("Expected pause affordance")
	}

	gen := m.scheduler.gen

	// Ticks from an older registration are dropped.
	if _, cmd := m.Update(tickMsg{gen: gen - 1}); cmd != nil {
		t.Error("Expected stale tick to be ignored")
	}

	clock.now = clock.now.Add(time.Second)
	_, cmd := m.Update(tickMsg{gen: gen})
	if cmd == nil {
		t.Error("Expected next tick to be scheduled")
	}
	if m.field.Value() != "1" {
		t.Errorf("Expected field %q, got %q", "1", m.field.Value())
	}

	clock.now = clock.now.Add(time.Second)
	_, cmd = m.Update(tickMsg{gen: gen})
	if cmd != nil {
		t.Error("Expected no tick after completion")
	}
	if m.machine.State() != timer.Idle {
		t.Errorf("Expected idle after completion")
	}
	if m.message != "Pomodoro: Timer done!" {
		t.Errorf("Expected completion message, got %q", m.message)
	}
	if m.affordance != timer.AffordancePlay {
		t.Errorf("Expected play affordance after completion")
	}
	if !strings.Contains(m.View(), "Timer done!") {
		t.Errorf("Expected view to show the notification")
	}
}

func TestTypingRejectsLetters(t *testing.T) {
	m, _ := newTestModel("5:00")

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if m.field.Value() != "5:00" {
		t.Errorf("Expected field to revert to %q, got %q", "5:00", m.field.Value())
	}

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	if m.field.Value() != "5:000" || m.machine.Text() != "5:000" {
		t.Errorf("Expected digit to be accepted, got field %q text %q", m.field.Value(), m.machine.Text())
	}
}

func TestTypingPausesCountdown(t *testing.T) {
	m, _ := newTestModel("10")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.machine.State() != timer.Idle {
		t.Errorf("Expected edit to pause the countdown")
	}
	if m.affordance != timer.AffordancePlay {
		t.Errorf("Expected play affordance after edit")
	}
}

func TestMouseButtonToggles(t *testing.T) {
	m, _ := newTestModel("1:00")
	_, geo := m.layout()

	click := tea.MouseMsg{X: geo.button.x, Y: geo.button.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	_, cmd := m.Update(click)
	if m.machine.State() != timer.Running {
		t.Fatal("Expected click on button to start countdown")
	}
	if cmd == nil {
		t.Error("Expected a tick command")
	}

	_, geo = m.layout()
	field := tea.MouseMsg{X: geo.field.x + 1, Y: geo.field.y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(field)
	if m.machine.State() != timer.Idle {
		t.Error("Expected click on field to pause countdown")
	}

	outside := tea.MouseMsg{X: 200, Y: 200, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(outside)
	if m.machine.State() != timer.Idle {
		t.Error("Expected click outside the controls to do nothing")
	}
}

func TestLayoutPlacesButtonRightOfField(t *testing.T) {
	m, _ := newTestModel("")
	_, geo := m.layout()

	if geo.field.x != 3 || geo.field.y != 1 {
		t.Errorf("Expected field at (3,1), got (%d,%d)", geo.field.x, geo.field.y)
	}
	if geo.button.x <= geo.field.x+geo.field.w-1 {
		t.Errorf("Expected button to the right of the field, got %+v and %+v", geo.field, geo.button)
	}
	if !strings.Contains(m.View(), timer.SymbolPlay) {
		t.Errorf("Expected play glyph in view")
	}
}

func TestEscQuits(t *testing.T) {
	m, _ := newTestModel("10")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Expected tea.QuitMsg")
	}
	if m.machine.State() != timer.Idle {
		t.Errorf("Expected countdown to stop on quit")
	}
}

func TestSchedulerCancelDropsInFlightTick(t *testing.T) {
	s := &teaScheduler{}
	fired := 0
	cancel := s.Every(time.Second, func() { fired++ })
	if s.cmd() == nil {
		t.Fatal("Expected arming command")
	}
	gen := s.gen
	cancel()
	cancel()

	if cmd := s.fire(tickMsg{gen: gen}); cmd != nil || fired != 0 {
		t.Errorf("Expected cancelled registration not to fire")
	}
	if s.cmd() != nil {
		t.Errorf("Expected nothing pending after cancel")
	}
}
