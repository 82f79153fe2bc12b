package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the generation of the registration that produced it.
type tickMsg struct {
	gen int
}

// teaScheduler runs timer ticks through the bubbletea event loop. Each
// registration gets a new generation; ticks from older generations are
// dropped, so a cancelled registration can never fire again.
type teaScheduler struct {
	gen      int
	fn       func()
	interval time.Duration
	pending  bool
}

func (s *teaScheduler) Every(interval time.Duration, fn func()) func() {
	s.gen++
	gen := s.gen
	s.fn = fn
	s.interval = interval
	s.pending = true
	return func() {
		if s.gen != gen {
			return
		}
		s.gen++
		s.fn = nil
		s.pending = false
	}
}

// cmd returns the command arming a registration made since the last call.
func (s *teaScheduler) cmd() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return s.next()
}

func (s *teaScheduler) next() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// fire runs the callback for msg and schedules the following tick.
func (s *teaScheduler) fire(msg tickMsg) tea.Cmd {
	if msg.gen != s.gen || s.fn == nil {
		return nil
	}
	s.fn()
	if msg.gen != s.gen || s.fn == nil {
		return nil
	}
	return s.next()
}
