package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"lazytimer/timer"
)

// tickEvent is posted to the screen's event queue by an armed ticker.
type tickEvent struct {
	gen int
}

// interruptScheduler delivers ticks as tcell interrupt events so that the
// callback runs on the event loop goroutine.
type interruptScheduler struct {
	post   func(tcell.Event) error
	logger *slog.Logger
	gen    int
	fn     func()
	stop   chan struct{}
}

func (s *interruptScheduler) Every(interval time.Duration, fn func()) func() {
	s.gen++
	gen := s.gen
	stop := make(chan struct{})
	s.fn = fn
	s.stop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if err := s.post(tcell.NewEventInterrupt(tickEvent{gen: gen})); err != nil {
					s.logger.Debug("tick dropped", "gen", gen, "err", err)
				}
			}
		}
	}()

	return func() {
		if s.gen != gen {
			return
		}
		s.gen++
		s.fn = nil
		close(stop)
	}
}

func (s *interruptScheduler) fire(ev tickEvent) {
	if ev.gen == s.gen && s.fn != nil {
		s.fn()
	}
}

// TerminalUI is the tcell surface for a timer.Machine.
type TerminalUI struct {
	screen      tcell.Screen
	machine     *timer.Machine
	scheduler   *interruptScheduler
	field       []rune
	affordance  timer.Affordance
	message     string
	lastButtons tcell.ButtonMask
}

// NewTerminalUI creates a TerminalUI drawing on s.
func NewTerminalUI(s tcell.Screen, initial string, logger *slog.Logger, opts ...timer.Option) *TerminalUI {
	ui := &TerminalUI{
		screen:    s,
		scheduler: &interruptScheduler{post: s.PostEvent, logger: logger},
		field:     []rune(initial),
	}
	wiring := []timer.Option{
		timer.WithScheduler(ui.scheduler),
		timer.WithLogger(logger),
		timer.WithNotifier(timer.NotifierFunc(func(title, body string) {
			ui.message = title + ": " + body
		})),
		timer.OnDisplayChanged(func(text string) {
			ui.field = []rune(text)
		}),
		timer.OnAffordanceChanged(func(a timer.Affordance) {
			ui.affordance = a
		}),
	}
	ui.machine = timer.New(initial, append(wiring, opts...)...)

	s.SetStyle(tcell.StyleDefault)
	s.EnableMouse()
	s.Clear()
	return ui
}

const (
	classicFieldX  = 2
	classicFieldY  = 2
	classicFieldW  = fieldWidth + 2
	classicButtonW = 8
)

func (ui *TerminalUI) fieldRect() rect {
	return rect{x: classicFieldX, y: classicFieldY, w: classicFieldW, h: 3}
}

func (ui *TerminalUI) buttonRect() rect {
	return rect{x: classicFieldX + classicFieldW + 1, y: classicFieldY, w: classicButtonW, h: 3}
}

// Draw renders the whole screen.
func (ui *TerminalUI) Draw() {
	ui.screen.Clear()

	running := ui.machine.State() == timer.Running
	outer := rect{x: 0, y: 0, w: classicFieldW + classicButtonW + 5, h: 7}
	ui.drawBox(outer, "lazytimer", running)

	field := ui.fieldRect()
	ui.drawBox(field, "", false)
	ui.drawString(field.y+1, field.x+1, string(ui.field), tcell.StyleDefault)
	if !running {
		ui.screen.ShowCursor(field.x+1+len(ui.field), field.y+1)
	} else {
		ui.screen.HideCursor()
	}

	button := ui.buttonRect()
	ui.drawBox(button, "", false)
	glyph := ui.affordance.Glyph()
	ui.drawString(button.y+1, button.x+(button.w-len([]rune(glyph)))/2, glyph, tcell.StyleDefault.Bold(true))

	line := outer.y + outer.h
	if remaining, ok := ui.machine.Remaining(); ok {
		ui.drawString(line, 0, fmt.Sprintf("Left: %s of %s", timer.Format(int(remaining+0.5)), timer.Format(ui.machine.Planned())), tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
	if ui.message != "" {
		ui.drawString(line+1, 0, ui.message, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}
	ui.drawString(line+2, 0, "[enter] Start/Pause  [click] Field/Button  [q] Quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	ui.screen.Show()
}

// drawBox draws a box with an optional title.
func (ui *TerminalUI) drawBox(r rect, title string, highlight bool) {
	if r.h < 2 || r.w < 2 {
		return
	}

	style := tcell.StyleDefault
	if highlight {
		style = style.Foreground(tcell.ColorGreen).Bold(true)
	}

	right := r.x + r.w - 1
	bottom := r.y + r.h - 1
	for col := r.x + 1; col < right; col++ {
		ui.screen.SetContent(col, r.y, '─', nil, style)
		ui.screen.SetContent(col, bottom, '─', nil, style)
	}
	for row := r.y + 1; row < bottom; row++ {
		ui.screen.SetContent(r.x, row, '│', nil, style)
		ui.screen.SetContent(right, row, '│', nil, style)
	}
	ui.screen.SetContent(r.x, r.y, '┌', nil, style)
	ui.screen.SetContent(right, r.y, '┐', nil, style)
	ui.screen.SetContent(r.x, bottom, '└', nil, style)
	ui.screen.SetContent(right, bottom, '┘', nil, style)

	if title != "" && len(title)+2 < r.w-2 {
		ui.drawString(r.y, r.x+2, " "+title+" ", style)
	}
}

// drawString draws a string at the specified position.
func (ui *TerminalUI) drawString(y, x int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		ui.screen.SetContent(x+i, y, r, nil, style)
	}
}

// handleEvent applies one event and reports whether the loop should exit.
func (ui *TerminalUI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if tick, ok := ev.Data().(tickEvent); ok {
			ui.scheduler.fire(tick)
		}
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			ui.machine.Pause()
			return true
		case ev.Key() == tcell.KeyEnter:
			ui.message = ""
			ui.machine.Toggle()
		case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
			if len(ui.field) > 0 {
				ui.edit(string(ui.field[:len(ui.field)-1]))
			}
		case ev.Key() == tcell.KeyRune:
			ui.edit(string(ui.field) + string(ev.Rune()))
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && ui.lastButtons&tcell.Button1 == 0
		ui.lastButtons = buttons
		if !pressed {
			return false
		}
		x, y := ev.Position()
		switch {
		case ui.fieldRect().contains(x, y):
			ui.machine.FieldPressed()
		case ui.buttonRect().contains(x, y):
			ui.message = ""
			ui.machine.Toggle()
		}
	case *tcell.EventResize:
		ui.screen.Sync()
	}
	return false
}

func (ui *TerminalUI) edit(candidate string) {
	ui.message = ""
	if ui.machine.FieldEdited(candidate) {
		ui.field = []rune(ui.machine.Text())
	}
}

// Loop runs the main event loop.
func (ui *TerminalUI) Loop() {
	for {
		ui.Draw()
		if ui.handleEvent(ui.screen.PollEvent()) {
			return
		}
	}
}

// LaunchClassic runs the timer on a plain tcell screen.
func LaunchClassic(initial string, logger *slog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer s.Fini()

	ui := NewTerminalUI(s, initial, logger)
	ui.Loop()
	return nil
}
