package timer

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"time"
)

// Title and body of the notification sent when a countdown reaches zero.
const (
	NotificationTitle = "Pomodoro"
	NotificationBody  = "Timer done!"
)

// State is the coarse state of a Machine.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// running is the payload carried only while a countdown is active.
type running struct {
	remaining float64 // seconds, fractional between ticks
	lastTick  time.Time
	planned   int
	cancel    func()
}

// Machine is a single countdown timer. It holds no UI handles: surfaces feed
// it events and receive output through the callbacks set at construction.
// A Machine is not safe for concurrent use; every call must come from the
// goroutine that owns the surface.
type Machine struct {
	clock     Clock
	scheduler Scheduler
	notifier  Notifier
	logger    *slog.Logger

	onDisplay    func(string)
	onAffordance func(Affordance)
	onCompleted  func()

	text string
	run  *running
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock sets the source of the current time. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(m *Machine) {
		m.clock = c
	}
}

// WithScheduler sets the tick source armed while a countdown runs.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) {
		m.scheduler = s
	}
}

// WithNotifier sets the sink for the completion notification.
func WithNotifier(n Notifier) Option {
	return func(m *Machine) {
		m.notifier = n
	}
}

// WithLogger sets the logger. Records are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// OnDisplayChanged sets the callback receiving every text the field must show.
func OnDisplayChanged(fn func(string)) Option {
	return func(m *Machine) {
		m.onDisplay = fn
	}
}

// OnAffordanceChanged sets the callback receiving toggle control changes.
func OnAffordanceChanged(fn func(Affordance)) Option {
	return func(m *Machine) {
		m.onAffordance = fn
	}
}

// OnCompleted sets the callback fired once when a countdown reaches zero.
func OnCompleted(fn func()) Option {
	return func(m *Machine) {
		m.onCompleted = fn
	}
}

// New returns an idle Machine whose field holds initial.
func New(initial string, opts ...Option) *Machine {
	m := &Machine{
		clock:  SystemClock,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		text:   strings.TrimSpace(initial),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scheduler == nil {
		m.scheduler = noopScheduler{}
	}
	if m.notifier == nil {
		m.notifier = NotifierFunc(func(string, string) {})
	}
	return m
}

// State reports whether the countdown is running.
func (m *Machine) State() State {
	if m.run != nil {
		return Running
	}
	return Idle
}

// Text returns the field's current accepted text.
func (m *Machine) Text() string {
	return m.text
}

// Affordance returns the action the toggle control performs next.
func (m *Machine) Affordance() Affordance {
	if m.run != nil {
		return AffordancePause
	}
	return AffordancePlay
}

// Remaining returns the seconds left and true while running.
func (m *Machine) Remaining() (float64, bool) {
	if m.run == nil {
		return 0, false
	}
	return m.run.remaining, true
}

// Planned returns the countdown length captured at Play, or 0 when idle.
func (m *Machine) Planned() int {
	if m.run == nil {
		return 0
	}
	return m.run.planned
}

// FieldEdited handles a candidate field value typed by the user. Any real
// change pauses a running countdown. Text outside the construction grammar is
// rejected and the field reverts to the last accepted value.
func (m *Machine) FieldEdited(raw string) bool {
	candidate := strings.TrimSpace(raw)
	if candidate == m.text {
		if candidate != raw {
			m.display(m.text)
		}
		return true
	}

	m.Pause()

	accepted := IsConstructionValid(candidate)
	if accepted {
		m.text = candidate
	} else {
		m.logger.Debug("edit rejected", "candidate", candidate, "kept", m.text)
	}

	if m.text != raw {
		m.display(m.text)
	}
	return accepted
}

// FieldPressed handles a pointer press on the field.
func (m *Machine) FieldPressed() {
	m.Pause()
}

// Toggle pauses a running countdown or starts an idle one.
func (m *Machine) Toggle() {
	if m.run != nil {
		m.Pause()
		return
	}
	m.Play()
}

// Play starts a countdown from the field text. It reports whether the
// countdown started; unready or zero-length input leaves the Machine idle.
func (m *Machine) Play() bool {
	if m.run != nil {
		m.logger.Debug("play ignored: already running")
		return false
	}
	if !IsReady(m.text) {
		m.logger.Debug("play ignored: time string is not ready", "text", m.text)
		return false
	}

	seconds, err := ToSeconds(m.text)
	if err != nil {
		m.logger.Debug("play ignored", "text", m.text, "err", err)
		return false
	}
	if seconds <= 0 {
		m.logger.Debug("play ignored: no time remaining", "text", m.text)
		return false
	}

	m.run = &running{
		remaining: float64(seconds),
		lastTick:  m.clock.Now(),
		planned:   seconds,
	}
	m.display(Format(seconds))
	m.affordance(AffordancePause)
	m.run.cancel = m.scheduler.Every(TickInterval, m.Tick)

	m.logger.Info("countdown started", "seconds", seconds, "display", m.text)
	return true
}

// Pause stops a running countdown and disarms its tick source.
func (m *Machine) Pause() {
	if m.run == nil {
		return
	}
	cancel := m.run.cancel
	m.run = nil
	if cancel != nil {
		cancel()
	}
	m.affordance(AffordancePlay)
	m.logger.Info("countdown stopped", "display", m.text)
}

// Tick advances the countdown by the wall-clock time since the last tick.
func (m *Machine) Tick() {
	if m.run == nil {
		return
	}

	now := m.clock.Now()
	dt := now.Sub(m.run.lastTick).Seconds()
	m.run.lastTick = now
	m.run.remaining = math.Max(0, m.run.remaining-dt)

	m.display(Format(int(math.Round(m.run.remaining))))
	m.logger.Debug("tick", "dt", dt, "remaining", m.run.remaining)

	if m.run.remaining <= 0 {
		m.complete()
	}
}

func (m *Machine) complete() {
	m.logger.Info("countdown completed")
	m.notifier.Notify(NotificationTitle, NotificationBody)
	if m.onCompleted != nil {
		m.onCompleted()
	}
	m.Pause()
}

func (m *Machine) display(text string) {
	m.text = text
	if m.onDisplay != nil {
		m.onDisplay(text)
	}
}

func (m *Machine) affordance(a Affordance) {
	if m.onAffordance != nil {
		m.onAffordance(a)
	}
}

type noopScheduler struct{}

func (noopScheduler) Every(time.Duration, func()) func() {
	return func() {}
}
