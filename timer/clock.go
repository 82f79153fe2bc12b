package timer

import "time"

// TickInterval is the wall-clock period between countdown ticks.
const TickInterval = 1000 * time.Millisecond

// Clock provides the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Scheduler registers a callback fired every interval until cancel is called.
// Implementations must invoke fn on the same goroutine that drives the Machine.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// Notifier delivers a user-facing notification.
type Notifier interface {
	Notify(title, body string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(title, body string)

func (f NotifierFunc) Notify(title, body string) {
	f(title, body)
}

// Affordance is the visual state of the toggle control.
type Affordance int

const (
	AffordancePlay Affordance = iota
	AffordancePause
)

const (
	SymbolPlay  = "►"
	SymbolPause = "▌▌"
)

// Glyph returns the symbol shown on the toggle control.
func (a Affordance) Glyph() string {
	if a == AffordancePause {
		return SymbolPause
	}
	return SymbolPlay
}

func (a Affordance) String() string {
	if a == AffordancePause {
		return "pause"
	}
	return "play"
}
