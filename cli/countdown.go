package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"lazytimer/timer"
)

// loopScheduler hands tick callbacks to the goroutine running the countdown
// loop, which is the only goroutine that touches the machine.
type loopScheduler struct {
	fires chan func()

	// interval, when set, replaces the requested period.
	interval time.Duration
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{fires: make(chan func())}
}

func (s *loopScheduler) Every(interval time.Duration, fn func()) func() {
	if s.interval > 0 {
		interval = s.interval
	}

	stop := make(chan struct{})
	stopped := false
	guarded := func() {
		if !stopped {
			fn()
		}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case s.fires <- guarded:
				case <-stop:
					return
				}
			}
		}
	}()

	return func() {
		if stopped {
			return
		}
		stopped = true
		close(stop)
	}
}

// runCountdown counts text down to zero, printing every display change to w.
// Cancelling ctx pauses the countdown and returns.
func runCountdown(ctx context.Context, w io.Writer, text string, clock timer.Clock, sched *loopScheduler, logger *slog.Logger) error {
	if _, err := timer.ToSeconds(text); err != nil {
		return fmt.Errorf("invalid time %q: %w", text, err)
	}
	if !timer.IsReady(text) {
		return fmt.Errorf("time %q is incomplete", text)
	}

	done := make(chan struct{})
	m := timer.New(text,
		timer.WithClock(clock),
		timer.WithScheduler(sched),
		timer.WithLogger(logger),
		timer.WithNotifier(timer.NotifierFunc(func(title, body string) {
			fmt.Fprintf(w, "%s: %s\n", title, body)
		})),
		timer.OnDisplayChanged(func(display string) {
			fmt.Fprintln(w, display)
		}),
		timer.OnCompleted(func() {
			close(done)
		}),
	)

	if !m.Play() {
		return fmt.Errorf("nothing to count down from %q", text)
	}

	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			m.Pause()
			fmt.Fprintf(w, "Paused at %s.\n", m.Text())
			return nil
		case fire := <-sched.fires:
			fire()
		}
	}
}
