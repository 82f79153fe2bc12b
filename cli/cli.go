package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"lazytimer/timer"
)

// CommandSeconds prints the total number of seconds in a time string.
func CommandSeconds(w io.Writer, text string) error {
	seconds, err := timer.ToSeconds(text)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", text, err)
	}
	fmt.Fprintln(w, seconds)
	return nil
}

// CommandNormalize prints the normalized hours, minutes and seconds of a
// time string together with its display form.
func CommandNormalize(w io.Writer, text string) error {
	spec, err := timer.Parse(text)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", text, err)
	}
	normalized := timer.Normalize(spec)
	fmt.Fprintf(w, "%dh %dm %ds -> %s\n", normalized.Hours, normalized.Minutes, normalized.Seconds, normalized)
	return nil
}

// CommandFormat prints the display form of a number of seconds.
func CommandFormat(w io.Writer, raw string) error {
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid seconds %q: %w", raw, err)
	}
	if seconds < 0 {
		return fmt.Errorf("seconds must not be negative: %d", seconds)
	}
	fmt.Fprintln(w, timer.Format(seconds))
	return nil
}

// CommandRun counts down without a UI until zero or an interrupt.
func CommandRun(w io.Writer, text string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runCountdown(ctx, w, text, timer.SystemClock, newLoopScheduler(), logger)
}

// RunCLI parses command-line arguments and executes the appropriate command.
func RunCLI(args []string, logger *slog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("no command specified")
	}

	command := args[0]
	remaining := args[1:]
	out := os.Stdout

	switch command {
	case "run":
		text := DefaultTime()
		if len(remaining) > 0 {
			text = remaining[0]
		}
		return CommandRun(out, text, logger)

	case "seconds":
		if len(remaining) == 0 {
			return fmt.Errorf("seconds command requires a time argument")
		}
		return CommandSeconds(out, remaining[0])

	case "normalize":
		if len(remaining) == 0 {
			return fmt.Errorf("normalize command requires a time argument")
		}
		return CommandNormalize(out, remaining[0])

	case "format":
		if len(remaining) == 0 {
			return fmt.Errorf("format command requires a seconds argument")
		}
		return CommandFormat(out, remaining[0])

	case "tui", "classic":
		return fmt.Errorf("%s should be called from main", command)

	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
