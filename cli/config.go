package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// LogEnvVar names a file that receives debug logs. Logs are discarded
	// when it is unset, since the terminal belongs to the UI.
	LogEnvVar = "LAZYTIMER_LOG"

	// DefaultEnvVar overrides the field's initial text.
	DefaultEnvVar = "LAZYTIMER_DEFAULT"

	defaultTime = "25:00"
)

// DefaultTime returns the initial field text from the environment or 25:00.
func DefaultTime() string {
	if value := strings.TrimSpace(os.Getenv(DefaultEnvVar)); value != "" {
		return value
	}
	return defaultTime
}

// NewLogger builds the application logger. The returned close function
// releases the log file, if any.
func NewLogger() (*slog.Logger, func() error, error) {
	path := os.Getenv(LogEnvVar)
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, file.Close, nil
}
