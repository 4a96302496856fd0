package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Config holds logger configuration
type Config struct {
	Level  string    `mapstructure:"level"`
	Writer io.Writer `mapstructure:"-"`
}

// DefaultConfig keeps the CLI quiet unless something goes wrong.
func DefaultConfig() Config {
	return Config{Level: "warn"}
}

// ParseLevel maps a config level name to the pterm level.
func ParseLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "", "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return pterm.LogLevelDisabled, fmt.Errorf("unknown log level %q", level)
	}
}

// New returns a slog.Logger that renders through pterm's structured logger.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	pl := pterm.DefaultLogger.WithLevel(level).WithWriter(w)
	return slog.New(pterm.NewSlogHandler(pl)), nil
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Component returns a child logger tagged with the component name.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(FieldComponent, name)
}
