// Package logger provides the application's logging layer on top of
// log/slog, with Printf-style helpers and file output.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds the logger settings loaded from the config file.
type Config struct {
	// LogLevel is the minimum level to log: debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFilePath is the output log file. Empty disables logging; "-"
	// logs to stderr (only useful when the TUI is not running).
	LogFilePath string `toml:"log_file"`
}

// Level parses the configured level string, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
