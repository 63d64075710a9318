package log

import (
	"io"
	"log/slog"
	"os"
)

// EnvDebug enables debug logging when set to any non-empty value.
const EnvDebug = "SEARCH_DEBUG"

// Logger is the global logger instance
var Logger *slog.Logger

// InitLogger initializes the global logger writing to stderr.
// It sets the log level to Debug if SEARCH_DEBUG is set
func InitLogger() {
	SetOutput(os.Stderr)
}

// SetOutput replaces the logger destination, keeping the level derived from SEARCH_DEBUG.
func SetOutput(w io.Writer) {
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelInfo,
	}

	if os.Getenv(EnvDebug) != "" {
		opts.Level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// init initializes the logger when the package is imported
func init() {
	InitLogger()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
