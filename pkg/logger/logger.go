// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the CALC_DEBUG environment variable:
//   export CALC_DEBUG=1
//
// By default, debug logging is disabled to reduce noise in normal operation.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger is the global logger instance
	Logger *slog.Logger
)

func init() {
	debugEnabled := false
	debugEnv := os.Getenv("CALC_DEBUG")

	if debugEnv != "" && strings.ToLower(debugEnv) != "false" && debugEnv != "0" {
		debugEnabled = true
	}

	logLevel := slog.LevelInfo
	if debugEnabled {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	// Logs go to stderr; stdout is reserved for the MCP stdio transport.
	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)

	slog.SetDefault(Logger)
}

// Debug logs a debug message if debug logging is enabled
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
