// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the galley client.
//
// The Logger type embeds zerolog.Logger so the full zerolog API (Debug,
// Info, Warn, Error, ...) is available directly. Code that runs inside the
// terminal UI must never write to stdout, so New directs output to a log
// file next to the executable and falls back to stderr only if the file
// cannot be opened.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding the upstream
// type exposes its API while leaving room for application helpers.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given component label (e.g. "client",
// "worker"). Every entry carries a "component" field, a timestamp, and the
// fully-qualified caller function name under "func".
//
// Output goes to galley.log next to the executable; if the file cannot be
// opened the logger writes to stderr so the TUI stays intact.
func New(component string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	out := os.Stderr
	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), "galley.log")
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			out = f
		}
	}

	l := zerolog.New(out).With().
		Str("component", component).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext extracts the zerolog.Logger stored in ctx via zerolog's
// WithContext helper. If ctx carries no logger, zerolog's global logger is
// returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
