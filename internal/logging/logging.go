// Package logging provides the slim structured-logging wrapper used for
// startup and diagnostic messages (never for the REPL transcript itself,
// which is plain stdout per spec.md §6). Shaped after ardnew-aenv's
// log.Logger, trimmed down: no custom levels, no call-stack skipping, no
// mutex-guarded clone/With chain — this interpreter logs from a single
// goroutine at startup and shutdown only.
package logging

import (
	"log/slog"
	"os"
)

// Logger is a thin alias so callers don't need to import log/slog directly.
type Logger = *slog.Logger

// New builds a Logger that writes leveled, human-readable text to w.
func New(w *os.File, debug bool) Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Default is an info-level Logger writing to stderr.
var Default = New(os.Stderr, false)
