/*
File   : ash/internal/obslog/obslog.go
Package: obslog

Package obslog is a thin wrapper around log/slog giving the CLI
driver structured, leveled tracing of the scan/parse/interpret phase
transitions when run with --debug. No third-party structured logger
appears anywhere in the example pack this repository's conventions
are drawn from: the teacher repo (go-mix) logs nothing beyond ad hoc
fmt/color prints, and the one pack repo with a disciplined logging
style reaches for the stdlib log/slog rather than zerolog, zap, or
logrus — see DESIGN.md for the full justification. Following that
precedent, this package stays on the standard library deliberately.
*/
package obslog

import (
	"io"
	"log/slog"
)

// Logger traces interpreter phase transitions. A nil *Logger is safe
// to call methods on: every method is a no-op when disabled, so
// callers need not guard each call site with an `if debug` check.
type Logger struct {
	log *slog.Logger
}

// New creates a Logger writing leveled text records to w. Pass
// slog.LevelDebug to see phase traces; higher levels silence them.
func New(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{log: slog.New(handler)}
}

// Disabled returns a Logger that discards everything, used when
// --debug was not requested.
func Disabled() *Logger {
	return New(io.Discard, slog.LevelError+1)
}

// Phase logs a pipeline phase transition (e.g. "scan", "parse",
// "interpret") along with contextual key/value pairs.
func (l *Logger) Phase(name string, args ...any) {
	if l == nil || l.log == nil {
		return
	}
	l.log.Debug("phase", append([]any{"name", name}, args...)...)
}
