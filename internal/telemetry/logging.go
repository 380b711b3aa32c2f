// Package telemetry builds the structured logger every other package in
// this module logs through.
package telemetry

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/basket/telemock/internal/shared"
	"github.com/mattn/go-isatty"
)

// NewLogger builds a slog.Logger for the mock server and dispatch harness.
//
// A MockBot never persists logs to disk — it lives for one test binary's
// duration, so everything goes to stdout. When stdout is a terminal, a
// human-readable text handler is used; when it is piped (the common case
// under `go test`), a JSON handler is used so CI log collectors can parse
// it.
func NewLogger(level string) *slog.Logger {
	return NewLoggerWriter(os.Stdout, level, !isatty.IsTerminal(os.Stdout.Fd()))
}

// NewLoggerWriter builds a logger against an explicit writer, bypassing TTY
// detection. Exported so tests can assert on the emitted schema directly.
func NewLoggerWriter(w io.Writer, level string, useJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(level),
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	if useJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("component", "telemock", "trace_id", "-")
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		a.Key = "timestamp"
	}
	if shared.RedactKey(a.Key) {
		return slog.String(a.Key, "[REDACTED]")
	}
	if a.Value.Kind() == slog.KindString {
		if redacted := shared.Redact(a.Value.String()); redacted != a.Value.String() {
			return slog.String(a.Key, redacted)
		}
	}
	return a
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
