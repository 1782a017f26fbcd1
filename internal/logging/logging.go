// Package logging provides logger bootstrap and identifier generation for
// the approval gate.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// EnvDebug forces debug-level logging when set to a truthy value,
// regardless of the configured level.
const EnvDebug = "CMDGATE_DEBUG"

// Options configures logger setup.
type Options struct {
	// Level is the minimum level to emit.
	Level slog.Level

	// JSONOutput selects the machine-readable JSON handler instead of the
	// text handler.
	JSONOutput bool

	// Writer receives log output; defaults to stderr. Log records must
	// never share stdout with the decision payload.
	Writer io.Writer
}

// Setup initializes the process-wide default logger. It must be called once
// during startup, before any logging occurs.
func Setup(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := opts.Level
	if debugEnabled() {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if opts.JSONOutput {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// debugEnabled reports whether the debug environment toggle is on.
func debugEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvDebug)))
	return v == "1" || v == "true" || v == "yes"
}

// GenerateRunID generates a new UUID v4 identifying one gate invocation.
func GenerateRunID() string {
	return uuid.New().String()
}

// GenerateDecisionID generates a lexicographically sortable ULID for one
// decision record, so audit streams order by creation time.
func GenerateDecisionID() string {
	return ulid.Make().String()
}
