package gatetypes

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel is the gate's configured log verbosity, as written in the rules
// file or passed via the -log-level flag. It caps what the logger emits;
// the CMDGATE_DEBUG environment variable can still force debug output at
// logger setup regardless of this value.
type LogLevel string

// Recognized levels, least to most severe.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ErrInvalidLogLevel reports a level string outside the recognized set.
var ErrInvalidLogLevel = errors.New("invalid log level")

// UnmarshalText validates the level while the rules file is decoded, so a
// typo fails the load instead of silently logging at the wrong level. Case
// is ignored; an absent value means info.
func (l *LogLevel) UnmarshalText(text []byte) error {
	s := LogLevel(strings.ToLower(string(text)))
	switch s {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		*l = s
		return nil
	case "":
		*l = LogLevelInfo
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: debug, info, warn, error)", ErrInvalidLogLevel, string(text))
	}
}

// ToSlogLevel maps the level onto slog's scale. The zero value maps to
// info, matching the UnmarshalText default.
func (l LogLevel) ToSlogLevel() (slog.Level, error) {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogLevelDebug:
		return slog.LevelDebug, nil
	case LogLevelInfo, "":
		return slog.LevelInfo, nil
	case LogLevelWarn:
		return slog.LevelWarn, nil
	case LogLevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l)
	}
}

// String returns the level as configured.
func (l LogLevel) String() string {
	return string(l)
}
