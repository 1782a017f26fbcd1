package matcher

import (
	"strings"

	"github.com/cmdgate/cmdgate/internal/gatetypes"
)

const (
	bashPatternPrefix = "Bash("
	bashPatternSuffix = ")"
	prefixMarker      = ":*"
)

// MatchesBashPattern reports whether a canonical command matches one
// Bash(...) pattern.
//
// Two pattern forms exist:
//   - "Bash(<text>)" requires the reconstructed command line to equal
//     <text> exactly.
//   - "Bash(<prefix>:*)" matches when the command line equals <prefix>
//     exactly or starts with <prefix> followed by a space. It is a
//     word-boundary prefix match, never a bare substring match: "npm test"
//     matches "Bash(npm test:*)" but "npm testing" does not.
//
// A pattern that is not a well-formed Bash(...) string never matches.
func MatchesBashPattern(pattern string, cmd gatetypes.CanonicalCommand) bool {
	body, ok := strings.CutPrefix(pattern, bashPatternPrefix)
	if !ok {
		return false
	}
	body, ok = strings.CutSuffix(body, bashPatternSuffix)
	if !ok {
		return false
	}

	candidate := cmd.CommandLine()

	if prefix, ok := strings.CutSuffix(body, prefixMarker); ok {
		return candidate == prefix || strings.HasPrefix(candidate, prefix+" ")
	}
	return candidate == body
}
