package matcher

import "strings"

const (
	// toolSegmentSeparator joins the namespace, server and tool parts of a
	// hierarchical tool identifier.
	toolSegmentSeparator = "__"

	// toolWildcardSuffix marks a tool-level wildcard pattern.
	toolWildcardSuffix = "__*"

	// serverPatternSegments is the segment count of a server-level pattern,
	// which implicitly matches every tool under that server.
	serverPatternSegments = 2
)

// IsToolIdentifier reports whether a tool name uses the hierarchical
// namespace__server__tool shape and should be matched as a tool identifier
// rather than as a shell command.
func IsToolIdentifier(toolName string) bool {
	return strings.Contains(toolName, toolSegmentSeparator)
}

// MatchesToolPattern reports whether a hierarchical tool identifier matches
// one tool pattern.
//
// Matching rules, checked in order:
//   - Exact equality always matches.
//   - A pattern ending "__*" matches any identifier sharing the prefix
//     obtained by dropping the trailing "*".
//   - A two-segment pattern acts as a server-level wildcard: it matches any
//     identifier of three or more segments whose first two segments agree.
//   - A pattern of three or more segments only matches exactly.
func MatchesToolPattern(pattern, toolID string) bool {
	if pattern == toolID {
		return true
	}

	if strings.HasSuffix(pattern, toolWildcardSuffix) {
		prefix := strings.TrimSuffix(pattern, "*")
		return strings.HasPrefix(toolID, prefix)
	}

	patternSegments := strings.Split(pattern, toolSegmentSeparator)
	idSegments := strings.Split(toolID, toolSegmentSeparator)
	if len(patternSegments) == serverPatternSegments && len(idSegments) > serverPatternSegments {
		return patternSegments[0] == idSegments[0] && patternSegments[1] == idSegments[1]
	}

	return false
}
