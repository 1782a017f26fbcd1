// Package matcher evaluates canonical commands and hierarchical tool
// identifiers against allow/deny pattern lists, and aggregates per-command
// verdicts into a single decision with a fail-closed posture.
package matcher

import "github.com/cmdgate/cmdgate/internal/gatetypes"

// Verdict is the result of evaluating one command against a rule set. Deny
// and allow are reported independently; precedence between them is decision
// policy, not matching.
type Verdict struct {
	// Allowed indicates some allow pattern matched.
	Allowed bool
	// Denied indicates some deny pattern matched.
	Denied bool
	// AllowPattern is the first allow pattern that matched, if any.
	AllowPattern string
	// DenyPattern is the first deny pattern that matched, if any.
	DenyPattern string
}

// EvaluateCommand checks one canonical command against the rule set. The
// deny list is checked first, then the allow list; both results are
// reported so the caller's policy can weigh them. Pattern lists are treated
// as sets: order is irrelevant and malformed patterns never match.
func EvaluateCommand(cmd gatetypes.CanonicalCommand, rules gatetypes.RuleSet) Verdict {
	var v Verdict
	for _, pattern := range rules.Deny {
		if MatchesBashPattern(pattern, cmd) {
			v.Denied = true
			v.DenyPattern = pattern
			break
		}
	}
	for _, pattern := range rules.Allow {
		if MatchesBashPattern(pattern, cmd) {
			v.Allowed = true
			v.AllowPattern = pattern
			break
		}
	}
	return v
}

// EvaluateTool checks one hierarchical tool identifier against the rule
// set using tool-pattern matching.
func EvaluateTool(toolID string, rules gatetypes.RuleSet) Verdict {
	var v Verdict
	for _, pattern := range rules.Deny {
		if MatchesToolPattern(pattern, toolID) {
			v.Denied = true
			v.DenyPattern = pattern
			break
		}
	}
	for _, pattern := range rules.Allow {
		if MatchesToolPattern(pattern, toolID) {
			v.Allowed = true
			v.AllowPattern = pattern
			break
		}
	}
	return v
}
