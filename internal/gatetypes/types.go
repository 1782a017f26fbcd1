// Package gatetypes defines the core data structures shared by the command
// approval gate: decisions, canonical commands, and rule sets.
package gatetypes

// Decision represents the outcome of evaluating a proposed tool invocation.
type Decision int

const (
	// DecisionAsk defers the invocation to human review. This is the zero
	// value so that any path that fails to produce an explicit decision
	// falls back to the least permissive outcome.
	DecisionAsk Decision = iota

	// DecisionAllow approves the invocation without review.
	DecisionAllow

	// DecisionDeny marks an explicit deny-list match. It is reported on
	// per-command verdicts only; the externally visible decision for shell
	// commands degrades a deny to DecisionAsk so that a false-positive
	// deny pattern routes to review instead of silently blocking.
	DecisionDeny
)

// Decision string constants used for string representation and output.
const (
	// AskDecisionString represents a deferred decision.
	AskDecisionString = "ask"
	// AllowDecisionString represents an approved decision.
	AllowDecisionString = "allow"
	// DenyDecisionString represents an explicit deny verdict.
	DenyDecisionString = "deny"
)

// String returns the string representation of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return AllowDecisionString
	case DecisionDeny:
		return DenyDecisionString
	default:
		return AskDecisionString
	}
}

// CanonicalCommand is the normalized (executable, args) pair used as the
// unit of pattern matching. Args is the space-joined remainder of the
// command after environment assignments, wrapper programs, redirections and
// background markers have been stripped.
type CanonicalCommand struct {
	Executable string
	Args       string
}

// CommandLine reconstructs the matchable command line: the executable alone,
// or the executable and args separated by a single space.
func (c CanonicalCommand) CommandLine() string {
	if c.Args == "" {
		return c.Executable
	}
	return c.Executable + " " + c.Args
}

// RuleSet holds the allow and deny pattern lists for one evaluation. Both
// lists have set semantics: order is irrelevant and duplicates are harmless.
// Patterns are opaque strings; a pattern that matches no recognized family
// simply never matches anything.
type RuleSet struct {
	Allow []string
	Deny  []string
}
