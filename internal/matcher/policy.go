package matcher

import "github.com/cmdgate/cmdgate/internal/gatetypes"

// Decide aggregates per-command verdicts over all canonical commands
// derived from one original string into the externally visible decision.
//
// The policy is all-or-nothing and fail-closed:
//   - zero commands defer to review (nothing provably safe was found);
//   - any deny match defers to review rather than hard-blocking, so a
//     false-positive deny pattern degrades to a human prompt instead of
//     silently stopping legitimate work;
//   - any command without an allow match defers to review;
//   - only when every command is allow-matched and none is deny-matched is
//     the whole string approved.
func Decide(commands []gatetypes.CanonicalCommand, rules gatetypes.RuleSet) gatetypes.Decision {
	if len(commands) == 0 {
		return gatetypes.DecisionAsk
	}
	for _, cmd := range commands {
		v := EvaluateCommand(cmd, rules)
		if v.Denied || !v.Allowed {
			return gatetypes.DecisionAsk
		}
	}
	return gatetypes.DecisionAllow
}

// DecideTool is the two-state decision for hierarchical tool identifiers:
// allow if and only if some allow pattern matches and no deny pattern
// matches, otherwise defer to review.
func DecideTool(toolID string, rules gatetypes.RuleSet) gatetypes.Decision {
	v := EvaluateTool(toolID, rules)
	if v.Allowed && !v.Denied {
		return gatetypes.DecisionAllow
	}
	return gatetypes.DecisionAsk
}
