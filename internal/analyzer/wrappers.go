package analyzer

import (
	"regexp"
	"strings"
)

// durationPattern matches timeout duration arguments: an integer or decimal
// number with an optional s/m/h/d unit suffix.
var durationPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?[smhd]?$`)

// fusedNicePattern matches the fused priority form of nice, e.g. "-10".
var fusedNicePattern = regexp.MustCompile(`^-[0-9]+$`)

// timeoutValueFlags are the timeout(1) flags that take a separate value
// argument.
var timeoutValueFlags = map[string]struct{}{
	"-s":           {},
	"--signal":     {},
	"-k":           {},
	"--kill-after": {},
}

// consumeNoOptions is the consumer for wrappers that take no options of
// their own before the wrapped command (time, nohup).
func consumeNoOptions(rest []Token) []Token {
	return rest
}

// consumeTimeoutOptions consumes timeout's duration and flags. The duration
// is accepted both before and after the flags, since timeout tolerates
// either ordering in practice.
func consumeTimeoutOptions(rest []Token) []Token {
	rest = consumeDuration(rest)
	for len(rest) > 0 && isFlagWord(rest[0]) {
		flag := rest[0].Value
		rest = rest[1:]
		if _, ok := timeoutValueFlags[flag]; ok {
			if len(rest) > 0 && rest[0].Kind == TokenWord {
				rest = rest[1:]
			}
		}
	}
	return consumeDuration(rest)
}

// consumeDuration consumes a single leading duration token if present.
func consumeDuration(rest []Token) []Token {
	if len(rest) > 0 && rest[0].Kind == TokenWord && durationPattern.MatchString(rest[0].Value) {
		return rest[1:]
	}
	return rest
}

// consumeNiceOptions consumes nice's priority adjustment: "-n <value>",
// "--adjustment <value>", or the fused "-N" form.
func consumeNiceOptions(rest []Token) []Token {
	if len(rest) == 0 || rest[0].Kind != TokenWord {
		return rest
	}
	switch v := rest[0].Value; {
	case v == "-n" || v == "--adjustment":
		if len(rest) > 1 && rest[1].Kind == TokenWord {
			return rest[2:]
		}
		return rest[1:]
	case fusedNicePattern.MatchString(v):
		return rest[1:]
	}
	return rest
}

// consumeEnvOptions consumes env's VAR=value assignments, "-u NAME" unset
// pairs, and the -i environment reset flag.
func consumeEnvOptions(rest []Token) []Token {
	for len(rest) > 0 && rest[0].Kind == TokenWord {
		switch v := rest[0].Value; {
		case envAssignmentPattern.MatchString(v):
			rest = rest[1:]
		case v == "-u" || v == "--unset":
			if len(rest) > 1 && rest[1].Kind == TokenWord {
				rest = rest[2:]
			} else {
				rest = rest[1:]
			}
		case v == "-i" || v == "--ignore-environment":
			rest = rest[1:]
		default:
			return rest
		}
	}
	return rest
}

// isFlagWord reports whether the token is a word starting with "-".
func isFlagWord(t Token) bool {
	return t.Kind == TokenWord && strings.HasPrefix(t.Value, "-")
}
