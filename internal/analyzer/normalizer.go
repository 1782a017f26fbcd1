package analyzer

import (
	"regexp"
	"strings"

	"github.com/cmdgate/cmdgate/internal/gatetypes"
)

// envAssignmentPattern matches a shell environment assignment prefix such as
// "FOO=" or "_PATH2=".
var envAssignmentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)

// assignmentBuiltins are shell builtins whose invocations manipulate the
// shell environment only. A segment led by one of these collapses to no
// command at all.
var assignmentBuiltins = map[string]struct{}{
	"export":  {},
	"set":     {},
	"unset":   {},
	"local":   {},
	"declare": {},
	"typeset": {},
}

// wrapperConsumer consumes a wrapper program's own option and argument
// tokens (everything after the wrapper name that belongs to the wrapper,
// not to the wrapped command) and returns the remaining tokens.
type wrapperConsumer func(rest []Token) []Token

// wrapperRules maps transparent wrapper programs to their option consumers.
// These programs do not change the "real" executable; they are stripped
// before matching, and they can stack.
var wrapperRules = map[string]wrapperConsumer{
	"timeout": consumeTimeoutOptions,
	"time":    consumeNoOptions,
	"nice":    consumeNiceOptions,
	"nohup":   consumeNoOptions,
	"env":     consumeEnvOptions,
}

// normalizeSegment reduces one segment to its canonical command, or to nil
// when the segment carries no command (pure assignments, builtins, blank
// inner shell strings).
//
// The step order is load-bearing: assignments may precede wrappers, and
// "env bash -c ..." must still unwrap, so assignment stripping runs first
// and shell unwrapping runs after wrapper stripping.
func normalizeSegment(segment []Token, depth int) (*gatetypes.CanonicalCommand, error) {
	toks := make([]Token, len(segment))
	copy(toks, segment)

	// Step 1: drop leading environment assignments.
	for len(toks) > 0 && toks[0].Kind == TokenWord && envAssignmentPattern.MatchString(toks[0].Value) {
		toks = toks[1:]
	}

	// Step 2: segments led by an assignment builtin carry no command.
	if len(toks) > 0 && toks[0].Kind == TokenWord {
		if _, ok := assignmentBuiltins[toks[0].Value]; ok {
			return nil, nil
		}
	}

	// Step 3: strip transparent wrappers, repeating because they stack.
	// Only the literal names are transparent: "./timeout" or
	// "/usr/bin/timeout" names an arbitrary executable that happens to be
	// called timeout, and it is matched as-is.
	for len(toks) > 0 && toks[0].Kind == TokenWord {
		consume, ok := wrapperRules[toks[0].Value]
		if !ok {
			break
		}
		toks = consume(toks[1:])
	}

	// Step 4: unwrap bash -c / sh -c by re-running the full pipeline on the
	// quoted command string. As with wrappers, only the literal shell names
	// unwrap.
	if len(toks) > 0 && toks[0].Kind == TokenWord {
		switch toks[0].Value {
		case "bash", "sh":
			if inner, ok := dashCArgument(toks[1:]); ok {
				return unwrapShellCommand(inner, depth+1)
			}
		}
	}

	// Step 5: strip trailing background markers.
	for len(toks) > 0 && toks[len(toks)-1].IsOperator("&") {
		toks = toks[:len(toks)-1]
	}

	// Step 6: strip redirections and their targets.
	toks = stripRedirections(toks)

	// Step 7: whatever remains is the command.
	var words []string
	for _, t := range toks {
		if t.Kind == TokenWord {
			words = append(words, t.Value)
		}
	}
	if len(words) == 0 {
		return nil, nil
	}
	return &gatetypes.CanonicalCommand{
		Executable: words[0],
		Args:       strings.Join(words[1:], " "),
	}, nil
}

// dashCArgument locates a "-c" flag and returns its argument. The second
// return value reports whether a -c flag with a following argument exists.
func dashCArgument(toks []Token) (string, bool) {
	for i, t := range toks {
		if t.Kind == TokenWord && t.Value == "-c" {
			if i+1 < len(toks) && toks[i+1].Kind == TokenWord {
				return toks[i+1].Value, true
			}
			return "", false
		}
	}
	return "", false
}

// unwrapShellCommand treats the argument of bash -c / sh -c as a complete
// new command string and runs it through the same sentinel, tokenizer and
// segmenter. Only the first resulting segment is normalized; content after
// the first control operator inside the quoted string is discarded. A blank
// inner string carries no command.
func unwrapShellCommand(command string, depth int) (*gatetypes.CanonicalCommand, error) {
	if depth > MaxUnwrapDepth {
		return nil, ErrUnwrapDepthExceeded
	}
	if strings.TrimSpace(command) == "" {
		return nil, nil
	}
	if err := CheckUnsafeConstructs(command); err != nil {
		return nil, err
	}
	segments := Segment(Tokenize(command))
	if len(segments) == 0 {
		return nil, nil
	}
	return normalizeSegment(segments[0], depth)
}

// stripRedirections removes redirection operators together with their
// target token. The target is kept when it is itself an operator (fused
// forms like ">&1" contribute no argument either way). A mid-segment "&"
// only occurs in fused descriptor duplications; it is dropped along with a
// numeric duplication target.
func stripRedirections(toks []Token) []Token {
	var out []Token
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == TokenOperator {
			switch t.Value {
			case ">", ">>", "<":
				if i+1 < len(toks) && toks[i+1].Kind == TokenWord {
					i++
				}
				continue
			case "&":
				if i+1 < len(toks) && toks[i+1].Kind == TokenWord && isAllDigits(toks[i+1].Value) {
					i++
				}
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
