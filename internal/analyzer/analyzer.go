// Package analyzer turns an untrusted shell command string into a list of
// independently matchable canonical commands without ever invoking a shell.
//
// The pipeline is a straight line: unsafe-construct sentinel, tokenizer,
// segmenter, normalizer. Each stage consumes the previous stage's output
// without mutating it. Anything the pipeline cannot reason about is
// reported as an error so that callers can fail closed; the analyzer never
// guesses.
package analyzer

import "github.com/cmdgate/cmdgate/internal/gatetypes"

// MaxUnwrapDepth caps recursive bash -c / sh -c unwrapping. Nesting past
// this depth is treated as an analysis failure rather than unwrapped
// further, bounding adversarial inputs.
const MaxUnwrapDepth = 16

// Analyze runs the full pipeline over a raw command string and returns the
// canonical commands it contains, in order.
//
// A returned *ConstructError means the string contains a construct that can
// never be approved automatically. Any other error means the string could
// not be normalized. An empty or whitespace-only string yields an empty
// list and no error; deciding what an empty list means is the caller's
// policy.
func Analyze(command string) ([]gatetypes.CanonicalCommand, error) {
	if err := CheckUnsafeConstructs(command); err != nil {
		return nil, err
	}

	segments := Segment(Tokenize(command))

	var commands []gatetypes.CanonicalCommand
	for _, seg := range segments {
		cmd, err := normalizeSegment(seg, 0)
		if err != nil {
			return nil, err
		}
		if cmd != nil {
			commands = append(commands, *cmd)
		}
	}
	return commands, nil
}
