package analyzer

// controlOperators are the operators that delimit sub-commands. Redirection
// and background operators are not boundaries; they stay inside the segment
// for the normalizer to strip.
var controlOperators = map[string]struct{}{
	"&&": {},
	"||": {},
	";":  {},
	"|":  {},
}

// isControlOperator reports whether the token delimits sub-commands.
func isControlOperator(t Token) bool {
	if t.Kind != TokenOperator {
		return false
	}
	_, ok := controlOperators[t.Value]
	return ok
}

// Segment groups a token list into sub-command segments. Each control
// operator closes the current segment (the operator itself is dropped) and
// opens the next one. A trailing empty segment is discarded; an empty token
// list yields no segments.
func Segment(tokens []Token) [][]Token {
	var segments [][]Token
	var current []Token

	for _, tok := range tokens {
		if isControlOperator(tok) {
			segments = append(segments, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}

	if len(current) > 0 {
		segments = append(segments, current)
	}

	return segments
}
