package analyzer

import (
	"strings"
	"unicode"
)

// TokenKind distinguishes literal words from shell operator markers.
type TokenKind int

const (
	// TokenWord is a literal word with all quoting and escaping resolved.
	TokenWord TokenKind = iota

	// TokenOperator is one of the fixed operator markers: "&&", "||", ";",
	// "|", ">", ">>", "<", "&".
	TokenOperator
)

// Token is the tokenizer's output unit. Tokens are immutable once emitted
// and their order is significant through segmentation.
type Token struct {
	Kind  TokenKind
	Value string
}

// Word constructs a word token.
func Word(value string) Token {
	return Token{Kind: TokenWord, Value: value}
}

// Operator constructs an operator token.
func Operator(value string) Token {
	return Token{Kind: TokenOperator, Value: value}
}

// IsOperator reports whether the token is the given operator marker.
func (t Token) IsOperator(value string) bool {
	return t.Kind == TokenOperator && t.Value == value
}

// lexState is the tokenizer state machine state.
type lexState int

const (
	stateNormal lexState = iota
	stateSingleQuote
	stateDoubleQuote
	stateEscape
)

// operatorStartChars are the characters that can begin an operator in the
// Normal state.
const operatorStartChars = ";|><&"

// Tokenize splits a command string into word and operator tokens using a
// single-pass state machine.
//
// Tokenization rules:
//   - Single quotes suppress all special meaning until the closing quote;
//     backslash is a literal character inside them.
//   - Double quotes suppress whitespace and operator splitting; backslash
//     escapes the next character.
//   - Backslash in the Normal state escapes the next character, including
//     whitespace.
//   - Unescaped whitespace closes the current word. A word opened by a
//     quote is emitted even when empty, so "''" yields one empty token.
//   - Two-character operators ("&&", "||", ">>") are matched greedily
//     before single-character ones (";", "|", ">", "<", "&"). An operator
//     flushes any in-progress word before being emitted.
//   - A numeric word fused directly to a redirection operator (the "2" in
//     "2>&1") is a file descriptor, not an argument, and is discarded.
//   - An unterminated quote at end of input is treated as implicitly
//     closed rather than rejected.
func Tokenize(command string) []Token {
	var tokens []Token
	var buf strings.Builder
	state := stateNormal
	saved := stateNormal

	// quoteOpened tracks whether the current word was opened by a quote,
	// so that an empty quoted string still produces a token.
	quoteOpened := false

	flush := func() {
		if buf.Len() > 0 || quoteOpened {
			tokens = append(tokens, Word(buf.String()))
		}
		buf.Reset()
		quoteOpened = false
	}

	runes := []rune(command)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch state {
		case stateNormal:
			switch {
			case ch == '\'':
				state = stateSingleQuote
				quoteOpened = true
			case ch == '"':
				state = stateDoubleQuote
				quoteOpened = true
			case ch == '\\':
				saved = stateNormal
				state = stateEscape
			case unicode.IsSpace(ch):
				flush()
			case strings.ContainsRune(operatorStartChars, ch):
				if (ch == '>' || ch == '<') && !quoteOpened && isAllDigits(buf.String()) {
					// fd prefix fused to a redirection, e.g. "2>&1"
					buf.Reset()
				}
				flush()
				if i+1 < len(runes) {
					two := string(ch) + string(runes[i+1])
					if two == "&&" || two == "||" || two == ">>" {
						tokens = append(tokens, Operator(two))
						i++
						continue
					}
				}
				tokens = append(tokens, Operator(string(ch)))
			default:
				buf.WriteRune(ch)
			}

		case stateSingleQuote:
			if ch == '\'' {
				state = stateNormal
			} else {
				buf.WriteRune(ch)
			}

		case stateDoubleQuote:
			switch ch {
			case '"':
				state = stateNormal
			case '\\':
				saved = stateDoubleQuote
				state = stateEscape
			default:
				buf.WriteRune(ch)
			}

		case stateEscape:
			buf.WriteRune(ch)
			state = saved
		}
	}

	// Unterminated quotes and a trailing backslash fall through here; the
	// word collected so far is emitted as-is.
	flush()

	return tokens
}

// isAllDigits reports whether s is non-empty and consists only of ASCII
// digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
