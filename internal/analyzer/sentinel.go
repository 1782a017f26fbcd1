package analyzer

import "strings"

// unsafeConstruct pairs a literal signature with the name of the construct
// it indicates.
type unsafeConstruct struct {
	Signature string
	Name      string
}

// unsafeConstructs contains the static list of construct signatures that
// make a command string impossible to analyze lexically. Substitution can
// make the executable the analyzer sees arbitrary; heredocs change how much
// of the string is code versus data.
var unsafeConstructs = []unsafeConstruct{
	{"$(", "command substitution"},
	{"`", "backtick substitution"},
	{"<<", "heredoc"},
	{"<(", "process substitution"},
	{">(", "process substitution"},
}

// CheckUnsafeConstructs scans a raw command string for constructs that
// defeat lexical analysis. It returns a *ConstructError naming the first
// construct found, or nil if the string is free of them. The scan is a pure
// substring check and runs before tokenization: quoting does not make these
// constructs safe to approve.
func CheckUnsafeConstructs(command string) error {
	for _, c := range unsafeConstructs {
		if strings.Contains(command, c.Signature) {
			return &ConstructError{Construct: c.Name, Signature: c.Signature}
		}
	}
	return nil
}
