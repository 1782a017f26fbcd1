// Package terminal determines whether the gate is talking to an
// interactive terminal or to hook plumbing, so output can switch between a
// human-readable line and machine-readable JSON.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciIndicatorVars are environment variables whose presence marks a CI or
// automation environment.
var ciIndicatorVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILDKITE",
	"CLAUDE_CODE", // running under an agent harness, not a human shell
}

// Options controls interactive detection.
type Options struct {
	// ForceInteractive treats the session as interactive regardless of
	// environment.
	ForceInteractive bool
	// ForceNonInteractive treats the session as non-interactive regardless
	// of environment. Takes effect only when ForceInteractive is unset.
	ForceNonInteractive bool
}

// Detector reports terminal capabilities for the current process.
type Detector struct {
	options Options
}

// NewDetector creates a detector with the given options.
func NewDetector(options Options) *Detector {
	return &Detector{options: options}
}

// IsInteractive reports whether output should be formatted for a human.
// Explicit options win, then CI detection, then file descriptor checks.
func (d *Detector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}
	if d.inCIEnvironment() {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// inCIEnvironment reports whether a CI/automation indicator is set. The
// generic CI variable must be truthy; any other indicator counts by
// presence alone.
func (d *Detector) inCIEnvironment() bool {
	for _, name := range ciIndicatorVars {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if name == "CI" {
			lower := strings.ToLower(strings.TrimSpace(value))
			if lower == "false" || lower == "0" || lower == "no" {
				continue
			}
		}
		return true
	}
	return false
}
