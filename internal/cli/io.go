// Package cli handles the gate's thin I/O surface: parsing the hook
// payload from stdin and writing the decision to stdout. The decision core
// never does I/O; everything file- or stream-shaped lives here.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cmdgate/cmdgate/internal/gatetypes"
)

// Error definitions for the cli package
var (
	// ErrEmptyInput is returned when stdin carries no payload at all.
	ErrEmptyInput = errors.New("empty hook input")
)

// HookInput is the pre-tool-use hook payload. Unknown fields are ignored;
// only the proposed command and tool identity matter to the gate.
type HookInput struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
	Cwd       string    `json:"cwd"`
}

// ToolInput carries the tool-specific parameters of the proposed call.
type ToolInput struct {
	Command string `json:"command"`
}

// ParseHookInput reads and parses the hook payload. A malformed or empty
// payload is an error; the caller maps every error to a deferred decision.
func ParseHookInput(r io.Reader) (*HookInput, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read hook input: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, ErrEmptyInput
	}

	var input HookInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("failed to parse hook input: %w", err)
	}
	return &input, nil
}

// hookOutput is the hook response envelope.
type hookOutput struct {
	HookSpecificOutput hookSpecificOutput `json:"hookSpecificOutput"`
}

type hookSpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason,omitempty"`
}

// hookEventName is the event this gate responds to.
const hookEventName = "PreToolUse"

// WriteDecision writes the decision in the machine-readable hook response
// format. A deny verdict is never emitted externally; callers degrade it to
// a deferred decision before reaching here.
func WriteDecision(w io.Writer, decision gatetypes.Decision, reason string) error {
	out := hookOutput{
		HookSpecificOutput: hookSpecificOutput{
			HookEventName:            hookEventName,
			PermissionDecision:       decision.String(),
			PermissionDecisionReason: reason,
		},
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}

// FormatDecision renders a single human-readable decision line for
// interactive use.
func FormatDecision(decision gatetypes.Decision, reason string) string {
	if reason == "" {
		return decision.String()
	}
	return fmt.Sprintf("%s (%s)", decision.String(), reason)
}
