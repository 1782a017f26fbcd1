package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgate/cmdgate/internal/gatetypes"
)

func TestParseHookInput(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *HookInput
		wantErr error
	}{
		{
			name:    "bash tool payload",
			payload: `{"tool_name":"Bash","tool_input":{"command":"npm test"},"cwd":"/work"}`,
			want: &HookInput{
				ToolName:  "Bash",
				ToolInput: ToolInput{Command: "npm test"},
				Cwd:       "/work",
			},
		},
		{
			name:    "hierarchical tool payload",
			payload: `{"tool_name":"mcp__server__tool","tool_input":{}}`,
			want: &HookInput{
				ToolName: "mcp__server__tool",
			},
		},
		{
			name:    "unknown fields are ignored",
			payload: `{"tool_name":"Bash","tool_input":{"command":"ls","timeout":5},"session_id":"x"}`,
			want: &HookInput{
				ToolName:  "Bash",
				ToolInput: ToolInput{Command: "ls"},
			},
		},
		{
			name:    "empty input",
			payload: "",
			wantErr: ErrEmptyInput,
		},
		{
			name:    "whitespace-only input",
			payload: "  \n\t",
			wantErr: ErrEmptyInput,
		},
		{
			name:    "malformed json",
			payload: `{"tool_name":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHookInput(strings.NewReader(tt.payload))
			if tt.want == nil {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteDecision(t *testing.T) {
	tests := []struct {
		name       string
		decision   gatetypes.Decision
		reason     string
		wantFields map[string]any
	}{
		{
			name:     "allow with reason",
			decision: gatetypes.DecisionAllow,
			reason:   "all commands matched the allow list",
			wantFields: map[string]any{
				"hookEventName":            "PreToolUse",
				"permissionDecision":       "allow",
				"permissionDecisionReason": "all commands matched the allow list",
			},
		},
		{
			name:     "ask without reason omits the reason field",
			decision: gatetypes.DecisionAsk,
			wantFields: map[string]any{
				"hookEventName":      "PreToolUse",
				"permissionDecision": "ask",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteDecision(&buf, tt.decision, tt.reason))

			var envelope map[string]map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))
			assert.Equal(t, tt.wantFields, envelope["hookSpecificOutput"])
		})
	}
}

func TestFormatDecision(t *testing.T) {
	assert.Equal(t, "allow (matched)", FormatDecision(gatetypes.DecisionAllow, "matched"))
	assert.Equal(t, "ask", FormatDecision(gatetypes.DecisionAsk, ""))
}
