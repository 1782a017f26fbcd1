package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgate/cmdgate/internal/gatetypes"
	"github.com/cmdgate/cmdgate/internal/matcher"
)

// newTestLogger returns an audit logger writing JSON records into buf.
func newTestLogger(buf *bytes.Buffer, runID string) *Logger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewLogger(slog.New(handler), runID)
}

// decodeRecord parses the single JSON log line in buf.
func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestLogger_LogDecision(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "run-123")

	verdicts := []CommandVerdict{
		{
			Command: gatetypes.CanonicalCommand{Executable: "npm", Args: "test"},
			Verdict: matcher.Verdict{Allowed: true, AllowPattern: "Bash(npm test:*)"},
		},
		{
			Command: gatetypes.CanonicalCommand{Executable: "git", Args: "push"},
			Verdict: matcher.Verdict{Denied: true, DenyPattern: "Bash(git push:*)"},
		},
	}
	logger.LogDecision(context.Background(), "npm test && git push", gatetypes.DecisionAsk, verdicts)

	record := decodeRecord(t, &buf)
	assert.Equal(t, "gate_decision", record["audit_type"])
	assert.Equal(t, "run-123", record["run_id"])
	assert.Equal(t, "npm test && git push", record["command"])
	assert.Equal(t, "ask", record["decision"])
	assert.Equal(t, float64(2), record["command_count"])
	assert.NotEmpty(t, record["decision_id"])
	assert.NotZero(t, record["timestamp"])

	first, ok := record["verdict_0"].(map[string]any)
	require.True(t, ok, "first per-command verdict group missing")
	assert.Equal(t, "npm test", first["command_line"])
	assert.Equal(t, true, first["allowed"])
	assert.Equal(t, false, first["denied"])
	assert.Equal(t, "Bash(npm test:*)", first["allow_pattern"])

	second, ok := record["verdict_1"].(map[string]any)
	require.True(t, ok, "second per-command verdict group missing")
	assert.Equal(t, "git push", second["command_line"])
	assert.Equal(t, false, second["allowed"])
	assert.Equal(t, true, second["denied"])
	assert.Equal(t, "Bash(git push:*)", second["deny_pattern"])
}

func TestLogger_LogAnalysisFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "run-123")

	logger.LogAnalysisFailure(context.Background(), "echo $(id)", errors.New("unsupported shell construct"))

	record := decodeRecord(t, &buf)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "analysis_failure", record["audit_type"])
	assert.Equal(t, "echo $(id)", record["command"])
	assert.Equal(t, "ask", record["decision"])
	assert.Contains(t, record["reason"], "unsupported shell construct")
}

func TestLogger_LogToolDecision(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "run-123")

	verdict := matcher.Verdict{Denied: true, DenyPattern: "mcp__files__delete"}
	logger.LogToolDecision(context.Background(), "mcp__files__delete", gatetypes.DecisionAsk, verdict)

	record := decodeRecord(t, &buf)
	assert.Equal(t, "gate_decision", record["audit_type"])
	assert.Equal(t, "mcp__files__delete", record["tool_id"])
	assert.Equal(t, "ask", record["decision"])
	assert.Equal(t, true, record["denied"])
	assert.Equal(t, "mcp__files__delete", record["deny_pattern"])
	assert.NotContains(t, record, "allow_pattern")
}
