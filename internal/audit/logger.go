// Package audit provides structured audit logging for gate decisions.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmdgate/cmdgate/internal/gatetypes"
	"github.com/cmdgate/cmdgate/internal/logging"
	"github.com/cmdgate/cmdgate/internal/matcher"
)

// Logger provides structured audit logging functionality
type Logger struct {
	logger *slog.Logger
	runID  string
}

// NewLogger creates a new audit logger instance bound to one run.
func NewLogger(logger *slog.Logger, runID string) *Logger {
	return &Logger{logger: logger, runID: runID}
}

// CommandVerdict pairs a canonical command with its matching verdict for
// the audit record.
type CommandVerdict struct {
	Command gatetypes.CanonicalCommand
	Verdict matcher.Verdict
}

// LogDecision logs the final decision for one proposed command string with
// the full per-command breakdown.
func (a *Logger) LogDecision(
	_ context.Context,
	rawCommand string,
	decision gatetypes.Decision,
	verdicts []CommandVerdict,
) {
	attrs := []slog.Attr{
		slog.String("audit_type", "gate_decision"),
		slog.String("decision_id", logging.GenerateDecisionID()),
		slog.String("run_id", a.runID),
		slog.Int64("timestamp", time.Now().Unix()),
		slog.String("command", rawCommand),
		slog.String("decision", decision.String()),
		slog.Int("command_count", len(verdicts)),
	}

	// Keys are indexed so compound commands keep one unique key per
	// sub-command in JSON output.
	for i, cv := range verdicts {
		group := []slog.Attr{
			slog.String("command_line", cv.Command.CommandLine()),
			slog.Bool("allowed", cv.Verdict.Allowed),
			slog.Bool("denied", cv.Verdict.Denied),
		}
		if cv.Verdict.AllowPattern != "" {
			group = append(group, slog.String("allow_pattern", cv.Verdict.AllowPattern))
		}
		if cv.Verdict.DenyPattern != "" {
			group = append(group, slog.String("deny_pattern", cv.Verdict.DenyPattern))
		}
		attrs = append(attrs, slog.Attr{Key: fmt.Sprintf("verdict_%d", i), Value: slog.GroupValue(group...)})
	}

	a.logger.LogAttrs(context.Background(), slog.LevelInfo, "Gate decision", attrs...)
}

// LogAnalysisFailure logs a command string the analyzer could not reason
// about. Unsupported constructs are logged at warn level: they are a
// common shape for probes against the gate.
func (a *Logger) LogAnalysisFailure(_ context.Context, rawCommand string, reason error) {
	attrs := []slog.Attr{
		slog.String("audit_type", "analysis_failure"),
		slog.String("decision_id", logging.GenerateDecisionID()),
		slog.String("run_id", a.runID),
		slog.Int64("timestamp", time.Now().Unix()),
		slog.String("command", rawCommand),
		slog.String("reason", reason.Error()),
		slog.String("decision", gatetypes.DecisionAsk.String()),
	}

	a.logger.LogAttrs(context.Background(), slog.LevelWarn, "Command analysis failed", attrs...)
}

// LogToolDecision logs the decision for one hierarchical tool identifier.
func (a *Logger) LogToolDecision(_ context.Context, toolID string, decision gatetypes.Decision, v matcher.Verdict) {
	attrs := []slog.Attr{
		slog.String("audit_type", "gate_decision"),
		slog.String("decision_id", logging.GenerateDecisionID()),
		slog.String("run_id", a.runID),
		slog.Int64("timestamp", time.Now().Unix()),
		slog.String("tool_id", toolID),
		slog.String("decision", decision.String()),
		slog.Bool("allowed", v.Allowed),
		slog.Bool("denied", v.Denied),
	}
	if v.AllowPattern != "" {
		attrs = append(attrs, slog.String("allow_pattern", v.AllowPattern))
	}
	if v.DenyPattern != "" {
		attrs = append(attrs, slog.String("deny_pattern", v.DenyPattern))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelInfo, "Gate decision", attrs...)
}
