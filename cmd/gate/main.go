// Package main provides the entry point for the command approval gate. It
// reads a proposed tool invocation from a hook payload on stdin (or from
// flags), evaluates it against the configured allow/deny pattern lists, and
// writes an allow-or-ask decision.
//
// The gate always exits 0 once flags are parsed: a broken gate must
// degrade to the caller's normal approval prompt, never block it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmdgate/cmdgate/internal/analyzer"
	"github.com/cmdgate/cmdgate/internal/audit"
	"github.com/cmdgate/cmdgate/internal/cli"
	"github.com/cmdgate/cmdgate/internal/config"
	"github.com/cmdgate/cmdgate/internal/gatetypes"
	"github.com/cmdgate/cmdgate/internal/logging"
	"github.com/cmdgate/cmdgate/internal/matcher"
	"github.com/cmdgate/cmdgate/internal/terminal"
)

var (
	rulesPath   = flag.String("rules", "", "path to rules file (default: $"+config.EnvRulesPath+" or .claude/cmdgate-rules.toml)")
	logLevel    = flag.String("log-level", "", "log level (debug, info, warn, error); overrides the rules file")
	logJSON     = flag.Bool("log-json", false, "emit logs as JSON")
	commandFlag = flag.String("command", "", "evaluate this command string instead of reading a hook payload from stdin")
	toolFlag    = flag.String("tool", "", "evaluate this tool identifier instead of reading a hook payload from stdin")
	interactive = flag.Bool("interactive", false, "force human-readable output")
	quiet       = flag.Bool("quiet", false, "force machine-readable output")
)

func main() {
	// Generate run ID early so even bootstrap failures are attributable.
	runID := logging.GenerateRunID()

	flag.Parse()

	decision, reason := run(runID)

	detector := terminal.NewDetector(terminal.Options{
		ForceInteractive:    *interactive,
		ForceNonInteractive: *quiet,
	})
	if detector.IsInteractive() {
		fmt.Println(cli.FormatDecision(decision, reason))
	} else if err := cli.WriteDecision(os.Stdout, decision, reason); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write decision: %v\n", err)
	}
}

// run evaluates one invocation and returns the decision with a
// human-readable reason. Every failure path returns a deferred decision.
func run(runID string) (gatetypes.Decision, string) {
	cfg, err := loadRules()
	if err != nil {
		setupLogger(gatetypes.LogLevelInfo)
		slog.Error("Failed to load rules", "run_id", runID, "error", err)
		return gatetypes.DecisionAsk, fmt.Sprintf("rules unavailable: %v", err)
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = gatetypes.LogLevel(*logLevel)
	}
	logger := setupLogger(level)
	auditLogger := audit.NewLogger(logger, runID)

	ctx := context.Background()
	rules := cfg.RuleSet()

	command, toolID, err := resolveTarget()
	if err != nil {
		slog.Error("Failed to read hook input", "run_id", runID, "error", err)
		return gatetypes.DecisionAsk, fmt.Sprintf("unreadable input: %v", err)
	}

	if toolID != "" {
		decision := matcher.DecideTool(toolID, rules)
		auditLogger.LogToolDecision(ctx, toolID, decision, matcher.EvaluateTool(toolID, rules))
		return decision, "tool " + toolID
	}

	commands, err := analyzer.Analyze(command)
	if err != nil {
		auditLogger.LogAnalysisFailure(ctx, command, err)
		var constructErr *analyzer.ConstructError
		if errors.As(err, &constructErr) {
			return gatetypes.DecisionAsk, constructErr.Error()
		}
		return gatetypes.DecisionAsk, fmt.Sprintf("could not analyze command: %v", err)
	}

	decision := matcher.Decide(commands, rules)

	verdicts := make([]audit.CommandVerdict, 0, len(commands))
	for _, cmd := range commands {
		verdicts = append(verdicts, audit.CommandVerdict{
			Command: cmd,
			Verdict: matcher.EvaluateCommand(cmd, rules),
		})
	}
	auditLogger.LogDecision(ctx, command, decision, verdicts)

	if decision == gatetypes.DecisionAllow {
		return decision, "all commands matched the allow list"
	}
	return decision, "command requires review"
}

// loadRules discovers and loads the rules file, fresh on every invocation.
func loadRules() (*config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}
	path, err := config.ResolveRulesPath(*rulesPath, workDir)
	if err != nil {
		return nil, err
	}
	return config.LoadFile(path)
}

// setupLogger initializes logging at the given level, falling back to info
// on an invalid level string.
func setupLogger(level gatetypes.LogLevel) *slog.Logger {
	slogLevel, err := level.ToSlogLevel()
	if err != nil {
		slogLevel = slog.LevelInfo
	}
	return logging.Setup(logging.Options{
		Level:      slogLevel,
		JSONOutput: *logJSON,
	})
}

// resolveTarget determines what to evaluate: an explicit flag target, or
// the hook payload on stdin. Hook tool names carrying the hierarchical
// "__" separator are tool identifiers; everything else is treated as a
// shell command.
func resolveTarget() (command, toolID string, err error) {
	if *toolFlag != "" {
		return "", *toolFlag, nil
	}
	if *commandFlag != "" {
		return *commandFlag, "", nil
	}

	input, err := cli.ParseHookInput(os.Stdin)
	if err != nil {
		return "", "", err
	}
	if matcher.IsToolIdentifier(input.ToolName) {
		return "", input.ToolName, nil
	}
	return input.ToolInput.Command, "", nil
}
