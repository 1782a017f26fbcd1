// Package config provides loading, discovery and validation of the gate's
// rules file. The rules file is TOML and is loaded fresh on every
// invocation: the lists are small and a stale allowlist is a worse failure
// mode than a repeated read.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/cmdgate/cmdgate/internal/gatetypes"
)

// Error definitions for the config package
var (
	// ErrRulesFileNotFound is returned when no rules file exists at any
	// discovery location.
	ErrRulesFileNotFound = errors.New("rules file not found")

	// ErrUnsupportedVersion is returned when the rules file declares a
	// schema version this build does not understand.
	ErrUnsupportedVersion = errors.New("unsupported rules file version")
)

const (
	// CurrentVersion is the rules file schema version this build reads.
	CurrentVersion = 1

	// EnvRulesPath overrides rules file discovery when set.
	EnvRulesPath = "CMDGATE_RULES_PATH"

	// defaultRulesRelPath is the project-local rules file location,
	// relative to the working directory.
	defaultRulesRelPath = ".claude/cmdgate-rules.toml"
)

// Config is the top-level rules file structure.
type Config struct {
	// Version is the schema version; 0 (absent) is treated as current.
	Version int `toml:"version"`

	// LogLevel selects the gate's log verbosity.
	LogLevel gatetypes.LogLevel `toml:"log_level"`

	// Rules holds the allow and deny pattern lists.
	Rules RulesSection `toml:"rules"`
}

// RulesSection holds the pattern lists. Both lists accept Bash(...) and
// hierarchical tool patterns; each matcher family ignores patterns of the
// other shape.
type RulesSection struct {
	Allow []string `toml:"allow"`
	Deny  []string `toml:"deny"`
}

// RuleSet converts the parsed rules into the evaluation rule set.
func (c *Config) RuleSet() gatetypes.RuleSet {
	return gatetypes.RuleSet{
		Allow: c.Rules.Allow,
		Deny:  c.Rules.Deny,
	}
}

// Load parses and validates rules file content.
func Load(content []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, cfg.Version, CurrentVersion)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = gatetypes.LogLevelInfo
	}

	return &cfg, nil
}

// LoadFile reads and parses the rules file at path.
func LoadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	return Load(content)
}

// ResolveRulesPath determines which rules file to load.
//
// Search order:
//  1. The explicit path (command line flag), if non-empty.
//  2. The CMDGATE_RULES_PATH environment variable, if set.
//  3. The project-local file .claude/cmdgate-rules.toml under workDir.
//
// The explicit path and the environment path are returned without an
// existence check so that a misconfigured override surfaces as a load
// error instead of being silently skipped. The project-local fallback is
// only returned when the file exists.
func ResolveRulesPath(explicit, workDir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if envPath := os.Getenv(EnvRulesPath); envPath != "" {
		return envPath, nil
	}
	if workDir != "" {
		candidate := filepath.Join(workDir, defaultRulesRelPath)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", ErrRulesFileNotFound
}
