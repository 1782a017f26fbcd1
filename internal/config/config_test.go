package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgate/cmdgate/internal/gatetypes"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Config
		wantErr error
	}{
		{
			name: "full rules file",
			content: `
version = 1
log_level = "debug"

[rules]
allow = ["Bash(npm test:*)", "Bash(git status)"]
deny = ["Bash(git push:*)"]
`,
			want: &Config{
				Version:  1,
				LogLevel: gatetypes.LogLevelDebug,
				Rules: RulesSection{
					Allow: []string{"Bash(npm test:*)", "Bash(git status)"},
					Deny:  []string{"Bash(git push:*)"},
				},
			},
		},
		{
			name: "missing version defaults to current",
			content: `
[rules]
allow = ["Bash(ls)"]
`,
			want: &Config{
				Version:  CurrentVersion,
				LogLevel: gatetypes.LogLevelInfo,
				Rules: RulesSection{
					Allow: []string{"Bash(ls)"},
				},
			},
		},
		{
			name:    "empty file is valid and matches nothing",
			content: "",
			want: &Config{
				Version:  CurrentVersion,
				LogLevel: gatetypes.LogLevelInfo,
			},
		},
		{
			name:    "unsupported version is rejected",
			content: "version = 2",
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "invalid log level is rejected",
			content: `log_level = "verbose"`,
		},
		{
			name:    "malformed toml is rejected",
			content: "[rules\nallow = [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load([]byte(tt.content))
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

func TestConfig_RuleSet(t *testing.T) {
	cfg := &Config{
		Rules: RulesSection{
			Allow: []string{"Bash(ls)"},
			Deny:  []string{"Bash(rm:*)"},
		},
	}
	assert.Equal(t, gatetypes.RuleSet{
		Allow: []string{"Bash(ls)"},
		Deny:  []string{"Bash(rm:*)"},
	}, cfg.RuleSet())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[rules]
allow = ["Bash(npm test:*)"]
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bash(npm test:*)"}, cfg.Rules.Allow)

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestResolveRulesPath(t *testing.T) {
	t.Run("explicit path wins without existence check", func(t *testing.T) {
		t.Setenv(EnvRulesPath, "/env/rules.toml")
		path, err := ResolveRulesPath("/explicit/rules.toml", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "/explicit/rules.toml", path)
	})

	t.Run("environment override without existence check", func(t *testing.T) {
		t.Setenv(EnvRulesPath, "/env/rules.toml")
		path, err := ResolveRulesPath("", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "/env/rules.toml", path)
	})

	t.Run("project-local fallback requires the file to exist", func(t *testing.T) {
		t.Setenv(EnvRulesPath, "")
		workDir := t.TempDir()

		_, err := ResolveRulesPath("", workDir)
		assert.ErrorIs(t, err, ErrRulesFileNotFound)

		rulesDir := filepath.Join(workDir, ".claude")
		require.NoError(t, os.MkdirAll(rulesDir, 0o755))
		rulesPath := filepath.Join(rulesDir, "cmdgate-rules.toml")
		require.NoError(t, os.WriteFile(rulesPath, []byte(""), 0o644))

		path, err := ResolveRulesPath("", workDir)
		require.NoError(t, err)
		assert.Equal(t, rulesPath, path)
	})

	t.Run("empty working directory yields not found", func(t *testing.T) {
		t.Setenv(EnvRulesPath, "")
		_, err := ResolveRulesPath("", "")
		assert.ErrorIs(t, err, ErrRulesFileNotFound)
	})
}
