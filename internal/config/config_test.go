package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty", cfg.LogDir)
	}
	if cfg.Sort != "p" {
		t.Errorf("Sort = %q, want %q", cfg.Sort, "p")
	}
	if cfg.Display.Mode != "table" {
		t.Errorf("Display.Mode = %q, want table", cfg.Display.Mode)
	}
	if cfg.Display.FallbackWidth != 79 {
		t.Errorf("Display.FallbackWidth = %d, want 79", cfg.Display.FallbackWidth)
	}
	if cfg.Execute.FailOnExitCode {
		t.Error("Execute.FailOnExitCode should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, configPath, `log_level: debug
log_dir: /tmp/logs
sort: s-m
display:
  mode: tab
  concise: true
  group: true
  shared_headers: true
  width: 120
  fallback_width: 100
execute:
  dry_run: true
  show_source: true
  fail_on_exit_code: true
`)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/logs", cfg.LogDir)
	assert.Equal(t, "s-m", cfg.Sort)
	assert.Equal(t, DisplayConfig{
		Mode:          "tab",
		Concise:       true,
		Group:         true,
		SharedHeaders: true,
		Width:         120,
		FallbackWidth: 100,
	}, cfg.Display)
	assert.Equal(t, ExecuteConfig{DryRun: true, ShowSource: true, FailOnExitCode: true}, cfg.Execute)
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, configPath, "display:\n  concise: true\n")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.Display.Concise)
	assert.Equal(t, "table", cfg.Display.Mode)
	assert.Equal(t, 79, cfg.Display.FallbackWidth)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, configPath, "")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "log_level: [unclosed"},
		{"unknown key", "max_concurrency: 4\n"},
		{"wrong type", "display:\n  width: wide\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			writeConfig(t, configPath, tt.content)

			_, err := LoadConfig(configPath)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), "failed to parse config file"), err.Error())
		})
	}
}

func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ".findfiles", "config.yaml"), "sort: -m\n")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "-m", cfg.Sort)
}

func TestMergeFileLayers(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.yaml")
	project := filepath.Join(dir, "project.yaml")
	writeConfig(t, user, "sort: n\ndisplay:\n  mode: tab\n  concise: true\n")
	writeConfig(t, project, "display:\n  concise: false\n")

	cfg := DefaultConfig()
	require.NoError(t, cfg.MergeFile(user))
	require.NoError(t, cfg.MergeFile(project))

	assert.Equal(t, "n", cfg.Sort)
	assert.Equal(t, "tab", cfg.Display.Mode)
	assert.False(t, cfg.Display.Concise, "an explicit false overrides an earlier true")
}

// TestMergeWithFlags verifies only explicitly set flags override configuration
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sort = "s"
	cfg.Display.Concise = true

	mode := "bare"
	concise := false
	width := 90

	cfg.MergeWithFlags(FlagOverrides{Mode: &mode, Concise: &concise, Width: &width})

	assert.Equal(t, "s", cfg.Sort)
	assert.Equal(t, "bare", cfg.Display.Mode)
	assert.False(t, cfg.Display.Concise)
	assert.Equal(t, 90, cfg.Display.Width)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"bad mode", func(c *Config) { c.Display.Mode = "csv" }, "invalid display.mode"},
		{"negative width", func(c *Config) { c.Display.Width = -1 }, "display.width"},
		{"zero fallback", func(c *Config) { c.Display.FallbackWidth = 0 }, "display.fallback_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateNormalizesLogLevel(t *testing.T) {
	for _, level := range []string{"DEBUG", "Warn", " info "} {
		cfg := DefaultConfig()
		cfg.LogLevel = level
		require.NoError(t, cfg.Validate(), level)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(level)), cfg.LogLevel)
	}
}
