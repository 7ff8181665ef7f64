package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DisplayConfig controls how search results are printed
type DisplayConfig struct {
	// Mode is the row layout: table, tab or bare
	Mode string `yaml:"mode"`

	// Concise suppresses headers and the summary footer
	Concise bool `yaml:"concise"`

	// Group partitions results by containing directory
	Group bool `yaml:"group"`

	// SharedHeaders prints one header for grouped output instead of one per directory
	SharedHeaders bool `yaml:"shared_headers"`

	// Width fixes the table width in columns (0 = detect from the terminal)
	Width int `yaml:"width"`

	// FallbackWidth is used when the output is not a terminal
	FallbackWidth int `yaml:"fallback_width"`
}

// ExecuteConfig controls command execution
type ExecuteConfig struct {
	// DryRun prints commands instead of running them
	DryRun bool `yaml:"dry_run"`

	// ShowSource prefixes dry-run lines with the source file
	ShowSource bool `yaml:"show_source"`

	// FailOnExitCode treats a non-zero child exit status as a failure
	FailOnExitCode bool `yaml:"fail_on_exit_code"`
}

// Config represents findfiles configuration options
type Config struct {
	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables a per-run log file in this directory when set
	LogDir string `yaml:"log_dir"`

	// Sort is the default sort key string, e.g. "s-m"
	Sort string `yaml:"sort"`

	Display DisplayConfig `yaml:"display"`
	Execute ExecuteConfig `yaml:"execute"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		LogDir:   "",
		Sort:     "p",
		Display: DisplayConfig{
			Mode:          "table",
			Width:         0, // Detect
			FallbackWidth: 79,
		},
	}
}

// fileConfig mirrors Config with pointer fields so that keys absent from a
// file can be told apart from keys set to their zero value.
type fileConfig struct {
	LogLevel *string `yaml:"log_level"`
	LogDir   *string `yaml:"log_dir"`
	Sort     *string `yaml:"sort"`

	Display *struct {
		Mode          *string `yaml:"mode"`
		Concise       *bool   `yaml:"concise"`
		Group         *bool   `yaml:"group"`
		SharedHeaders *bool   `yaml:"shared_headers"`
		Width         *int    `yaml:"width"`
		FallbackWidth *int    `yaml:"fallback_width"`
	} `yaml:"display"`

	Execute *struct {
		DryRun         *bool `yaml:"dry_run"`
		ShowSource     *bool `yaml:"show_source"`
		FailOnExitCode *bool `yaml:"fail_on_exit_code"`
	} `yaml:"execute"`
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.MergeFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFromDir loads configuration from .findfiles/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(ProjectConfigPath(dir))
}

// ProjectConfigPath returns the project configuration file path for dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ".findfiles", "config.yaml")
}

// MergeFile overlays the keys present in the YAML file at path onto c.
// A missing file leaves c untouched. Unknown keys are rejected.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.apply(fc)
	return nil
}

func (c *Config) apply(fc fileConfig) {
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogDir, fc.LogDir)
	setString(&c.Sort, fc.Sort)

	if d := fc.Display; d != nil {
		setString(&c.Display.Mode, d.Mode)
		setBool(&c.Display.Concise, d.Concise)
		setBool(&c.Display.Group, d.Group)
		setBool(&c.Display.SharedHeaders, d.SharedHeaders)
		setInt(&c.Display.Width, d.Width)
		setInt(&c.Display.FallbackWidth, d.FallbackWidth)
	}

	if e := fc.Execute; e != nil {
		setBool(&c.Execute.DryRun, e.DryRun)
		setBool(&c.Execute.ShowSource, e.ShowSource)
		setBool(&c.Execute.FailOnExitCode, e.FailOnExitCode)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// FlagOverrides holds the command-line flags that were explicitly set.
// Nil fields leave the configuration value unchanged.
type FlagOverrides struct {
	LogLevel       *string
	LogDir         *string
	Sort           *string
	Mode           *string
	Concise        *bool
	Group          *bool
	SharedHeaders  *bool
	Width          *int
	DryRun         *bool
	ShowSource     *bool
	FailOnExitCode *bool
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(f FlagOverrides) {
	setString(&c.LogLevel, f.LogLevel)
	setString(&c.LogDir, f.LogDir)
	setString(&c.Sort, f.Sort)
	setString(&c.Display.Mode, f.Mode)
	setBool(&c.Display.Concise, f.Concise)
	setBool(&c.Display.Group, f.Group)
	setBool(&c.Display.SharedHeaders, f.SharedHeaders)
	setInt(&c.Display.Width, f.Width)
	setBool(&c.Execute.DryRun, f.DryRun)
	setBool(&c.Execute.ShowSource, f.ShowSource)
	setBool(&c.Execute.FailOnExitCode, f.FailOnExitCode)
}

// Validate validates the configuration values and normalizes the log
// level to lowercase. Returns an error if any values are invalid
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Display.Mode {
	case "table", "tab", "bare":
	default:
		return fmt.Errorf("invalid display.mode %q, must be one of: table, tab, bare", c.Display.Mode)
	}

	if c.Display.Width < 0 {
		return fmt.Errorf("display.width must be >= 0, got %d", c.Display.Width)
	}
	if c.Display.FallbackWidth <= 0 {
		return fmt.Errorf("display.fallback_width must be > 0, got %d", c.Display.FallbackWidth)
	}

	return nil
}
