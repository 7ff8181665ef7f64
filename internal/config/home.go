package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetHome returns the findfiles home directory holding the user config.
// Priority order:
//  1. FINDFILES_HOME environment variable (if set)
//  2. <user config dir>/findfiles (e.g. ~/.config/findfiles)
//
// The directory is not created; a missing home simply has no config.
func GetHome() (string, error) {
	if home := os.Getenv("FINDFILES_HOME"); home != "" {
		return home, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}

	return filepath.Join(configDir, "findfiles"), nil
}

// UserConfigPath returns the path of the user configuration file.
func UserConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// LoadUserConfig returns the defaults overlaid with the user configuration
// file, if there is one.
func LoadUserConfig() (*Config, error) {
	path, err := UserConfigPath()
	if err != nil {
		// No resolvable home: run with defaults
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Load builds the configuration for a search rooted at projectDir.
// Layers are applied in order: defaults, user config, project config (or
// explicitPath when set), then FINDFILES_* environment variables. Command
// line flags are merged by the caller afterwards.
func Load(projectDir, explicitPath string) (*Config, error) {
	cfg, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	projectPath := explicitPath
	if projectPath == "" {
		projectPath = ProjectConfigPath(projectDir)
	} else if _, statErr := os.Stat(projectPath); statErr != nil {
		return nil, fmt.Errorf("config file %s: %w", projectPath, statErr)
	}

	if err := cfg.MergeFile(projectPath); err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}
