package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "FINDFILES"

// envOverrides lists the settings that can be overridden from the
// environment. Empty values leave the configuration unchanged.
// split_words keeps lookups on the prefixed names only.
type envOverrides struct {
	LogLevel string `split_words:"true"`
	LogDir   string `split_words:"true"`
	Sort     string `split_words:"true"`
	Width    int    `split_words:"true"`
}

// ApplyEnv overlays FINDFILES_LOG_LEVEL, FINDFILES_LOG_DIR, FINDFILES_SORT
// and FINDFILES_WIDTH onto c.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}

	if env.LogLevel != "" {
		c.LogLevel = env.LogLevel
	}
	if env.LogDir != "" {
		c.LogDir = env.LogDir
	}
	if env.Sort != "" {
		c.Sort = env.Sort
	}
	if env.Width != 0 {
		c.Display.Width = env.Width
	}

	return nil
}
