package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/remapc/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScriptPath string // script file or directory
	OutputPath string // empty means the App's output writer

	Indent    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it. Empty enumerated fields
// take their default from config.DefaultSettings.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}

	defaults := config.DefaultSettings()
	if cfg.Indent == "" {
		cfg.Indent = defaults.Indent
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaults.LogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	if err := oneOf("indent", cfg.Indent, config.IndentModes); err != nil {
		return nil, err
	}
	if err := oneOf("log-format", cfg.LogFormat, config.LogFormats); err != nil {
		return nil, err
	}
	if err := oneOf("log-level", cfg.LogLevel, config.LogLevels); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func oneOf(field, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", field, value, strings.Join(allowed, ", "))
}
