package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the settings file
// path when --config is not given.
const EnvConfigPath = "REMAPC_CONFIG"

// Accepted setting values.
var (
	LogLevels   = []string{"debug", "info", "warn", "error"}
	LogFormats  = []string{"text", "json"}
	IndentModes = []string{"auto", "always", "never"}
)

// Settings are the user defaults read from a settings file. Explicit
// command-line flags take precedence over them.
type Settings struct {
	LogLevel  string `yaml:"log_level" toml:"log_level"`
	LogFormat string `yaml:"log_format" toml:"log_format"`
	Indent    string `yaml:"indent" toml:"indent"`
	Output    string `yaml:"output" toml:"output"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "warn",
		LogFormat: "text",
		Indent:    "auto",
	}
}

// LoadSettings reads a YAML (.yaml, .yml) or TOML (.toml) settings file on
// top of the defaults. Unknown keys are rejected.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return s, fmt.Errorf("failed to parse settings file %s: unknown key %q", path, undecoded[0].String())
		}
	default:
		return s, fmt.Errorf("unsupported settings file extension %q (want .yaml, .yml or .toml)", ext)
	}

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return s, nil
}

// Validate checks every enumerated setting.
func (s Settings) Validate() error {
	var errs []error
	if !slices.Contains(LogLevels, s.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of %s, got %q", strings.Join(LogLevels, "|"), s.LogLevel))
	}
	if !slices.Contains(LogFormats, s.LogFormat) {
		errs = append(errs, fmt.Errorf("log_format must be one of %s, got %q", strings.Join(LogFormats, "|"), s.LogFormat))
	}
	if !slices.Contains(IndentModes, s.Indent) {
		errs = append(errs, fmt.Errorf("indent must be one of %s, got %q", strings.Join(IndentModes, "|"), s.Indent))
	}
	return errors.Join(errs...)
}
