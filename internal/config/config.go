package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the YAML config file. All fields are pointers to
// distinguish "not set" from "set to zero".
type FileConfig struct {
	ShowHidden *bool   `yaml:"show_hidden,omitempty"`
	Color      *string `yaml:"color,omitempty"`
	Depth      *int    `yaml:"depth,omitempty"`
	LogLevel   *string `yaml:"log_level,omitempty"`
}

// Settings holds the final resolved values.
type Settings struct {
	ShowHidden bool
	Color      string
	Depth      int
	LogLevel   string
}

// Load reads and parses a config file from the given path.
// Returns nil config (not error) if path is empty.
func Load(path string) (*FileConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOptional is Load, except a missing file yields a nil config.
func LoadOptional(path string) (*FileConfig, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return cfg, err
}

// Resolve combines defaults, the config file and CLI flags.
// Precedence: defaults < config file < CLI flags.
func (c *FileConfig) Resolve(cliFlags *FileConfig) Settings {
	result := DefaultSettings()

	if c != nil {
		result = mergeConfig(result, *c)
	}
	if cliFlags != nil {
		result = mergeConfig(result, *cliFlags)
	}

	return result
}

// Resolve without a config file - uses only defaults and CLI flags.
func Resolve(cliFlags *FileConfig) Settings {
	var nilConfig *FileConfig
	return nilConfig.Resolve(cliFlags)
}

// Marshal renders c as YAML.
func (c FileConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *FileConfig) validate() error {
	if c.Color != nil && !IsValidColorMode(*c.Color) {
		return fmt.Errorf("unknown color mode %q (valid: %s)", *c.Color, strings.Join(ValidColorModes, ", "))
	}
	if c.LogLevel != nil && !IsValidLogLevel(*c.LogLevel) {
		return fmt.Errorf("unknown log level %q (valid: %s)", *c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
	if c.Depth != nil && *c.Depth < 0 {
		return fmt.Errorf("depth must be >= 0, got %d", *c.Depth)
	}
	return nil
}

// mergeConfig overlays src onto base, only replacing non-nil values.
func mergeConfig(base Settings, src FileConfig) Settings {
	if src.ShowHidden != nil {
		base.ShowHidden = *src.ShowHidden
	}
	if src.Color != nil {
		base.Color = *src.Color
	}
	if src.Depth != nil {
		base.Depth = *src.Depth
	}
	if src.LogLevel != nil {
		base.LogLevel = *src.LogLevel
	}
	return base
}
