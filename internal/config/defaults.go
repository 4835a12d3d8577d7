// Package config resolves truffula settings from defaults, a YAML config
// file and command-line flags, and validates the tree root.
package config

// Default global values.
const (
	DefaultShowHidden = false
	DefaultColorMode  = ColorAlways
	DefaultDepth      = 0 // unlimited
	DefaultLogLevel   = "warn"
	DefaultConfigFile = ".truffula.yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"   // color when writing to a terminal
	ColorAlways = "always" // always color
	ColorNever  = "never"  // never color
)

// ValidColorModes is the canonical list of accepted color modes.
var ValidColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// ValidLogLevels lists the accepted log levels, most verbose first.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultSettings returns the hardcoded global defaults.
func DefaultSettings() Settings {
	return Settings{
		ShowHidden: DefaultShowHidden,
		Color:      DefaultColorMode,
		Depth:      DefaultDepth,
		LogLevel:   DefaultLogLevel,
	}
}

// DefaultFileConfig returns a FileConfig with every field set, suitable
// for writing out as a starting template.
func DefaultFileConfig() FileConfig {
	return FromSettings(DefaultSettings())
}

// FromSettings returns a FileConfig with every field set from s.
func FromSettings(s Settings) FileConfig {
	return FileConfig{
		ShowHidden: &s.ShowHidden,
		Color:      &s.Color,
		Depth:      &s.Depth,
		LogLevel:   &s.LogLevel,
	}
}

// IsValidColorMode returns true if mode is a recognized color mode.
func IsValidColorMode(mode string) bool {
	return contains(ValidColorModes, mode)
}

// IsValidLogLevel returns true if level is a recognized log level.
func IsValidLogLevel(level string) bool {
	return contains(ValidLogLevels, level)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
