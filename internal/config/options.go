package config

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotDirectory is returned when the root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Options is the validated input to a tree render.
type Options struct {
	Root       string
	ShowHidden bool
	UseColor   bool
	// MaxDepth limits how many levels are printed (0 = unlimited).
	MaxDepth int
}

// NewOptions builds Options without touching the filesystem.
func NewOptions(root string, showHidden, useColor bool) Options {
	return Options{Root: root, ShowHidden: showHidden, UseColor: useColor}
}

// New builds Options and checks that root is an existing directory.
func New(root string, showHidden, useColor bool) (Options, error) {
	if err := ValidateRoot(root); err != nil {
		return Options{}, err
	}
	return NewOptions(root, showHidden, useColor), nil
}

// ValidateRoot returns an error unless root names an existing directory.
// Missing paths wrap fs.ErrNotExist.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s: %w", root, ErrNotDirectory)
	}
	return nil
}

// UseColor decides whether output is colored for a color mode.
// terminal reports whether the output is a terminal and is only consulted
// in auto mode.
func UseColor(mode string, terminal func() bool) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto:
		return terminal != nil && terminal(), nil
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
}
