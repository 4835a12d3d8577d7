// Package render prints colorized directory trees.
package render

import (
	"fmt"

	"github.com/fatih/color"
)

// Color selects the escape sequence a Printer writes before each span.
type Color uint8

const (
	// ColorDefault is the zero value. It prints as ColorWhite.
	ColorDefault Color = iota
	// ColorNone prints text verbatim with no escape codes and no reset.
	ColorNone
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
	ColorWhite
)

// Reset clears all SGR attributes.
var Reset = fmt.Sprintf("\033[%dm", color.Reset)

var foregrounds = map[Color]color.Attribute{
	ColorBlack:  color.FgBlack,
	ColorRed:    color.FgRed,
	ColorGreen:  color.FgGreen,
	ColorYellow: color.FgYellow,
	ColorBlue:   color.FgBlue,
	ColorPurple: color.FgMagenta,
	ColorCyan:   color.FgCyan,
	ColorWhite:  color.FgWhite,
}

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorNone:    "none",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorPurple:  "purple",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// Palette is cycled by depth: depth 0 is Palette[0], depth 3 wraps back.
var Palette = [3]Color{ColorWhite, ColorPurple, ColorYellow}

// ColorForDepth returns the palette color for entries at depth.
func ColorForDepth(depth int) Color {
	i := depth % len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return Palette[i]
}

// Code returns the escape sequence for c, e.g. "\033[0;37m".
// ColorNone has no code.
func (c Color) Code() string {
	if c == ColorNone {
		return ""
	}
	if c == ColorDefault {
		c = ColorWhite
	}
	fg, ok := foregrounds[c]
	if !ok {
		return ""
	}
	return fmt.Sprintf("\033[%d;%dm", color.Reset, fg)
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}
