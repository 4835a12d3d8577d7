//go:build !windows

package render

// LineSeparator terminates every line a Printer writes.
const LineSeparator = "\n"
