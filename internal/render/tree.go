package render

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/kylesnowschwartz/truffula/internal/config"
	"github.com/kylesnowschwartz/truffula/internal/fsys"
)

// IndentWidth is the number of spaces per depth level.
const IndentWidth = 3

// RootErrorMessage is printed instead of a tree when the root is missing.
const RootErrorMessage = "Error: Path does not exist."

// Logger receives diagnostics about the walk. It never writes to the
// tree output.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Stats counts what a Render call printed.
type Stats struct {
	Dirs   int
	Files  int
	Errors int
}

// TreeRenderer walks a directory depth-first and prints one line per
// visible entry through a Printer.
type TreeRenderer struct {
	opts    config.Options
	lister  fsys.Lister
	printer *Printer
	logger  Logger
	stats   Stats
}

// NewTreeRenderer creates a tree renderer for opts.Root.
func NewTreeRenderer(opts config.Options, lister fsys.Lister, p *Printer) *TreeRenderer {
	return &TreeRenderer{opts: opts, lister: lister, printer: p}
}

// SetLogger routes walk diagnostics to l. A nil logger discards them.
func (r *TreeRenderer) SetLogger(l Logger) {
	r.logger = l
}

// Render prints the tree below the configured root. A missing root prints
// RootErrorMessage and nothing else. Unreadable subdirectories are
// reported inline and the walk continues with their siblings. The only
// returned error is a failure writing to the output.
func (r *TreeRenderer) Render() (Stats, error) {
	r.stats = Stats{}

	root, err := r.lister.Stat(r.opts.Root)
	if err != nil || !root.IsDir {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.warn(fmt.Sprintf("root %s: %v", r.opts.Root, err))
		}
		r.printer.SetColor(ColorNone)
		r.printer.Println(RootErrorMessage)
		return r.stats, r.printer.Err()
	}

	r.debug(fmt.Sprintf("rendering %s (hidden=%t color=%t depth=%d)",
		r.opts.Root, r.opts.ShowHidden, r.opts.UseColor, r.opts.MaxDepth))
	r.renderDir(root.Path, 0)
	r.debug(fmt.Sprintf("rendered %d directories, %d files, %d errors",
		r.stats.Dirs, r.stats.Files, r.stats.Errors))

	return r.stats, r.printer.Err()
}

// renderDir prints the children of dir at depth, recursing into
// subdirectories after printing each one.
func (r *TreeRenderer) renderDir(dir string, depth int) {
	entries, err := r.lister.List(dir)
	if err != nil {
		r.reportError(err, depth)
		return
	}

	for _, entry := range VisibleEntries(entries, r.opts.ShowHidden) {
		if r.printer.Err() != nil {
			return
		}
		r.printEntry(entry, depth)
		if entry.IsDir && r.descend(depth) {
			r.renderDir(entry.Path, depth+1)
		}
	}
}

func (r *TreeRenderer) printEntry(entry fsys.Entry, depth int) {
	name := entry.Name
	if entry.IsDir {
		name += "/"
		r.stats.Dirs++
	} else {
		r.stats.Files++
	}
	r.printer.SetColor(r.colorFor(depth))
	r.printer.Println(Indent(depth) + name)
}

// reportError prints a single diagnostic line where the unreadable
// directory's children would have appeared.
func (r *TreeRenderer) reportError(err error, depth int) {
	r.stats.Errors++
	r.warn(err.Error())
	r.printer.SetColor(r.colorFor(depth))
	r.printer.Println(Indent(depth) + fmt.Sprintf("Error: Cannot read directory (%s)", errorReason(err)))
}

// descend reports whether children of a directory at depth are walked.
func (r *TreeRenderer) descend(depth int) bool {
	return r.opts.MaxDepth <= 0 || depth+1 < r.opts.MaxDepth
}

// colorFor returns the palette color for depth, or ColorNone when color
// is disabled.
func (r *TreeRenderer) colorFor(depth int) Color {
	if !r.opts.UseColor {
		return ColorNone
	}
	return ColorForDepth(depth)
}

func (r *TreeRenderer) debug(msg string) {
	if r.logger != nil {
		r.logger.LogDebug(msg)
	}
}

func (r *TreeRenderer) warn(msg string) {
	if r.logger != nil {
		r.logger.LogWarn(msg)
	}
}

// Indent returns the leading whitespace for an entry at depth.
func Indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", IndentWidth*depth)
}

// errorReason strips the operation and path from filesystem errors so the
// inline line stays short, e.g. "permission denied".
func errorReason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
