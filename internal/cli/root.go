// Package cli wires flags, config and the tree renderer into the
// truffula command.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/kylesnowschwartz/truffula/internal/config"
	"github.com/kylesnowschwartz/truffula/internal/fsys"
	"github.com/kylesnowschwartz/truffula/internal/logger"
	"github.com/kylesnowschwartz/truffula/internal/render"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// legacyFlags maps the classic single-dash spellings to their long flags.
// pflag would otherwise read "-nc" as "-n -c".
var legacyFlags = map[string]string{
	"-h":  "--show-hidden",
	"-nc": "--no-color",
}

type rootFlags struct {
	showHidden  bool
	noColor     bool
	color       string
	depth       int
	configPath  string
	verbose     bool
	logLevel    string
	printConfig bool
}

// NewRootCommand creates the truffula command. Callers should pass
// arguments through NormalizeArgs before SetArgs.
func NewRootCommand() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "truffula [flags] [root]",
		Short: "Print a colorized directory tree",
		Long: `Truffula prints the contents of a directory as an indented tree.

Entries are sorted case-insensitively with directories and files
interleaved. Each depth level is drawn in the next color of a
white, purple, yellow cycle, and directories end with "/".

Examples:
  truffula                  Current directory
  truffula -h ~/projects    Include hidden entries
  truffula ~/projects -nc   Disable color
  truffula --depth 2 .      Print two levels`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args, f)
		},
	}

	flags := cmd.Flags()
	// Claim --help without a shorthand so -h stays free for hidden entries.
	flags.Bool("help", false, "help for truffula")
	flags.BoolVar(&f.showHidden, "show-hidden", false, "Show hidden entries (also -h)")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable color output (also -nc)")
	flags.StringVar(&f.color, "color", "", "Color mode: "+strings.Join(config.ValidColorModes, ", "))
	flags.IntVar(&f.depth, "depth", config.DefaultDepth, "Max depth to print (0=unlimited)")
	flags.StringVar(&f.configPath, "config", "", "Config file (default "+config.DefaultConfigFile+" if present)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level: "+strings.Join(config.ValidLogLevels, ", "))
	flags.BoolVar(&f.printConfig, "print-config", false, "Print the resolved settings as YAML and exit")

	return cmd
}

// NormalizeArgs rewrites legacy single-dash flags to their long form.
// Arguments after "--" are left untouched.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if long, ok := legacyFlags[arg]; ok {
			arg = long
		}
		out = append(out, arg)
	}
	return out
}

func runTree(cmd *cobra.Command, args []string, f *rootFlags) error {
	settings, err := resolveSettings(cmd.Flags(), f)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	if f.printConfig {
		data, err := config.FromSettings(settings).Marshal()
		if err != nil {
			return fmt.Errorf("encoding settings: %w", err)
		}
		_, err = stdout.Write(data)
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	useColor, err := config.UseColor(settings.Color, func() bool {
		return !color.NoColor && isTerminal(stdout)
	})
	if err != nil {
		return err
	}

	opts, err := config.New(root, settings.ShowHidden, useColor)
	if err != nil {
		return err
	}
	opts.MaxDepth = settings.Depth

	stderr := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(stderr, settings.LogLevel, !color.NoColor && isTerminal(stderr))

	r := render.NewTreeRenderer(opts, fsys.NewOS(), render.NewPrinter(stdout))
	r.SetLogger(log)
	if _, err := r.Render(); err != nil {
		return fmt.Errorf("writing tree: %w", err)
	}
	return nil
}

// resolveSettings applies defaults < config file < flags. Only flags set
// on the command line override the config file.
func resolveSettings(flags *pflag.FlagSet, f *rootFlags) (config.Settings, error) {
	var fileCfg *config.FileConfig
	var err error
	if f.configPath != "" {
		fileCfg, err = config.Load(f.configPath)
	} else {
		fileCfg, err = config.LoadOptional(config.DefaultConfigFile)
	}
	if err != nil {
		return config.Settings{}, err
	}

	cli := &config.FileConfig{}
	if flags.Changed("show-hidden") {
		cli.ShowHidden = &f.showHidden
	}
	if flags.Changed("color") {
		if !config.IsValidColorMode(f.color) {
			return config.Settings{}, fmt.Errorf("unknown color mode %q (valid: %s)",
				f.color, strings.Join(config.ValidColorModes, ", "))
		}
		cli.Color = &f.color
	}
	if f.noColor {
		never := config.ColorNever
		cli.Color = &never
	}
	if flags.Changed("depth") {
		if f.depth < 0 {
			return config.Settings{}, fmt.Errorf("depth must be >= 0, got %d", f.depth)
		}
		cli.Depth = &f.depth
	}
	if flags.Changed("log-level") {
		if !config.IsValidLogLevel(f.logLevel) {
			return config.Settings{}, fmt.Errorf("unknown log level %q (valid: %s)",
				f.logLevel, strings.Join(config.ValidLogLevels, ", "))
		}
		cli.LogLevel = &f.logLevel
	}
	if f.verbose {
		debug := "debug"
		cli.LogLevel = &debug
	}

	return fileCfg.Resolve(cli), nil
}

// isTerminal reports whether w is a terminal, including Cygwin and MSYS
// pseudo terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
