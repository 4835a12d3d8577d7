// Command truffula prints a colorized directory tree.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/kylesnowschwartz/truffula/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()
	rootCmd.SetArgs(cli.NormalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
