// Package repl wires the cobra command tree exposed by cmd/stepwise: a
// single-step "step", a run-to-fixpoint "run", and a type-check "type"
// subcommand, plus an interactive loop when no subcommand is given on a
// terminal (spec.md §6 "Host-facing API").
package repl

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/exprlab/stepwise/internal/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "stepwise",
	Short:   "An interactive stepper and type inferencer for a small lazy expression language",
	Version: config.Version,
	Long: `stepwise loads a program of function definitions and a starting
expression, and lets you drive its evaluation one reduction at a time by
navigating to a sub-expression and requesting the next step — rather than
running straight to a final value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && isatty.IsTerminal(os.Stdout.Fd()) {
			return runInteractive(cmd, args)
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level structured logging")
}

// Execute runs the root command; it is the sole entry point cmd/stepwise
// calls.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
