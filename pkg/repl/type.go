package repl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exprlab/stepwise/internal/diagnostics"
	"github.com/exprlab/stepwise/internal/infer"
)

var typeCmd = &cobra.Command{
	Use:   "type <file>",
	Short: `Infer and print the type of <file>'s main expression`,
	Long: `type builds a type environment over every top-level definition in
<file> (as one mutually-recursive group), then infers the principal type
of its zero-argument "main" clause, printing the canonical (alpha-renamed)
result. On failure it prints the type error in place of the type and
returns that error.`,
	Args: cobra.ExactArgs(1),
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
}

func runType(cmd *cobra.Command, args []string) error {
	log, err := diagnostics.New(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}
	start, err := mainExpr(prog)
	if err != nil {
		return err
	}

	fresh := infer.NewFresher()
	env, err := infer.BuildTypeEnv(baseTypeEnv(), prog.defs, fresh)
	if err != nil {
		log.TypeError(args[0], err)
		return err
	}

	t, err := infer.Infer(env, start)
	if err != nil {
		log.TypeError(args[0], err)
		fmt.Fprintf(cmd.OutOrStdout(), "main :: <type error: %v>\n", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "main :: %s\n", t.String())
	return nil
}
