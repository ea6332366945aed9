package repl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exprlab/stepwise/internal/diagnostics"
	"github.com/exprlab/stepwise/internal/evaluator"
)

var stepCmd = &cobra.Command{
	Use:   "step <file> <path>",
	Short: "Perform a single reduction at the given path into the file's main expression",
	Long: `step loads <file>'s definitions, takes its zero-argument "main" clause
as the starting expression, navigates to the sub-expression named by
<path> (a dot-separated sequence of Fst/Snd/Thrd/Nth(i)/End tokens), and
performs exactly one reduction there, printing the resulting whole
expression.`,
	Args: cobra.ExactArgs(2),
	RunE: runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	file, pathArg := args[0], args[1]

	log, err := diagnostics.New(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	prog, err := loadProgram(file)
	if err != nil {
		return err
	}
	start, err := mainExpr(prog)
	if err != nil {
		return err
	}
	path, err := evaluator.ParsePath(pathArg)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", pathArg, err)
	}

	result, err := evaluator.Step(prog.env, path, start)
	if err != nil {
		log.EvalError(pathArg, err)
		return err
	}
	log.Step(pathArg, result.String())
	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
