package repl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exprlab/stepwise/internal/config"
	"github.com/exprlab/stepwise/internal/diagnostics"
	"github.com/exprlab/stepwise/internal/evaluator"
)

var maxSteps int

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: `Reduce <file>'s main expression to weak head normal form`,
	Long: `run loads <file>'s definitions, takes its zero-argument "main" clause,
and repeatedly calls EvalAll until the tree reaches a fixpoint (no further
reduction is possible anywhere), printing the final expression. Errors
encountered along the way are reported but do not necessarily stop
unrelated subtrees from normalizing (spec.md §4.4 "EvalAll").`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "give up after this many EvalAll passes")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
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

	cur := start
	var lastErr error
	for i := 0; i < maxSteps; i++ {
		next, evalErr := evaluator.EvalAll(prog.env, cur)
		converged := next.String() == cur.String()
		cur = next
		if evalErr != nil {
			log.EvalError("", evalErr)
			lastErr = evalErr
			break
		}
		if converged {
			break
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), cur.String())
	return lastErr
}
