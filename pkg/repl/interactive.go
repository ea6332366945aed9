package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/config"
	"github.com/exprlab/stepwise/internal/evaluator"
	"github.com/exprlab/stepwise/internal/infer"
	"github.com/exprlab/stepwise/internal/persist"
)

// runInteractive is the bare read-eval-print loop entered when stepwise is
// invoked with no subcommand on a terminal. It prompts for a file to load,
// then accepts "step <path>", "run", "type", "save" and "quit" (or "exit")
// commands against the current expression. A saved session is not loaded
// back from this loop.
func runInteractive(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(os.Stdin)

	fmt.Fprint(out, "file> ")
	if !in.Scan() {
		return nil
	}
	file := strings.TrimSpace(in.Text())
	prog, err := loadProgram(file)
	if err != nil {
		return err
	}
	cur, err := mainExpr(prog)
	if err != nil {
		return err
	}
	sess := persist.NewSession(file, cur.String())
	settings := config.DefaultSettings()

	fmt.Fprintln(out, cur.String())
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return nil
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return nil

		case "step":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: step <path>")
				continue
			}
			path, err := evaluator.ParsePath(fields[1])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			next, err := evaluator.Step(prog.env, path, cur)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			cur = next
			sess.RecordStep(fields[1])
			fmt.Fprintln(out, cur.String())

		case "run":
			next, err := evaluator.EvalAll(prog.env, cur)
			cur = next
			fmt.Fprintln(out, cur.String())
			if err != nil {
				fmt.Fprintln(out, err)
			}

		case "type":
			printInteractiveType(out, prog, cur)

		case "save":
			path, err := persist.SaveSession(settings.SessionDir, sess)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintln(out, "saved to", path)

		default:
			fmt.Fprintln(out, "unknown command:", fields[0])
		}
	}
}

func printInteractiveType(out io.Writer, prog *program, cur ast.Expr) {
	fresh := infer.NewFresher()
	env, err := infer.BuildTypeEnv(baseTypeEnv(), prog.defs, fresh)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	t, err := infer.Infer(env, cur)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintln(out, t.String())
}
