// Command stepwise is the CLI front end for the interactive stepper and
// type inferencer implemented by this module (spec.md, all sections).
package main

import (
	"fmt"
	"os"

	"github.com/exprlab/stepwise/pkg/repl"
)

func main() {
	if err := repl.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
