package ast

import "fmt"

// Print renders any expression, binding or type to a short diagnostic
// string. It exists only to give error messages and the CLI (pkg/repl) a
// single entry point; there is no pretty-printer beyond this (spec.md §1).
func Print(x fmt.Stringer) string {
	if x == nil {
		return "<nil>"
	}
	return x.String()
}
