package infer

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

// CheckEnumerable walks an already-typed tree and rejects any arithmetic
// sequence whose element type resolved to something other than one of the
// closed enumerable base types (spec.md §3 invariants, §4.6). A still-free
// type variable is left alone — the sequence is polymorphic and may yet be
// instantiated to an enumerable type by its caller.
func CheckEnumerable(e ast.Expr) error {
	if seq, ok := e.(*ast.ArithmSeq); ok {
		if t := seq.Start.Meta().Type; t != nil {
			if _, isVar := t.(typesystem.Var); !isVar && !typesystem.IsEnumerable(t) {
				return &typesystem.NoInstanceOfEnumError{Type: t}
			}
		}
	}
	for _, c := range e.Children() {
		if err := CheckEnumerable(c); err != nil {
			return err
		}
	}
	return nil
}
