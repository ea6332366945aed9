// Package binding implements the pattern/binding engine (C3): matching a
// binding pattern against an expression, used by the evaluator to select
// clauses and by the inferencer to derive a type-variable environment from
// a pattern (spec.md §4.3).
package binding

import "github.com/exprlab/stepwise/internal/ast"

// IsWHNF reports whether e is in weak head normal form: its outermost
// constructor is a data constructor, lambda, atom, list, or tuple — not a
// further reducible Binary/App/Atom(Name _)/IfExpr/ArithmSeq (GLOSSARY).
func IsWHNF(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.AtomExpr:
		return x.Value.Kind != ast.AName
	case *ast.ListExpr, *ast.NTupleExpr, *ast.Lambda, *ast.PrefixOpExpr,
		*ast.SectLExpr, *ast.SectRExpr:
		return true
	case *ast.App:
		return isConstrHead(x.Head)
	default:
		return false
	}
}

func isConstrHead(e ast.Expr) bool {
	switch h := e.(type) {
	case *ast.AtomExpr:
		return h.Value.Kind == ast.AConstr
	case *ast.App:
		return isConstrHead(h.Head)
	}
	return false
}
