package evaluator

import "github.com/exprlab/stepwise/internal/ast"

func stringSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func cloneSet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, v := range append(append([]string{}, a...), b...) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// FreeVariables returns the real free-variable set of e: the names that
// appear in Atom(Name _) and are not bound by an enclosing Lambda, LetExpr
// or list-comprehension qualifier within e. This is the corrected version
// of the free-variable computation the source language's reference
// implementation leaves stubbed out as the empty list (spec.md §9
// "Name capture / free-variables bug" — a known latent bug the
// specification asks to be fixed here, not reproduced).
func FreeVariables(e ast.Expr) []string {
	return freeVars(e, map[string]bool{})
}

func freeVars(e ast.Expr, bound map[string]bool) []string {
	switch x := e.(type) {
	case *ast.AtomExpr:
		if x.Value.Kind == ast.AName && !bound[x.Value.Name] {
			return []string{x.Value.Name}
		}
		return nil

	case *ast.Lambda:
		inner := cloneSet(bound)
		for _, p := range x.Params {
			for _, v := range ast.Vars(p) {
				inner[v] = true
			}
		}
		return freeVars(x.Body, inner)

	case *ast.LetExpr:
		inner := cloneSet(bound)
		for _, b := range x.Bindings {
			for _, v := range ast.Vars(b.Pattern) {
				inner[v] = true
			}
		}
		var out []string
		for _, b := range x.Bindings {
			out = unionStrings(out, freeVars(b.Value, inner))
		}
		out = unionStrings(out, freeVars(x.Body, inner))
		return out

	case *ast.ListComp:
		inner := cloneSet(bound)
		var out []string
		for _, q := range x.Quals {
			out = unionStrings(out, freeVars(q.Expr, inner))
			switch q.Kind {
			case ast.QGen, ast.QLet:
				for _, v := range ast.Vars(q.Binding) {
					inner[v] = true
				}
			}
		}
		out = unionStrings(out, freeVars(x.Head, inner))
		return out

	default:
		var out []string
		for _, c := range e.Children() {
			out = unionStrings(out, freeVars(c, bound))
		}
		return out
	}
}
