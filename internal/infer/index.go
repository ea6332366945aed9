package infer

import "github.com/exprlab/stepwise/internal/ast"

// Index assigns a pre-order constraint-origin index to every node of e,
// returning the total count (C6). Constraint generation does not currently
// need to look an index back up, but every node carries one so diagnostics
// and external tooling can refer to "the node that produced constraint i"
// without re-walking the tree (spec.md §4.6 "Indexed").
func Index(e ast.Expr) int {
	return indexFrom(e, 0)
}

func indexFrom(e ast.Expr, next int) int {
	m := e.Meta()
	m.Index = next
	m.HasIndex = true
	next++
	for _, c := range e.Children() {
		next = indexFrom(c, next)
	}
	return next
}
