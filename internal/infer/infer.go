package infer

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

// Infer types e under env in one pass: generate constraints, solve them,
// and on success decorate every node of e with its solved type. On any
// failure — an unbound name, a constructor arity mismatch, a unification
// conflict — it falls back to TypeTreePartial so the caller still gets a
// best-effort typed tree instead of nothing, and returns the error that
// defeated the full inference (spec.md §4.6).
func Infer(env typesystem.TypeEnv, e ast.Expr) (typesystem.Type, error) {
	fresh := NewFresher()
	t, cs, err := Generate(env, fresh, e)
	if err != nil {
		TypeTreePartial(env, NewFresher(), e)
		return nil, err
	}
	s, err := Solve(cs)
	if err != nil {
		TypeTreePartial(env, NewFresher(), e)
		return nil, err
	}
	ApplySubstToTree(s, e)
	if err := CheckEnumerable(e); err != nil {
		return nil, err
	}
	return Canonicalize(t.Apply(s)), nil
}
