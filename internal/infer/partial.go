package infer

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

// ApplySubstToTree refines every node's Meta.Type (set by Generate's side
// effect) with the substitution a successful Solve produced, so the tree's
// Typed state reflects the globally-solved type rather than each node's
// local, possibly-more-general pre-solve type.
func ApplySubstToTree(s typesystem.Subst, e ast.Expr) {
	m := e.Meta()
	if m.Type != nil {
		m.Type = m.Type.Apply(s)
	}
	for _, c := range e.Children() {
		ApplySubstToTree(s, c)
	}
}

// childEnvs returns the environment each of e's children should be
// generated under, in the same order Children() lists them. Only the
// binder node kinds (Lambda, LetExpr, ListComp) extend the environment
// partway through; every other node types all of its children under the
// same env it received.
func childEnvs(env typesystem.TypeEnv, fresh *Fresher, e ast.Expr) []typesystem.TypeEnv {
	switch x := e.(type) {
	case *ast.Lambda:
		cur := env
		for _, p := range x.Params {
			if bindings, _, err := ExtractBinding(cur, p, fresh.FreshVar(), fresh); err == nil {
				cur = cur.ExtendMany(bindings)
			}
		}
		return []typesystem.TypeEnv{cur}

	case *ast.LetExpr:
		cur := env
		envs := make([]typesystem.TypeEnv, 0, len(x.Bindings)+1)
		for _, b := range x.Bindings {
			envs = append(envs, cur)
			if bindings, _, err := ExtractBinding(cur, b.Pattern, fresh.FreshVar(), fresh); err == nil {
				cur = cur.ExtendMany(bindings)
			}
		}
		envs = append(envs, cur)
		return envs

	case *ast.ListComp:
		cur := env
		qualEnvs := make([]typesystem.TypeEnv, len(x.Quals))
		for i, q := range x.Quals {
			qualEnvs[i] = cur
			switch q.Kind {
			case ast.QGen, ast.QLet:
				if bindings, _, err := ExtractBinding(cur, q.Binding, fresh.FreshVar(), fresh); err == nil {
					cur = cur.ExtendMany(bindings)
				}
			}
		}
		return append([]typesystem.TypeEnv{cur}, qualEnvs...)

	default:
		n := len(e.Children())
		envs := make([]typesystem.TypeEnv, n)
		for i := range envs {
			envs[i] = env
		}
		return envs
	}
}

// TypeTreePartial decorates every node of e with its best-effort type. It
// first tries to type the whole subtree at once; when that fails it falls
// back to typing each child independently (under its own scoped
// environment) so one bad leaf does not block its unrelated siblings, and
// marks e itself (and therefore, transitively, every ancestor that retries
// this same subtree) with the error that defeated it (spec.md §4.6
// "Partial typing").
func TypeTreePartial(env typesystem.TypeEnv, fresh *Fresher, e ast.Expr) {
	t, cs, err := Generate(env, fresh, e)
	if err == nil {
		if s, serr := Solve(cs); serr == nil {
			ApplySubstToTree(s, e)
			return
		} else {
			err = serr
		}
	}

	envs := childEnvs(env, fresh, e)
	children := e.Children()
	for i, c := range children {
		ce := env
		if i < len(envs) {
			ce = envs[i]
		}
		TypeTreePartial(ce, fresh, c)
	}

	_ = t
	if err == nil {
		err = &typesystem.UnknownError{Msg: "type could not be determined"}
	}
	e.Meta().Type = typesystem.TypeErr{Err: err}
}
