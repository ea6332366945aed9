package evaluator

import "github.com/exprlab/stepwise/internal/ast"
import "github.com/exprlab/stepwise/internal/binding"

// Substitute replaces every pattern variable that subst maps, wherever it
// occurs free in e, with its bound sub-expression. When descending into a
// nested Lambda (or any other binder), subst is first restricted to keys
// not bound there, and the free variables of every substituted value are
// checked against the binder's names — a non-empty intersection means a
// substitution would capture a variable, which is reported rather than
// silently producing a wrong answer (spec.md §4.4 "Name capture").
func Substitute(subst binding.Subst, e ast.Expr) (ast.Expr, error) {
	if len(subst) == 0 {
		return e, nil
	}
	switch x := e.(type) {
	case *ast.AtomExpr:
		if x.Value.Kind == ast.AName {
			if repl, ok := subst[x.Value.Name]; ok {
				return repl, nil
			}
		}
		return x, nil

	case *ast.ListExpr:
		elems, err := substAll(subst, x.Elems)
		if err != nil {
			return nil, err
		}
		return ast.NewList(elems), nil

	case *ast.NTupleExpr:
		elems, err := substAll(subst, x.Elems)
		if err != nil {
			return nil, err
		}
		return ast.NewNTuple(elems), nil

	case *ast.BinaryExpr:
		l, err := Substitute(subst, x.Left)
		if err != nil {
			return nil, err
		}
		r, err := Substitute(subst, x.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(x.OpNode.Op, l, r), nil

	case *ast.UnaryExpr:
		v, err := Substitute(subst, x.X)
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(x.OpNode.Op, v), nil

	case *ast.SectLExpr:
		v, err := Substitute(subst, x.X)
		if err != nil {
			return nil, err
		}
		return ast.NewSectL(v, x.OpNode.Op), nil

	case *ast.SectRExpr:
		v, err := Substitute(subst, x.X)
		if err != nil {
			return nil, err
		}
		return ast.NewSectR(x.OpNode.Op, v), nil

	case *ast.PrefixOpExpr:
		return x, nil

	case *ast.IfExpr:
		c, err := Substitute(subst, x.Cond)
		if err != nil {
			return nil, err
		}
		t, err := Substitute(subst, x.Then)
		if err != nil {
			return nil, err
		}
		el, err := Substitute(subst, x.Else)
		if err != nil {
			return nil, err
		}
		return ast.NewIf(c, t, el), nil

	case *ast.ArithmSeq:
		start, err := Substitute(subst, x.Start)
		if err != nil {
			return nil, err
		}
		var step, end ast.Expr
		if x.Step != nil {
			if step, err = Substitute(subst, x.Step); err != nil {
				return nil, err
			}
		}
		if x.End != nil {
			if end, err = Substitute(subst, x.End); err != nil {
				return nil, err
			}
		}
		return ast.NewArithmSeq(start, step, end), nil

	case *ast.App:
		head, err := Substitute(subst, x.Head)
		if err != nil {
			return nil, err
		}
		args, err := substAll(subst, x.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewApp(head, args), nil

	case *ast.Lambda:
		restricted, captured := restrict(subst, boundByPatterns(x.Params))
		if len(captured) > 0 {
			return nil, &NameCaptureError{Names: captured}
		}
		body, err := Substitute(restricted, x.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewLambda(x.Params, body), nil

	case *ast.LetExpr:
		bound := map[string]bool{}
		for _, b := range x.Bindings {
			for _, v := range ast.Vars(b.Pattern) {
				bound[v] = true
			}
		}
		restricted, captured := restrict(subst, bound)
		if len(captured) > 0 {
			return nil, &NameCaptureError{Names: captured}
		}
		newBindings := make([]ast.LetBinding, len(x.Bindings))
		for i, b := range x.Bindings {
			v, err := Substitute(restricted, b.Value)
			if err != nil {
				return nil, err
			}
			newBindings[i] = ast.LetBinding{Pattern: b.Pattern, Value: v}
		}
		body, err := Substitute(restricted, x.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewLet(newBindings, body), nil

	case *ast.ListComp:
		// Each qualifier's binder scopes over the rest of the comprehension;
		// restrict `subst` progressively and check capture at each step.
		cur := subst
		newQuals := make([]ast.Qual, len(x.Quals))
		for i, q := range x.Quals {
			v, err := Substitute(cur, q.Expr)
			if err != nil {
				return nil, err
			}
			newQuals[i] = ast.Qual{Kind: q.Kind, Binding: q.Binding, Expr: v}
			switch q.Kind {
			case ast.QGen, ast.QLet:
				restricted, captured := restrict(cur, stringSet(ast.Vars(q.Binding)...))
				if len(captured) > 0 {
					return nil, &NameCaptureError{Names: captured}
				}
				cur = restricted
			}
		}
		head, err := Substitute(cur, x.Head)
		if err != nil {
			return nil, err
		}
		return ast.NewListComp(head, newQuals), nil
	}
	return e, nil
}

func substAll(subst binding.Subst, es []ast.Expr) ([]ast.Expr, error) {
	out := make([]ast.Expr, len(es))
	for i, e := range es {
		v, err := Substitute(subst, e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func boundByPatterns(ps []ast.Binding) map[string]bool {
	bound := map[string]bool{}
	for _, p := range ps {
		for _, v := range ast.Vars(p) {
			bound[v] = true
		}
	}
	return bound
}

// restrict removes keys of subst bound by the enclosing binder, and
// reports (as captured names) any free variable of a remaining
// substituted value that collides with one of the binder's own names.
func restrict(subst binding.Subst, bound map[string]bool) (binding.Subst, []string) {
	restricted := make(binding.Subst, len(subst))
	var captured []string
	for k, v := range subst {
		if bound[k] {
			continue
		}
		restricted[k] = v
		for _, fv := range FreeVariables(v) {
			if bound[fv] {
				captured = append(captured, fv)
			}
		}
	}
	return restricted, dedupe(captured)
}

func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
