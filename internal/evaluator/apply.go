package evaluator

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/binding"
)

func mergeSubst(a, b binding.Subst) binding.Subst {
	out := make(binding.Subst, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// evalToBinding forces expr with repeated eval1 steps until pattern either
// matches or genuinely mismatches, so a clause only forces as much of its
// argument as its own shape demands (spec.md §4.4 "evalToBinding").
func evalToBinding(env Env, pattern ast.Binding, expr ast.Expr) (binding.Subst, error) {
	cur := expr
	for {
		s, err := binding.Match(pattern, cur)
		if err == nil {
			return s, nil
		}
		if _, ok := err.(*binding.StrictnessError); ok {
			reduced, evalErr := eval1(env, cur)
			if evalErr != nil {
				return nil, evalErr
			}
			cur = reduced
			continue
		}
		return nil, err
	}
}

// matchAll matches params against args pointwise, forcing each argument as
// evalToBinding demands. When args is shorter than params it returns the
// partial substitution gathered so far alongside a TooFewArguments error —
// the caller decides whether that means "try the next clause" or "this is a
// partial application" (spec.md §4.4).
func matchAll(env Env, params []ast.Binding, args []ast.Expr) (binding.Subst, error) {
	n := len(params)
	limit := n
	if len(args) < limit {
		limit = len(args)
	}
	subst := binding.Subst{}
	for i := 0; i < limit; i++ {
		s, err := evalToBinding(env, params[i], args[i])
		if err != nil {
			return nil, err
		}
		subst = mergeSubst(subst, s)
	}
	if len(args) < n {
		return subst, &binding.TooFewArguments{Patterns: params, Args: args}
	}
	return subst, nil
}

// wrapLambda substitutes a fully-matched clause's bindings into its body,
// re-applying any arguments left over once the body's own arity is
// exhausted (spec.md §4.4 "wrapLambda").
func wrapLambda(params []ast.Binding, subst binding.Subst, body ast.Expr, args []ast.Expr) (ast.Expr, error) {
	newBody, err := Substitute(subst, body)
	if err != nil {
		return nil, err
	}
	if len(args) == len(params) {
		return newBody, nil
	}
	return ast.NewApp(newBody, args[len(params):]), nil
}

// tryClauses walks clauses in source order, firing the first whose patterns
// match the given arguments. A StrictnessError never escapes here (it is
// resolved internally by evalToBinding); a genuine shape mismatch is
// recorded and the next clause is tried; a TooFewArguments on the first
// clause that otherwise matches its available prefix yields a curried
// partial application instead of an error (spec.md §4.4).
func tryClauses(env Env, name string, clauses []Clause, args []ast.Expr) (ast.Expr, error) {
	var reasons []binding.MatchError
	for _, c := range clauses {
		subst, err := matchAll(env, c.Params, args)
		if err == nil {
			return wrapLambda(c.Params, subst, c.Body, args)
		}
		if tfa, ok := err.(*binding.TooFewArguments); ok {
			body, serr := Substitute(subst, c.Body)
			if serr != nil {
				return nil, serr
			}
			return ast.NewLambda(tfa.Patterns[len(args):], body), nil
		}
		if me, ok := err.(binding.MatchError); ok {
			reasons = append(reasons, me)
			continue
		}
		return nil, err
	}
	return nil, &NoMatchingFunctionError{Name: name, Reasons: reasons}
}

// applyCall resolves a named function call: "div" and "mod" are wired in
// directly, everything else is looked up in env and dispatched through
// tryClauses (spec.md §4.4 "apply").
func applyCall(env Env, name string, args []ast.Expr) (ast.Expr, error) {
	if name == "div" || name == "mod" {
		return applyDivMod(env, name, args)
	}
	clauses, ok := env[name]
	if !ok {
		return nil, &UnknownFunctionError{Name: name}
	}
	return tryClauses(env, name, clauses, args)
}

func applyDivMod(env Env, name string, args []ast.Expr) (ast.Expr, error) {
	if len(args) < 2 {
		return nil, &CannotEvaluateError{Expr: ast.NewApp(ast.NewAtom(ast.Name(name)), args)}
	}
	a0, a1 := args[0], args[1]
	if !binding.IsWHNF(a0) {
		na, err := eval1(env, a0)
		if err != nil {
			return nil, err
		}
		newArgs := append([]ast.Expr{na, a1}, args[2:]...)
		return ast.NewApp(ast.NewAtom(ast.Name(name)), newArgs), nil
	}
	if !binding.IsWHNF(a1) {
		na, err := eval1(env, a1)
		if err != nil {
			return nil, err
		}
		newArgs := append([]ast.Expr{a0, na}, args[2:]...)
		return ast.NewApp(ast.NewAtom(ast.Name(name)), newArgs), nil
	}
	x0, ok0 := atomOf(a0)
	x1, ok1 := atomOf(a1)
	op := ast.Operator{Kind: ast.OpInfixFunc, Name: name}
	if !ok0 || x0.Kind != ast.AInt || !ok1 || x1.Kind != ast.AInt {
		return nil, &BinaryOpErrorT{Op: op, Left: a0, Right: a1}
	}
	if x1.Int == 0 {
		return nil, &DivByZeroError{}
	}
	var v int64
	if name == "div" {
		v = x0.Int / x1.Int
	} else {
		v = x0.Int % x1.Int
	}
	result := ast.NewAtom(ast.Int(v))
	if len(args) == 2 {
		return result, nil
	}
	return ast.NewApp(result, args[2:]), nil
}
