package evaluator

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/binding"
)

// eval1 performs exactly one reduction at the root of e: it either returns a
// strictly-more-evaluated expression, or an error if no rule applies. Every
// sub-case that needs an operand forced recurses into eval1 on that operand
// alone and rebuilds the parent, which is what makes the reduction
// left-to-right and lazy (spec.md §4.4).
func eval1(env Env, e ast.Expr) (ast.Expr, error) {
	switch x := e.(type) {
	case *ast.AtomExpr:
		if x.Value.Kind == ast.AName {
			return applyCall(env, x.Value.Name, nil)
		}
		return nil, &CannotEvaluateError{Expr: e}

	case *ast.BinaryExpr:
		return evalBinary(env, x.OpNode.Op, x.Left, x.Right)

	case *ast.UnaryExpr:
		if !binding.IsWHNF(x.X) {
			nx, err := eval1(env, x.X)
			if err != nil {
				return nil, err
			}
			return ast.NewUnary(x.OpNode.Op, nx), nil
		}
		return unary(x.OpNode.Op, x.X)

	case *ast.IfExpr:
		if !binding.IsWHNF(x.Cond) {
			nc, err := eval1(env, x.Cond)
			if err != nil {
				return nil, err
			}
			return ast.NewIf(nc, x.Then, x.Else), nil
		}
		a, ok := atomOf(x.Cond)
		if !ok || a.Kind != ast.ABool {
			return nil, &CannotEvaluateError{Expr: x}
		}
		if a.Bool {
			return x.Then, nil
		}
		return x.Else, nil

	case *ast.ArithmSeq:
		if !binding.IsWHNF(x.Start) {
			ns, err := eval1(env, x.Start)
			if err != nil {
				return nil, err
			}
			return ast.NewArithmSeq(ns, x.Step, x.End), nil
		}
		if x.Step != nil && !binding.IsWHNF(x.Step) {
			ns, err := eval1(env, x.Step)
			if err != nil {
				return nil, err
			}
			return ast.NewArithmSeq(x.Start, ns, x.End), nil
		}
		if x.End != nil && !binding.IsWHNF(x.End) {
			ne, err := eval1(env, x.End)
			if err != nil {
				return nil, err
			}
			return ast.NewArithmSeq(x.Start, x.Step, ne), nil
		}
		return unfoldArithmSeq(x)

	case *ast.LetExpr:
		subst := binding.Subst{}
		for _, b := range x.Bindings {
			s, err := evalToBinding(env, b.Pattern, b.Value)
			if err != nil {
				return nil, err
			}
			subst = mergeSubst(subst, s)
		}
		return Substitute(subst, x.Body)

	case *ast.App:
		return evalApp(env, x)

	case *ast.ListComp:
		return evalListComp(env, x)
	}
	return nil, &CannotEvaluateError{Expr: e}
}

// evalBinary reduces operands left-to-right, retrying the primitive table
// after forcing whichever side it still needs (spec.md §4.5).
func evalBinary(env Env, op ast.Operator, l, r ast.Expr) (ast.Expr, error) {
	if !binding.IsWHNF(l) {
		nl, err := eval1(env, l)
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(op, nl, r), nil
	}
	res, err := binary(env, op, l, r)
	if err == nil {
		return res, nil
	}
	if !binding.IsWHNF(r) {
		nr, rerr := eval1(env, r)
		if rerr != nil {
			return nil, rerr
		}
		return ast.NewBinary(op, l, nr), nil
	}
	return nil, err
}

// evalApp implements function application: composition rewriting, operator
// sections and prefix operators applied as values, lambda beta-reduction
// (wrapLambda), and named-function dispatch (spec.md §4.4).
func evalApp(env Env, x *ast.App) (ast.Expr, error) {
	if bin, ok := x.Head.(*ast.BinaryExpr); ok && bin.OpNode.Op.Kind == ast.OpComposition {
		inner := ast.NewApp(bin.Right, x.Args)
		return ast.NewApp(bin.Left, []ast.Expr{inner}), nil
	}

	if a, ok := x.Head.(*ast.AtomExpr); ok && a.Value.Kind == ast.AName {
		return applyCall(env, a.Value.Name, x.Args)
	}

	if !binding.IsWHNF(x.Head) {
		nh, err := eval1(env, x.Head)
		if err != nil {
			return nil, err
		}
		return ast.NewApp(nh, x.Args), nil
	}

	switch h := x.Head.(type) {
	case *ast.Lambda:
		subst, err := matchAll(env, h.Params, x.Args)
		if err != nil {
			if _, ok := err.(*binding.TooFewArguments); ok {
				body, serr := Substitute(subst, h.Body)
				if serr != nil {
					return nil, serr
				}
				return ast.NewLambda(h.Params[len(x.Args):], body), nil
			}
			return nil, err
		}
		return wrapLambda(h.Params, subst, h.Body, x.Args)

	case *ast.AtomExpr:
		switch h.Value.Kind {
		case ast.AName:
			return applyCall(env, h.Value.Name, x.Args)
		default:
			return nil, &CannotEvaluateError{Expr: x}
		}

	case *ast.SectLExpr:
		if len(x.Args) == 0 {
			return nil, &CannotEvaluateError{Expr: x}
		}
		reduced := sectionResult(env, h.OpNode.Op, h.X, x.Args[0])
		if len(x.Args) == 1 {
			return reduced, nil
		}
		return ast.NewApp(reduced, x.Args[1:]), nil

	case *ast.SectRExpr:
		if len(x.Args) == 0 {
			return nil, &CannotEvaluateError{Expr: x}
		}
		reduced := sectionResult(env, h.OpNode.Op, x.Args[0], h.X)
		if len(x.Args) == 1 {
			return reduced, nil
		}
		return ast.NewApp(reduced, x.Args[1:]), nil

	case *ast.PrefixOpExpr:
		if len(x.Args) == 0 {
			return nil, &CannotEvaluateError{Expr: x}
		}
		if !binding.IsWHNF(x.Args[0]) {
			na, err := eval1(env, x.Args[0])
			if err != nil {
				return nil, err
			}
			newArgs := append([]ast.Expr{na}, x.Args[1:]...)
			return ast.NewApp(x.Head, newArgs), nil
		}
		if len(x.Args) == 1 {
			if reduced, err := unary(h.OpNode.Op, x.Args[0]); err == nil {
				return reduced, nil
			}
			return ast.NewSectL(x.Args[0], h.OpNode.Op), nil
		}
		reduced := sectionResult(env, h.OpNode.Op, x.Args[0], x.Args[1])
		rest := x.Args[2:]
		if len(rest) == 0 {
			return reduced, nil
		}
		return ast.NewApp(reduced, rest), nil
	}
	return nil, &CannotEvaluateError{Expr: x}
}

// sectionResult implements spec.md §4.4 rule 8: applying a section (or a
// fully two-arg-applied prefix operator) to its remaining operand tries the
// primitive operation first, falling back to the unevaluated Binary node
// only if the primitive errors (e.g. the operands aren't yet in a shape the
// primitive can compute over).
func sectionResult(env Env, op ast.Operator, e1, e2 ast.Expr) ast.Expr {
	if reduced, err := binary(env, op, e1, e2); err == nil {
		return reduced
	}
	return ast.NewBinary(op, e1, e2)
}

// evalListComp desugars one qualifier at a time, unfolding generators one
// source element at a time (mirroring unfoldArithmSeq's laziness) so an
// infinite generator source still produces elements incrementally.
func evalListComp(env Env, x *ast.ListComp) (ast.Expr, error) {
	if len(x.Quals) == 0 {
		return ast.NewList([]ast.Expr{x.Head}), nil
	}
	q := x.Quals[0]
	rest := x.Quals[1:]

	switch q.Kind {
	case ast.QGuard:
		if !binding.IsWHNF(q.Expr) {
			ne, err := eval1(env, q.Expr)
			if err != nil {
				return nil, err
			}
			newQuals := append([]ast.Qual{{Kind: ast.QGuard, Expr: ne}}, rest...)
			return ast.NewListComp(x.Head, newQuals), nil
		}
		a, ok := atomOf(q.Expr)
		if !ok || a.Kind != ast.ABool {
			return nil, &CannotEvaluateError{Expr: x}
		}
		if a.Bool {
			return ast.NewListComp(x.Head, rest), nil
		}
		return ast.NewList(nil), nil

	case ast.QLet:
		return ast.NewLet([]ast.LetBinding{{Pattern: q.Binding, Value: q.Expr}}, ast.NewListComp(x.Head, rest)), nil

	case ast.QGen:
		if !binding.IsWHNF(q.Expr) {
			ne, err := eval1(env, q.Expr)
			if err != nil {
				return nil, err
			}
			newQuals := append([]ast.Qual{{Kind: ast.QGen, Binding: q.Binding, Expr: ne}}, rest...)
			return ast.NewListComp(x.Head, newQuals), nil
		}
		list, ok := q.Expr.(*ast.ListExpr)
		if !ok {
			return nil, &CannotEvaluateError{Expr: x}
		}
		if len(list.Elems) == 0 {
			return ast.NewList(nil), nil
		}
		head0, tail := list.Elems[0], ast.NewList(list.Elems[1:])
		firstPart := ast.NewLet([]ast.LetBinding{{Pattern: q.Binding, Value: head0}}, ast.NewListComp(x.Head, rest))
		restQuals := append([]ast.Qual{{Kind: ast.QGen, Binding: q.Binding, Expr: tail}}, rest...)
		restComp := ast.NewListComp(x.Head, restQuals)
		return ast.NewBinary(ast.Operator{Kind: ast.OpAppend}, firstPart, restComp), nil
	}
	return nil, &CannotEvaluateError{Expr: x}
}
