package evaluator

import "github.com/exprlab/stepwise/internal/ast"

func atomOf(e ast.Expr) (ast.Atom, bool) {
	a, ok := e.(*ast.AtomExpr)
	if !ok {
		return ast.Atom{}, false
	}
	return a.Value, true
}

// binary implements the binary-operator primitive table (spec.md §4.5).
func binary(env Env, op ast.Operator, e1, e2 ast.Expr) (ast.Expr, error) {
	switch op.Kind {
	case ast.OpPower:
		a1, ok1 := atomOf(e1)
		a2, ok2 := atomOf(e2)
		if !ok1 || a1.Kind != ast.AInt || !ok2 || a2.Kind != ast.AInt {
			return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}
		}
		// product of replicate(j, i): j <= 0 yields an empty list, whose
		// product is 1 — an observed quirk of the source semantics, kept
		// as-is (spec.md §9 "Power operator quirk").
		result := int64(1)
		for k := int64(0); k < a2.Int; k++ {
			result *= a1.Int
		}
		return ast.NewAtom(ast.Int(result)), nil

	case ast.OpMul, ast.OpAdd, ast.OpSub:
		a1, ok1 := atomOf(e1)
		a2, ok2 := atomOf(e2)
		if !ok1 || a1.Kind != ast.AInt || !ok2 || a2.Kind != ast.AInt {
			return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}
		}
		var v int64
		switch op.Kind {
		case ast.OpMul:
			v = a1.Int * a2.Int
		case ast.OpAdd:
			v = a1.Int + a2.Int
		case ast.OpSub:
			v = a1.Int - a2.Int
		}
		return ast.NewAtom(ast.Int(v)), nil

	case ast.OpColon:
		list, ok := e2.(*ast.ListExpr)
		if !ok {
			return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}
		}
		return ast.NewList(append([]ast.Expr{e1}, list.Elems...)), nil

	case ast.OpAppend:
		l1, ok1 := e1.(*ast.ListExpr)
		l2, ok2 := e2.(*ast.ListExpr)
		if !ok1 || !ok2 {
			return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}
		}
		return ast.NewList(append(append([]ast.Expr{}, l1.Elems...), l2.Elems...)), nil

	case ast.OpEqu, ast.OpNeq, ast.OpLt, ast.OpLeq, ast.OpGt, ast.OpGeq:
		a1, ok1 := atomOf(e1)
		a2, ok2 := atomOf(e2)
		if !ok1 || !ok2 || a1.Kind != a2.Kind {
			return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}
		}
		var v bool
		switch op.Kind {
		case ast.OpEqu:
			v = a1.Equal(a2)
		case ast.OpNeq:
			v = !a1.Equal(a2)
		case ast.OpLt:
			v = a1.Less(a2)
		case ast.OpLeq:
			v = a1.Less(a2) || a1.Equal(a2)
		case ast.OpGt:
			v = !a1.Less(a2) && !a1.Equal(a2)
		case ast.OpGeq:
			v = !a1.Less(a2)
		}
		return ast.NewAtom(ast.Bool_(v)), nil

	case ast.OpAnd:
		a1, ok1 := atomOf(e1)
		if ok1 && a1.Kind == ast.ABool && !a1.Bool {
			return ast.NewAtom(ast.Bool_(false)), nil
		}
		a2, ok2 := atomOf(e2)
		if ok2 && a2.Kind == ast.ABool && !a2.Bool {
			return ast.NewAtom(ast.Bool_(false)), nil
		}
		if ok1 && a1.Kind == ast.ABool && ok2 && a2.Kind == ast.ABool {
			return ast.NewAtom(ast.Bool_(a1.Bool && a2.Bool)), nil
		}
		return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}

	case ast.OpOr:
		a1, ok1 := atomOf(e1)
		if ok1 && a1.Kind == ast.ABool && a1.Bool {
			return ast.NewAtom(ast.Bool_(true)), nil
		}
		a2, ok2 := atomOf(e2)
		if ok2 && a2.Kind == ast.ABool && a2.Bool {
			return ast.NewAtom(ast.Bool_(true)), nil
		}
		if ok1 && a1.Kind == ast.ABool && ok2 && a2.Kind == ast.ABool {
			return ast.NewAtom(ast.Bool_(a1.Bool || a2.Bool)), nil
		}
		return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}

	case ast.OpDollar:
		return ast.NewApp(e1, []ast.Expr{e2}), nil

	case ast.OpInfixFunc:
		return applyCall(env, op.Name, []ast.Expr{e1, e2})

	case ast.OpComposition:
		// Composition never reduces as a Binary; it is consumed by the App
		// rewrite rule (spec.md §4.5).
		return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}
	}
	return nil, &BinaryOpErrorT{Op: op, Left: e1, Right: e2}
}

// unary implements the unary-operator primitive table: only Sub on AInt is
// defined (spec.md §4.5).
func unary(op ast.Operator, e ast.Expr) (ast.Expr, error) {
	if op.Kind == ast.OpSub {
		if a, ok := atomOf(e); ok && a.Kind == ast.AInt {
			return ast.NewAtom(ast.Int(-a.Int)), nil
		}
	}
	return nil, &UnaryOpErrorT{Op: op, X: e}
}
