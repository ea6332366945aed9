package infer

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

// Generate infers e's type under env, collecting the constraints that must
// hold for that type to be correct, and decorates e's own Meta with the
// (pre-solve) type as a side effect — ApplySubstToTree later refines every
// node's Meta with the globally-solved substitution (spec.md §4.6 "Phase 1
// - constraint generation").
func Generate(env typesystem.TypeEnv, fresh *Fresher, e ast.Expr) (typesystem.Type, []Constraint, error) {
	t, cs, err := generate0(env, fresh, e)
	if err != nil {
		return nil, nil, err
	}
	e.Meta().Type = t
	return t, cs, nil
}

func generate0(env typesystem.TypeEnv, fresh *Fresher, e ast.Expr) (typesystem.Type, []Constraint, error) {
	switch x := e.(type) {
	case *ast.AtomExpr:
		return generateAtom(env, fresh, x.Value)

	case *ast.ListExpr:
		elem := fresh.FreshVar()
		var cs []Constraint
		for _, el := range x.Elems {
			t, ecs, err := Generate(env, fresh, el)
			if err != nil {
				return nil, nil, err
			}
			cs = append(cs, ecs...)
			cs = append(cs, Constraint{Left: elem, Right: t})
		}
		return typesystem.List{Elem: elem}, cs, nil

	case *ast.NTupleExpr:
		elems := make([]typesystem.Type, len(x.Elems))
		var cs []Constraint
		for i, el := range x.Elems {
			t, ecs, err := Generate(env, fresh, el)
			if err != nil {
				return nil, nil, err
			}
			elems[i] = t
			cs = append(cs, ecs...)
		}
		return typesystem.Tuple{Elems: elems}, cs, nil

	case *ast.BinaryExpr:
		lt, lc, err := Generate(env, fresh, x.Left)
		if err != nil {
			return nil, nil, err
		}
		rt, rc, err := Generate(env, fresh, x.Right)
		if err != nil {
			return nil, nil, err
		}
		t1, t2, result, extra, err := binaryOpSchema(env, x.OpNode.Op, fresh)
		if err != nil {
			return nil, nil, err
		}
		cs := concat(lc, rc, extra, []Constraint{{Left: lt, Right: t1}, {Left: rt, Right: t2}})
		return result, cs, nil

	case *ast.UnaryExpr:
		xt, xc, err := Generate(env, fresh, x.X)
		if err != nil {
			return nil, nil, err
		}
		if x.OpNode.Op.Kind == ast.OpSub {
			return typesystem.IntType, append(xc, Constraint{Left: xt, Right: typesystem.IntType}), nil
		}
		return fresh.FreshVar(), xc, nil

	case *ast.SectLExpr:
		xt, xc, err := Generate(env, fresh, x.X)
		if err != nil {
			return nil, nil, err
		}
		t1, t2, result, extra, err := binaryOpSchema(env, x.OpNode.Op, fresh)
		if err != nil {
			return nil, nil, err
		}
		cs := concat(xc, extra, []Constraint{{Left: xt, Right: t1}})
		return typesystem.Arr{From: t2, To: result}, cs, nil

	case *ast.SectRExpr:
		xt, xc, err := Generate(env, fresh, x.X)
		if err != nil {
			return nil, nil, err
		}
		t1, t2, result, extra, err := binaryOpSchema(env, x.OpNode.Op, fresh)
		if err != nil {
			return nil, nil, err
		}
		cs := concat(xc, extra, []Constraint{{Left: xt, Right: t2}})
		return typesystem.Arr{From: t1, To: result}, cs, nil

	case *ast.PrefixOpExpr:
		t1, t2, result, extra, err := binaryOpSchema(env, x.OpNode.Op, fresh)
		if err != nil {
			return nil, nil, err
		}
		return typesystem.Arr{From: t1, To: typesystem.Arr{From: t2, To: result}}, extra, nil

	case *ast.IfExpr:
		ct, cc, err := Generate(env, fresh, x.Cond)
		if err != nil {
			return nil, nil, err
		}
		tt, tc, err := Generate(env, fresh, x.Then)
		if err != nil {
			return nil, nil, err
		}
		et, ec, err := Generate(env, fresh, x.Else)
		if err != nil {
			return nil, nil, err
		}
		cs := concat(cc, tc, ec, []Constraint{{Left: ct, Right: typesystem.BoolType}, {Left: tt, Right: et}})
		return tt, cs, nil

	case *ast.ArithmSeq:
		st, cs, err := Generate(env, fresh, x.Start)
		if err != nil {
			return nil, nil, err
		}
		if x.Step != nil {
			stepT, stepC, err := Generate(env, fresh, x.Step)
			if err != nil {
				return nil, nil, err
			}
			cs = concat(cs, stepC, []Constraint{{Left: stepT, Right: st}})
		}
		if x.End != nil {
			endT, endC, err := Generate(env, fresh, x.End)
			if err != nil {
				return nil, nil, err
			}
			cs = concat(cs, endC, []Constraint{{Left: endT, Right: st}})
		}
		return typesystem.List{Elem: st}, cs, nil

	case *ast.LetExpr:
		curEnv := env
		var cs []Constraint
		for _, b := range x.Bindings {
			valT, valC, err := Generate(curEnv, fresh, b.Value)
			if err != nil {
				return nil, nil, err
			}
			cs = append(cs, valC...)
			bindings, bcs, err := ExtractBinding(curEnv, b.Pattern, valT, fresh)
			if err != nil {
				return nil, nil, err
			}
			cs = append(cs, bcs...)
			curEnv = curEnv.ExtendMany(bindings)
		}
		bodyT, bodyC, err := Generate(curEnv, fresh, x.Body)
		if err != nil {
			return nil, nil, err
		}
		return bodyT, append(cs, bodyC...), nil

	case *ast.Lambda:
		curEnv := env
		paramVars := make([]typesystem.Type, len(x.Params))
		var cs []Constraint
		for i, p := range x.Params {
			v := fresh.FreshVar()
			paramVars[i] = v
			bindings, bcs, err := ExtractBinding(curEnv, p, v, fresh)
			if err != nil {
				return nil, nil, err
			}
			cs = append(cs, bcs...)
			curEnv = curEnv.ExtendMany(bindings)
		}
		bodyT, bodyC, err := Generate(curEnv, fresh, x.Body)
		if err != nil {
			return nil, nil, err
		}
		cs = append(cs, bodyC...)
		return foldArrTypes(paramVars, bodyT), cs, nil

	case *ast.App:
		headT, headC, err := Generate(env, fresh, x.Head)
		if err != nil {
			return nil, nil, err
		}
		cs := append([]Constraint{}, headC...)
		argTypes := make([]typesystem.Type, len(x.Args))
		for i, a := range x.Args {
			at, ac, err := Generate(env, fresh, a)
			if err != nil {
				return nil, nil, err
			}
			argTypes[i] = at
			cs = append(cs, ac...)
		}
		resultVar := fresh.FreshVar()
		cs = append(cs, Constraint{Left: headT, Right: foldArrTypes(argTypes, resultVar)})
		return resultVar, cs, nil

	case *ast.ListComp:
		curEnv := env
		var cs []Constraint
		for _, q := range x.Quals {
			switch q.Kind {
			case ast.QGen:
				et, ec, err := Generate(curEnv, fresh, q.Expr)
				if err != nil {
					return nil, nil, err
				}
				elem := fresh.FreshVar()
				cs = concat(cs, ec, []Constraint{{Left: et, Right: typesystem.List{Elem: elem}}})
				bindings, bcs, err := ExtractBinding(curEnv, q.Binding, elem, fresh)
				if err != nil {
					return nil, nil, err
				}
				cs = append(cs, bcs...)
				curEnv = curEnv.ExtendMany(bindings)
			case ast.QLet:
				vt, vc, err := Generate(curEnv, fresh, q.Expr)
				if err != nil {
					return nil, nil, err
				}
				cs = append(cs, vc...)
				bindings, bcs, err := ExtractBinding(curEnv, q.Binding, vt, fresh)
				if err != nil {
					return nil, nil, err
				}
				cs = append(cs, bcs...)
				curEnv = curEnv.ExtendMany(bindings)
			case ast.QGuard:
				gt, gc, err := Generate(curEnv, fresh, q.Expr)
				if err != nil {
					return nil, nil, err
				}
				cs = concat(cs, gc, []Constraint{{Left: gt, Right: typesystem.BoolType}})
			}
		}
		headT, headC, err := Generate(curEnv, fresh, x.Head)
		if err != nil {
			return nil, nil, err
		}
		cs = append(cs, headC...)
		return typesystem.List{Elem: headT}, cs, nil
	}
	return nil, nil, &typesystem.UnknownError{Msg: "unrecognised expression node"}
}

func generateAtom(env typesystem.TypeEnv, fresh *Fresher, a ast.Atom) (typesystem.Type, []Constraint, error) {
	switch a.Kind {
	case ast.AInt:
		return typesystem.IntType, nil, nil
	case ast.ABool:
		return typesystem.BoolType, nil, nil
	case ast.AChar:
		return typesystem.CharType, nil, nil
	case ast.AName:
		sc, ok := env[a.Name]
		if !ok {
			return nil, nil, &typesystem.UnboundVariableError{Name: a.Name}
		}
		return typesystem.Instantiate(sc, fresh.Fresh), nil, nil
	case ast.AConstr:
		sc, ok := env[a.Name]
		if !ok {
			return nil, nil, &typesystem.UnknownDataConstructorError{Name: a.Name}
		}
		return typesystem.Instantiate(sc, fresh.Fresh), nil, nil
	}
	return nil, nil, &typesystem.UnknownError{Msg: "unrecognised atom kind"}
}

// foldArrTypes builds params[0] -> params[1] -> ... -> result.
func foldArrTypes(params []typesystem.Type, result typesystem.Type) typesystem.Type {
	t := result
	for i := len(params) - 1; i >= 0; i-- {
		t = typesystem.Arr{From: params[i], To: t}
	}
	return t
}
