package infer

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

// binaryOpSchema returns the (left-operand, right-operand, result) type
// schema for an operator, instantiating a fresh scheme per call so every
// occurrence of a polymorphic operator gets its own type variables
// (spec.md §4.5, §4.6). It is shared by BinaryExpr, the two section forms
// and PrefixOpExpr so all four agree on exactly the same operator typing.
func binaryOpSchema(env typesystem.TypeEnv, op ast.Operator, fresh *Fresher) (t1, t2, result typesystem.Type, extra []Constraint, err error) {
	switch op.Kind {
	case ast.OpPower, ast.OpMul, ast.OpAdd, ast.OpSub:
		return typesystem.IntType, typesystem.IntType, typesystem.IntType, nil, nil

	case ast.OpColon:
		a := fresh.FreshVar()
		return a, typesystem.List{Elem: a}, typesystem.List{Elem: a}, nil, nil

	case ast.OpAppend:
		a := fresh.FreshVar()
		lt := typesystem.List{Elem: a}
		return lt, lt, lt, nil, nil

	case ast.OpEqu, ast.OpNeq, ast.OpLt, ast.OpLeq, ast.OpGt, ast.OpGeq:
		a := fresh.FreshVar()
		return a, a, typesystem.BoolType, nil, nil

	case ast.OpAnd, ast.OpOr:
		return typesystem.BoolType, typesystem.BoolType, typesystem.BoolType, nil, nil

	case ast.OpDollar:
		a, b := fresh.FreshVar(), fresh.FreshVar()
		return typesystem.Arr{From: a, To: b}, a, b, nil, nil

	case ast.OpComposition:
		a, b, c := fresh.FreshVar(), fresh.FreshVar(), fresh.FreshVar()
		return typesystem.Arr{From: b, To: c}, typesystem.Arr{From: a, To: b}, typesystem.Arr{From: a, To: c}, nil, nil

	case ast.OpInfixFunc:
		return functionCallSchema(env, op.Name, fresh, func() error {
			return &typesystem.UnboundVariableError{Name: op.Name}
		})

	case ast.OpInfixConstr:
		return functionCallSchema(env, op.Symbol, fresh, func() error {
			return &typesystem.UnknownDataConstructorError{Name: op.Symbol}
		})
	}
	return nil, nil, nil, nil, &typesystem.UnknownError{Msg: "no type schema for operator " + op.String()}
}

func functionCallSchema(env typesystem.TypeEnv, name string, fresh *Fresher, notFound func() error) (t1, t2, result typesystem.Type, extra []Constraint, err error) {
	sc, ok := env[name]
	if !ok {
		return nil, nil, nil, nil, notFound()
	}
	fnType := typesystem.Instantiate(sc, fresh.Fresh)
	arr1, ok := fnType.(typesystem.Arr)
	if !ok {
		return nil, nil, nil, nil, &typesystem.UnknownError{Msg: name + " is not a two-argument function"}
	}
	arr2, ok := arr1.To.(typesystem.Arr)
	if !ok {
		return nil, nil, nil, nil, &typesystem.UnknownError{Msg: name + " takes fewer than two arguments"}
	}
	return arr1.From, arr2.From, arr2.To, nil, nil
}
