package ast

import "github.com/exprlab/stepwise/internal/typesystem"

// Def is a single clause of a (possibly multi-clause) function definition
// (spec.md §3 "Definition"). Multiple Defs sharing Name are clauses tried
// in source order.
type Def struct {
	Name    string
	Params  []Binding
	Body    Expr
	Type    typesystem.Type // declared/inferred type of this clause's name, if known
}

// DataConstructor is either a prefix constructor (Cons h t) or an infix one
// (h : t), per spec.md §3 "ADT definition".
type DataConstructor struct {
	Infix bool

	// Prefix fields
	Name       string
	ParamTypes []typesystem.Type

	// Infix fields
	Symbol     string
	Assoc      Assoc
	Precedence int
	LeftType   typesystem.Type
	RightType  typesystem.Type
}

func (c DataConstructor) DisplayName() string {
	if c.Infix {
		return c.Symbol
	}
	return c.Name
}

func (c DataConstructor) Arity() int {
	if c.Infix {
		return 2
	}
	return len(c.ParamTypes)
}

// ADTDefinition is a user-declared algebraic data type.
type ADTDefinition struct {
	Name         string
	TypeParams   []string
	Constructors []DataConstructor
}

// CompileADT converts every data constructor of def into an ordinary
// parameterless Def whose body is the constructor atom and whose attached
// type is the function type folding Arr over the parameter types, ending
// in TypeCons(name, params) (spec.md §4.1).
func CompileADT(def ADTDefinition) []Def {
	resultParams := make([]typesystem.Type, len(def.TypeParams))
	for i, p := range def.TypeParams {
		resultParams[i] = typesystem.Var{Name: p}
	}
	result := typesystem.Type(typesystem.TypeCons{Name: def.Name, Params: resultParams})

	var out []Def
	for _, c := range def.Constructors {
		var paramTypes []typesystem.Type
		if c.Infix {
			paramTypes = []typesystem.Type{c.LeftType, c.RightType}
		} else {
			paramTypes = c.ParamTypes
		}
		t := foldArr(paramTypes, result)
		out = append(out, Def{
			Name: c.DisplayName(),
			Body: NewAtom(Constr(c.DisplayName())),
			Type: t,
		})
	}
	return out
}

func foldArr(params []typesystem.Type, result typesystem.Type) typesystem.Type {
	t := result
	for i := len(params) - 1; i >= 0; i-- {
		t = typesystem.Arr{From: params[i], To: t}
	}
	return t
}
