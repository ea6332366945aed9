package infer

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

// ExtractBinding derives the identifiers a binding pattern introduces and
// the constraints that must hold between the pattern's shape and t, the
// type the matched expression is required to have (spec.md §4.6
// "extractBinding"). Data-constructor patterns are resolved by looking their
// declared type up in env, exactly as CompileADT registered it.
func ExtractBinding(env typesystem.TypeEnv, pattern ast.Binding, t typesystem.Type, fresh *Fresher) (map[string]typesystem.Scheme, []Constraint, error) {
	switch p := pattern.(type) {
	case *ast.Lit:
		if name, ok := ast.NameOf(p); ok {
			return map[string]typesystem.Scheme{name: {Type: t}}, nil, nil
		}
		return nil, []Constraint{{Left: t, Right: atomBaseType(p.Atom)}}, nil

	case *ast.ConsLit:
		elem := fresh.FreshVar()
		cs := []Constraint{{Left: t, Right: typesystem.List{Elem: elem}}}
		headBindings, headCs, err := ExtractBinding(env, p.Head, elem, fresh)
		if err != nil {
			return nil, nil, err
		}
		tailBindings, tailCs, err := ExtractBinding(env, p.Tail, typesystem.List{Elem: elem}, fresh)
		if err != nil {
			return nil, nil, err
		}
		return mergeSchemes(headBindings, tailBindings), concat(cs, headCs, tailCs), nil

	case *ast.ListLit:
		elem := fresh.FreshVar()
		cs := []Constraint{{Left: t, Right: typesystem.List{Elem: elem}}}
		bindings := map[string]typesystem.Scheme{}
		for _, ep := range p.Elems {
			bs, ecs, err := ExtractBinding(env, ep, elem, fresh)
			if err != nil {
				return nil, nil, err
			}
			bindings = mergeSchemes(bindings, bs)
			cs = append(cs, ecs...)
		}
		return bindings, cs, nil

	case *ast.NTupleLit:
		elemVars := make([]typesystem.Type, len(p.Elems))
		for i := range elemVars {
			elemVars[i] = fresh.FreshVar()
		}
		cs := []Constraint{{Left: t, Right: typesystem.Tuple{Elems: elemVars}}}
		bindings := map[string]typesystem.Scheme{}
		for i, ep := range p.Elems {
			bs, ecs, err := ExtractBinding(env, ep, elemVars[i], fresh)
			if err != nil {
				return nil, nil, err
			}
			bindings = mergeSchemes(bindings, bs)
			cs = append(cs, ecs...)
		}
		return bindings, cs, nil

	case *ast.ConstrLit:
		sc, ok := env[p.Name]
		if !ok {
			return nil, nil, &typesystem.UnknownDataConstructorError{Name: p.Name}
		}
		ctorType := typesystem.Instantiate(sc, fresh.Fresh)
		argTypes := make([]typesystem.Type, 0, len(p.Args))
		cur := ctorType
		for range p.Args {
			arr, ok := cur.(typesystem.Arr)
			if !ok {
				return nil, nil, &typesystem.PatternMismatchError{Pattern: p, Type: t}
			}
			argTypes = append(argTypes, arr.From)
			cur = arr.To
		}
		cs := []Constraint{{Left: t, Right: cur}}
		bindings := map[string]typesystem.Scheme{}
		for i, ap := range p.Args {
			bs, acs, err := ExtractBinding(env, ap, argTypes[i], fresh)
			if err != nil {
				return nil, nil, err
			}
			bindings = mergeSchemes(bindings, bs)
			cs = append(cs, acs...)
		}
		return bindings, cs, nil
	}
	return nil, nil, &typesystem.UnknownError{Msg: "unrecognised binding pattern"}
}

func atomBaseType(a ast.Atom) typesystem.Type {
	switch a.Kind {
	case ast.AInt:
		return typesystem.IntType
	case ast.ABool:
		return typesystem.BoolType
	case ast.AChar:
		return typesystem.CharType
	}
	return typesystem.Unknown{}
}

func mergeSchemes(a, b map[string]typesystem.Scheme) map[string]typesystem.Scheme {
	out := make(map[string]typesystem.Scheme, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func concat(css ...[]Constraint) []Constraint {
	var out []Constraint
	for _, cs := range css {
		out = append(out, cs...)
	}
	return out
}
