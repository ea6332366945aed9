package infer

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

// FuncGroup is every clause sharing one top-level name, in source order.
type FuncGroup struct {
	Name    string
	Clauses []ast.Def
}

func groupDefs(defs []ast.Def) []FuncGroup {
	order := make([]string, 0)
	byName := make(map[string][]ast.Def)
	for _, d := range defs {
		if _, ok := byName[d.Name]; !ok {
			order = append(order, d.Name)
		}
		byName[d.Name] = append(byName[d.Name], d)
	}
	groups := make([]FuncGroup, len(order))
	for i, name := range order {
		groups[i] = FuncGroup{Name: name, Clauses: byName[name]}
	}
	return groups
}

// BuildTypeEnv types every top-level definition as one mutually-recursive
// group: every name gets a fresh monomorphic placeholder up front, every
// clause of every name is generated and constrained against that same
// placeholder, the whole program is solved in a single pass, and only then
// is each name generalized into its final scheme (spec.md §4.6 "Type
// environment construction"). This is simpler than demand-driven
// topological grouping. Because every name stays monomorphic until that
// final step, a definition that other definitions use at two different
// types fails to unify — see DESIGN.md for the tradeoff this makes against
// per-group generalization ordering.
func BuildTypeEnv(base typesystem.TypeEnv, defs []ast.Def, fresh *Fresher) (typesystem.TypeEnv, error) {
	groups := groupDefs(defs)

	placeholders := make(map[string]typesystem.Type, len(groups))
	env := base
	for _, g := range groups {
		v := fresh.FreshVar()
		placeholders[g.Name] = v
		env = env.Extend(g.Name, typesystem.Scheme{Type: v})
	}

	var all []Constraint
	for _, g := range groups {
		for _, clause := range g.Clauses {
			if clause.Type != nil {
				all = append(all, Constraint{Left: placeholders[g.Name], Right: clause.Type})
				continue
			}
			curEnv := env
			paramVars := make([]typesystem.Type, len(clause.Params))
			var cs []Constraint
			for i, p := range clause.Params {
				v := fresh.FreshVar()
				paramVars[i] = v
				bindings, bcs, err := ExtractBinding(curEnv, p, v, fresh)
				if err != nil {
					return nil, err
				}
				cs = append(cs, bcs...)
				curEnv = curEnv.ExtendMany(bindings)
			}
			bodyT, bodyC, err := Generate(curEnv, fresh, clause.Body)
			if err != nil {
				return nil, err
			}
			cs = append(cs, bodyC...)
			cs = append(cs, Constraint{Left: placeholders[g.Name], Right: foldArrTypes(paramVars, bodyT)})
			all = append(all, cs...)
		}
	}

	s, err := Solve(all)
	if err != nil {
		return nil, err
	}

	out := base
	for _, g := range groups {
		solved := placeholders[g.Name].Apply(s)
		out = out.Extend(g.Name, typesystem.Generalize(out, solved))
	}
	return out, nil
}
