package infer

import "github.com/exprlab/stepwise/internal/typesystem"

// Solve discharges constraints in order, threading the accumulated
// substitution through each unification so later constraints see the
// effect of earlier ones (spec.md §4.6 "Phase 2 - unification").
func Solve(constraints []Constraint) (typesystem.Subst, error) {
	s := typesystem.NullSubst()
	for _, c := range constraints {
		s1, err := typesystem.Unify(c.Left.Apply(s), c.Right.Apply(s))
		if err != nil {
			return nil, err
		}
		s = typesystem.Compose(s1, s)
	}
	return s, nil
}
