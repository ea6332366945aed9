package infer

import "github.com/exprlab/stepwise/internal/typesystem"

// Canonicalize renames t's free type variables to a, b, c, ... in order of
// first appearance, so two alpha-equivalent types print identically
// regardless of which fresh-name counters produced them (spec.md §4.6
// "Normalisation").
func Canonicalize(t typesystem.Type) typesystem.Type {
	vars := t.FreeTypeVariables()
	if len(vars) == 0 {
		return t
	}
	s := make(typesystem.Subst, len(vars))
	for i, v := range vars {
		s[v] = typesystem.Var{Name: typesystem.Alphabet(i)}
	}
	return t.Apply(s)
}
