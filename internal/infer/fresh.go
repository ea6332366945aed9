package infer

import "github.com/exprlab/stepwise/internal/typesystem"

// Fresher mints never-before-used type-variable names in canonical alphabet
// order (a, b, ..., z, aa, ab, ...), the same global-counter design the
// reference system uses for fresh names (spec.md §9 "Global state").
type Fresher struct {
	counter int
}

func NewFresher() *Fresher { return &Fresher{} }

func (f *Fresher) Fresh() string {
	name := typesystem.Alphabet(f.counter)
	f.counter++
	return name
}

func (f *Fresher) FreshVar() typesystem.Type {
	return typesystem.Var{Name: f.Fresh()}
}
