package typesystem

import "strings"

// Subst is a finite map from type-variable name to type term (C2).
type Subst map[string]Type

// NullSubst is the empty substitution, the identity of Compose.
func NullSubst() Subst { return Subst{} }

func (s Subst) String() string {
	keys := sortedKeys(s)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " => " + s[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Compose implements (s1 . s2): apply s1 over every value of s2, then union
// the result with s1, with s1 winning on key collisions (left-biased).
func Compose(s1, s2 Subst) Subst {
	out := make(Subst, len(s1)+len(s2))
	for k, v := range s2 {
		out[k] = v.Apply(s1)
	}
	for k, v := range s1 {
		out[k] = v
	}
	return out
}

// Substitutable is implemented by every syntactic category the substitution
// is lifted over: types, schemes, type environments, sequences, typed AST
// nodes and their bindings and quals (C2).
type Substitutable[T any] interface {
	Apply(Subst) T
	FreeTypeVariables() []string
}

// ApplyAll lifts Apply over a slice of Substitutable values.
func ApplyAll[T Substitutable[T]](s Subst, xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = x.Apply(s)
	}
	return out
}

// FreeTypeVariablesAll unions the free variables of a slice of Substitutable
// values, preserving first-appearance order.
func FreeTypeVariablesAll[T Substitutable[T]](xs []T) []string {
	var out []string
	for _, x := range xs {
		out = union(out, x.FreeTypeVariables())
	}
	return out
}

// OptType is the Substitutable instance for Option<Type> (a possibly-absent
// type meta on an AST node).
type OptType struct {
	Type Type // nil means None
}

func (o OptType) Apply(s Subst) OptType {
	if o.Type == nil {
		return o
	}
	return OptType{Type: o.Type.Apply(s)}
}

func (o OptType) FreeTypeVariables() []string {
	if o.Type == nil {
		return nil
	}
	return o.Type.FreeTypeVariables()
}
