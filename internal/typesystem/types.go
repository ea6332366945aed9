// Package typesystem implements the type terms, substitutions, schemes and
// unification used by the Hindley-Milner inferencer (internal/infer) and
// shared with the evaluator for diagnostic rendering.
package typesystem

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the interface implemented by every type term.
type Type interface {
	String() string
	Apply(s Subst) Type
	FreeTypeVariables() []string
}

// Var is a type variable, e.g. 'a' in the scheme forall a. a -> a.
type Var struct {
	Name string
}

func (t Var) String() string { return t.Name }

func (t Var) Apply(s Subst) Type {
	if repl, ok := s[t.Name]; ok {
		if v, ok := repl.(Var); ok && v.Name == t.Name {
			return t
		}
		return repl
	}
	return t
}

func (t Var) FreeTypeVariables() []string { return []string{t.Name} }

// Con is a nullary base type constant: Int, Bool, Char.
type Con struct {
	Name string
}

func (t Con) String() string                  { return t.Name }
func (t Con) Apply(s Subst) Type               { return t }
func (t Con) FreeTypeVariables() []string      { return nil }

// Arr is a function type a -> b.
type Arr struct {
	From, To Type
}

func (t Arr) String() string {
	from := t.From.String()
	if _, ok := t.From.(Arr); ok {
		from = "(" + from + ")"
	}
	return fmt.Sprintf("%s -> %s", from, t.To.String())
}

func (t Arr) Apply(s Subst) Type {
	return Arr{From: t.From.Apply(s), To: t.To.Apply(s)}
}

func (t Arr) FreeTypeVariables() []string {
	return union(t.From.FreeTypeVariables(), t.To.FreeTypeVariables())
}

// List is [t].
type List struct {
	Elem Type
}

func (t List) String() string { return "[" + t.Elem.String() + "]" }
func (t List) Apply(s Subst) Type {
	return List{Elem: t.Elem.Apply(s)}
}
func (t List) FreeTypeVariables() []string { return t.Elem.FreeTypeVariables() }

// Tuple is (t1, t2, ..., tn).
type Tuple struct {
	Elems []Type
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) Apply(s Subst) Type {
	elems := make([]Type, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.Apply(s)
	}
	return Tuple{Elems: elems}
}

func (t Tuple) FreeTypeVariables() []string {
	var out []string
	for _, e := range t.Elems {
		out = union(out, e.FreeTypeVariables())
	}
	return out
}

// TypeCons is a user-declared ADT applied to type parameters, e.g. Tree a.
type TypeCons struct {
	Name   string
	Params []Type
}

func (t TypeCons) String() string {
	if len(t.Params) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return t.Name + " " + strings.Join(parts, " ")
}

func (t TypeCons) Apply(s Subst) Type {
	params := make([]Type, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.Apply(s)
	}
	return TypeCons{Name: t.Name, Params: params}
}

func (t TypeCons) FreeTypeVariables() []string {
	var out []string
	for _, p := range t.Params {
		out = union(out, p.FreeTypeVariables())
	}
	return out
}

// TypeErr embeds an inference error as a type term, so a tree can carry it
// as an ordinary meta value during partial typing.
type TypeErr struct {
	Err error
}

func (t TypeErr) String() string                  { return fmt.Sprintf("<type error: %v>", t.Err) }
func (t TypeErr) Apply(s Subst) Type               { return t }
func (t TypeErr) FreeTypeVariables() []string      { return nil }

// Unknown is a type that is deliberately left unconstrained: Unify accepts
// it against any type, on either side, without binding anything.
type Unknown struct{}

func (t Unknown) String() string             { return "?" }
func (t Unknown) Apply(s Subst) Type          { return t }
func (t Unknown) FreeTypeVariables() []string { return nil }

// Scheme is a universally quantified type: forall vars. t.
type Scheme struct {
	Vars []string
	Type Type
}

func (s Scheme) String() string {
	if len(s.Vars) == 0 {
		return s.Type.String()
	}
	return "forall " + strings.Join(s.Vars, " ") + ". " + s.Type.String()
}

// Apply applies a substitution to the scheme's body after removing the
// scheme's own bound variables from the substitution, so a quantified
// variable is never accidentally captured.
func (s Scheme) Apply(sub Subst) Scheme {
	restricted := make(Subst, len(sub))
	for k, v := range sub {
		restricted[k] = v
	}
	for _, v := range s.Vars {
		delete(restricted, v)
	}
	return Scheme{Vars: s.Vars, Type: s.Type.Apply(restricted)}
}

// FreeTypeVariables returns the scheme's free variables: those of the body
// minus the quantified ones.
func (s Scheme) FreeTypeVariables() []string {
	bound := make(map[string]bool, len(s.Vars))
	for _, v := range s.Vars {
		bound[v] = true
	}
	var out []string
	for _, v := range s.Type.FreeTypeVariables() {
		if !bound[v] {
			out = append(out, v)
		}
	}
	return out
}

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// sortedKeys is a small helper used by Subst.String and TypeEnv.String for
// deterministic diagnostic output.
func sortedKeys(m map[string]Type) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
