package ast

// Binding is a pattern appearing in a lambda parameter, a let-binding, or a
// Def clause head (spec.md §3 "Binding pattern").
type Binding interface {
	Meta() *Meta
	String() string
	isBinding()
}

type base struct {
	M Meta
}

func (b *base) Meta() *Meta { return &b.M }

// Lit matches an exact atom.
type Lit struct {
	base
	Atom Atom
}

func (*Lit) isBinding()     {}
func (l *Lit) String() string { return l.Atom.String() }

// NewLit constructs a Lit binding. A bare Name atom is a catch-all variable
// binding (it "binds unconditionally" per spec.md §4.3).
func NewLit(a Atom) *Lit { return &Lit{Atom: a} }

// ConsLit matches Binary(Colon, head, tail) pointwise (spec.md §4.3).
type ConsLit struct {
	base
	Head, Tail Binding
}

func (*ConsLit) isBinding() {}
func (c *ConsLit) String() string {
	return "(" + c.Head.String() + ":" + c.Tail.String() + ")"
}

func NewConsLit(head, tail Binding) *ConsLit { return &ConsLit{Head: head, Tail: tail} }

// ListLit matches a List of the same arity, pointwise.
type ListLit struct {
	base
	Elems []Binding
}

func (*ListLit) isBinding() {}
func (l *ListLit) String() string {
	s := "["
	for i, e := range l.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

func NewListLit(elems []Binding) *ListLit { return &ListLit{Elems: elems} }

// NTupleLit matches an NTuple of equal arity, pointwise.
type NTupleLit struct {
	base
	Elems []Binding
}

func (*NTupleLit) isBinding() {}
func (t *NTupleLit) String() string {
	s := "("
	for i, e := range t.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}

func NewNTupleLit(elems []Binding) *NTupleLit { return &NTupleLit{Elems: elems} }

// ConstrLit matches an application of a named data constructor to
// sub-patterns, e.g. Just x or Cons h t.
type ConstrLit struct {
	base
	Name string
	Args []Binding
}

func (*ConstrLit) isBinding() {}
func (c *ConstrLit) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a.String()
	}
	return s
}

func NewConstrLit(name string, args []Binding) *ConstrLit {
	return &ConstrLit{Name: name, Args: args}
}

// NameOf reports the bound variable name if b is a plain name pattern, i.e.
// Lit(Name n); used pervasively by the pattern/binding engine and the
// inferencer's extractBinding.
func NameOf(b Binding) (string, bool) {
	if l, ok := b.(*Lit); ok && l.Atom.Kind == AName {
		return l.Atom.Name, true
	}
	return "", false
}

// Vars returns every pattern-variable name bound transitively by b, in
// left-to-right order, including duplicates (used by the overlap check —
// spec.md §3 invariants).
func Vars(b Binding) []string {
	switch p := b.(type) {
	case *Lit:
		if n, ok := NameOf(p); ok {
			return []string{n}
		}
		return nil
	case *ConsLit:
		return append(Vars(p.Head), Vars(p.Tail)...)
	case *ListLit:
		var out []string
		for _, e := range p.Elems {
			out = append(out, Vars(e)...)
		}
		return out
	case *NTupleLit:
		var out []string
		for _, e := range p.Elems {
			out = append(out, Vars(e)...)
		}
		return out
	case *ConstrLit:
		var out []string
		for _, a := range p.Args {
			out = append(out, Vars(a)...)
		}
		return out
	}
	return nil
}
