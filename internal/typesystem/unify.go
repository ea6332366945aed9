package typesystem

// Unify finds the most general substitution that makes t1 and t2 equal
// (C5 "Phase 2 - unification").
func Unify(t1, t2 Type) (Subst, error) {
	if _, ok := t2.(Unknown); ok {
		return NullSubst(), nil
	}
	switch a := t1.(type) {
	case Unknown:
		return NullSubst(), nil
	case Var:
		return bind(a.Name, t2)
	case Arr:
		b, ok := t2.(Arr)
		if !ok {
			if v, ok := t2.(Var); ok {
				return bind(v.Name, t1)
			}
			return nil, &UnificationFailError{T1: t1, T2: t2}
		}
		s1, err := Unify(a.From, b.From)
		if err != nil {
			return nil, err
		}
		s2, err := Unify(a.To.Apply(s1), b.To.Apply(s1))
		if err != nil {
			return nil, err
		}
		return Compose(s2, s1), nil
	case Con:
		b, ok := t2.(Con)
		if ok {
			if a.Name == b.Name {
				return NullSubst(), nil
			}
			return nil, &UnificationFailError{T1: t1, T2: t2}
		}
		if v, ok := t2.(Var); ok {
			return bind(v.Name, t1)
		}
		return nil, &UnificationFailError{T1: t1, T2: t2}
	case List:
		b, ok := t2.(List)
		if !ok {
			if v, ok := t2.(Var); ok {
				return bind(v.Name, t1)
			}
			return nil, &UnificationFailError{T1: t1, T2: t2}
		}
		return Unify(a.Elem, b.Elem)
	case Tuple:
		b, ok := t2.(Tuple)
		if !ok {
			if v, ok := t2.(Var); ok {
				return bind(v.Name, t1)
			}
			return nil, &UnificationFailError{T1: t1, T2: t2}
		}
		if len(a.Elems) != len(b.Elems) {
			return nil, &UnificationFailError{T1: t1, T2: t2}
		}
		s := NullSubst()
		for i := range a.Elems {
			s2, err := Unify(a.Elems[i].Apply(s), b.Elems[i].Apply(s))
			if err != nil {
				return nil, err
			}
			s = Compose(s2, s)
		}
		return s, nil
	case TypeCons:
		b, ok := t2.(TypeCons)
		if !ok {
			if v, ok := t2.(Var); ok {
				return bind(v.Name, t1)
			}
			return nil, &UnificationFailError{T1: t1, T2: t2}
		}
		if a.Name != b.Name || len(a.Params) != len(b.Params) {
			return nil, &UnificationFailError{T1: t1, T2: t2}
		}
		s := NullSubst()
		for i := range a.Params {
			s2, err := Unify(a.Params[i].Apply(s), b.Params[i].Apply(s))
			if err != nil {
				return nil, err
			}
			s = Compose(s2, s)
		}
		return s, nil
	default:
		if v, ok := t2.(Var); ok {
			return bind(v.Name, t1)
		}
		if _, ok := t2.(Unknown); ok {
			return NullSubst(), nil
		}
		return nil, &UnificationFailError{T1: t1, T2: t2}
	}
}

// bind binds a type variable to t, unless t is the same variable (no-op) or
// t contains the variable (occurs check, InfiniteType).
func bind(name string, t Type) (Subst, error) {
	if v, ok := t.(Var); ok && v.Name == name {
		return NullSubst(), nil
	}
	if occurs(name, t) {
		return nil, &InfiniteTypeError{Var: name, Type: t}
	}
	return Subst{name: t}, nil
}

func occurs(name string, t Type) bool {
	for _, v := range t.FreeTypeVariables() {
		if v == name {
			return true
		}
	}
	return false
}
