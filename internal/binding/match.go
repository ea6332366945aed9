package binding

import "github.com/exprlab/stepwise/internal/ast"

// Subst maps a pattern-variable name to the sub-expression it captured.
// This is distinct from typesystem.Subst (which maps type variables to
// types) — spec.md §4.3 calls it "Result<Subst-from-name-to-expr, ...>".
type Subst map[string]ast.Expr

func merge(a, b Subst) Subst {
	out := make(Subst, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Match attempts to match pattern against expr, returning the bindings it
// captures, a StrictnessError if expr must first be forced further, or a
// MatchingError if the shapes are incompatible (spec.md §4.3).
func Match(pattern ast.Binding, expr ast.Expr) (Subst, error) {
	switch p := pattern.(type) {
	case *ast.Lit:
		if name, ok := ast.NameOf(p); ok {
			return Subst{name: expr}, nil
		}
		if !IsWHNF(expr) {
			return nil, &StrictnessError{Pattern: pattern, Expr: expr}
		}
		a, ok := expr.(*ast.AtomExpr)
		if !ok || !p.Atom.Equal(a.Value) {
			return nil, &MatchingError{Pattern: pattern, Expr: expr}
		}
		return Subst{}, nil

	case *ast.ConsLit:
		reshaped := ReshapeCons(expr)
		if bin, ok := reshaped.(*ast.BinaryExpr); ok && bin.OpNode.Op.Kind == ast.OpColon {
			s1, err := Match(p.Head, bin.Left)
			if err != nil {
				return nil, err
			}
			s2, err := Match(p.Tail, bin.Right)
			if err != nil {
				return nil, err
			}
			return merge(s1, s2), nil
		}
		if !IsWHNF(expr) {
			return nil, &StrictnessError{Pattern: pattern, Expr: expr}
		}
		return nil, &MatchingError{Pattern: pattern, Expr: expr}

	case *ast.ListLit:
		list, ok := expr.(*ast.ListExpr)
		if !ok {
			if !IsWHNF(expr) {
				return nil, &StrictnessError{Pattern: pattern, Expr: expr}
			}
			return nil, &MatchingError{Pattern: pattern, Expr: expr}
		}
		if len(list.Elems) != len(p.Elems) {
			return nil, &MatchingError{Pattern: pattern, Expr: expr}
		}
		out := Subst{}
		for i, elemPat := range p.Elems {
			s, err := Match(elemPat, list.Elems[i])
			if err != nil {
				return nil, err
			}
			out = merge(out, s)
		}
		return out, nil

	case *ast.NTupleLit:
		tup, ok := expr.(*ast.NTupleExpr)
		if !ok {
			if !IsWHNF(expr) {
				return nil, &StrictnessError{Pattern: pattern, Expr: expr}
			}
			return nil, &MatchingError{Pattern: pattern, Expr: expr}
		}
		if len(tup.Elems) != len(p.Elems) {
			return nil, &MatchingError{Pattern: pattern, Expr: expr}
		}
		out := Subst{}
		for i, elemPat := range p.Elems {
			s, err := Match(elemPat, tup.Elems[i])
			if err != nil {
				return nil, err
			}
			out = merge(out, s)
		}
		return out, nil

	case *ast.ConstrLit:
		name, args, ok := FlattenConstrApp(expr)
		if !ok {
			if !IsWHNF(expr) {
				return nil, &StrictnessError{Pattern: pattern, Expr: expr}
			}
			return nil, &MatchingError{Pattern: pattern, Expr: expr}
		}
		if name != p.Name || len(args) != len(p.Args) {
			return nil, &MatchingError{Pattern: pattern, Expr: expr}
		}
		out := Subst{}
		for i, argPat := range p.Args {
			s, err := Match(argPat, args[i])
			if err != nil {
				return nil, err
			}
			out = merge(out, s)
		}
		return out, nil
	}
	return nil, &MatchingError{Pattern: pattern, Expr: expr}
}

// ReshapeCons turns a non-empty List literal into Binary(Colon, head, tail)
// so a ConsLit pattern can match it without a separate List case (spec.md
// §4.3: "it also matches List(e:es) after first re-shaping it").
func ReshapeCons(expr ast.Expr) ast.Expr {
	if list, ok := expr.(*ast.ListExpr); ok && len(list.Elems) > 0 {
		return ast.NewBinary(ast.Operator{Kind: ast.OpColon}, list.Elems[0], ast.NewList(list.Elems[1:]))
	}
	return expr
}

// FlattenConstrApp decomposes expr into (constructor name, argument list)
// if its head, following through any chain of App nodes, is an
// Atom(Constr _).
func FlattenConstrApp(expr ast.Expr) (string, []ast.Expr, bool) {
	switch e := expr.(type) {
	case *ast.AtomExpr:
		if e.Value.Kind == ast.AConstr {
			return e.Value.Name, nil, true
		}
	case *ast.App:
		if name, headArgs, ok := FlattenConstrApp(e.Head); ok {
			return name, append(append([]ast.Expr{}, headArgs...), e.Args...), true
		}
	}
	return "", nil, false
}
