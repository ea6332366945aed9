package evaluator

import (
	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/binding"
)

// tokenIndex maps a navigation token onto a Children() index. Fst/Snd/Thrd
// are convenience aliases for the first three children; Nth carries an
// explicit index (spec.md §4.4 "Path").
func tokenIndex(tok Token) int {
	switch tok.Kind {
	case Fst:
		return 0
	case Snd:
		return 1
	case Thrd:
		return 2
	default:
		return tok.N
	}
}

// withChild rebuilds e with its i-th child (in Children() order) replaced
// by nc. Every node type lists its own children explicitly, since Expr has
// no generic constructor.
func withChild(e ast.Expr, i int, nc ast.Expr) (ast.Expr, error) {
	switch x := e.(type) {
	case *ast.ListExpr:
		if i < 0 || i >= len(x.Elems) {
			return nil, &IndexError{Index: i, Len: len(x.Elems)}
		}
		elems := append([]ast.Expr{}, x.Elems...)
		elems[i] = nc
		return ast.NewList(elems), nil

	case *ast.NTupleExpr:
		if i < 0 || i >= len(x.Elems) {
			return nil, &IndexError{Index: i, Len: len(x.Elems)}
		}
		elems := append([]ast.Expr{}, x.Elems...)
		elems[i] = nc
		return ast.NewNTuple(elems), nil

	case *ast.BinaryExpr:
		switch i {
		case 0:
			return ast.NewBinary(x.OpNode.Op, nc, x.Right), nil
		case 1:
			return ast.NewBinary(x.OpNode.Op, x.Left, nc), nil
		}
		return nil, &IndexError{Index: i, Len: 2}

	case *ast.UnaryExpr:
		if i == 0 {
			return ast.NewUnary(x.OpNode.Op, nc), nil
		}
		return nil, &IndexError{Index: i, Len: 1}

	case *ast.SectLExpr:
		if i == 0 {
			return ast.NewSectL(nc, x.OpNode.Op), nil
		}
		return nil, &IndexError{Index: i, Len: 1}

	case *ast.SectRExpr:
		if i == 0 {
			return ast.NewSectR(x.OpNode.Op, nc), nil
		}
		return nil, &IndexError{Index: i, Len: 1}

	case *ast.PrefixOpExpr:
		return nil, &IndexError{Index: i, Len: 0}

	case *ast.IfExpr:
		switch i {
		case 0:
			return ast.NewIf(nc, x.Then, x.Else), nil
		case 1:
			return ast.NewIf(x.Cond, nc, x.Else), nil
		case 2:
			return ast.NewIf(x.Cond, x.Then, nc), nil
		}
		return nil, &IndexError{Index: i, Len: 3}

	case *ast.ArithmSeq:
		idx := 0
		if i == idx {
			return ast.NewArithmSeq(nc, x.Step, x.End), nil
		}
		idx++
		if x.Step != nil {
			if i == idx {
				return ast.NewArithmSeq(x.Start, nc, x.End), nil
			}
			idx++
		}
		if x.End != nil {
			if i == idx {
				return ast.NewArithmSeq(x.Start, x.Step, nc), nil
			}
			idx++
		}
		return nil, &IndexError{Index: i, Len: idx}

	case *ast.LetExpr:
		n := len(x.Bindings)
		if i >= 0 && i < n {
			newBindings := append([]ast.LetBinding{}, x.Bindings...)
			newBindings[i] = ast.LetBinding{Pattern: x.Bindings[i].Pattern, Value: nc}
			return ast.NewLet(newBindings, x.Body), nil
		}
		if i == n {
			return ast.NewLet(x.Bindings, nc), nil
		}
		return nil, &IndexError{Index: i, Len: n + 1}

	case *ast.Lambda:
		if i == 0 {
			return ast.NewLambda(x.Params, nc), nil
		}
		return nil, &IndexError{Index: i, Len: 1}

	case *ast.App:
		if i == 0 {
			return ast.NewApp(nc, x.Args), nil
		}
		j := i - 1
		if j < 0 || j >= len(x.Args) {
			return nil, &IndexError{Index: i, Len: len(x.Args) + 1}
		}
		args := append([]ast.Expr{}, x.Args...)
		args[j] = nc
		return ast.NewApp(x.Head, args), nil

	case *ast.ListComp:
		if i == 0 {
			return ast.NewListComp(nc, x.Quals), nil
		}
		j := i - 1
		if j < 0 || j >= len(x.Quals) {
			return nil, &IndexError{Index: i, Len: len(x.Quals) + 1}
		}
		quals := append([]ast.Qual{}, x.Quals...)
		quals[j] = ast.Qual{Kind: quals[j].Kind, Binding: quals[j].Binding, Expr: nc}
		return ast.NewListComp(x.Head, quals), nil
	}
	return nil, &IndexError{Index: i, Len: 0}
}

// Step performs one reduction at the sub-expression path navigates to,
// rebuilding every ancestor on the way back out (spec.md §6 "step").
func Step(env Env, path Path, expr ast.Expr) (ast.Expr, error) {
	if len(path) == 0 {
		return nil, &PathError{Path: path, Expr: expr}
	}
	return stepAt(env, path, expr)
}

func stepAt(env Env, path Path, e ast.Expr) (ast.Expr, error) {
	tok := path[0]
	if tok.Kind == End {
		if len(path) != 1 {
			return nil, &PathError{Path: path, Expr: e}
		}
		return eval1(env, e)
	}
	idx := tokenIndex(tok)
	children := e.Children()
	if idx < 0 || idx >= len(children) {
		return nil, &IndexError{Index: idx, Len: len(children)}
	}
	if len(path) == 1 {
		return nil, &PathError{Path: path, Expr: e}
	}
	newChild, err := stepAt(env, path[1:], children[idx])
	if err != nil {
		return nil, err
	}
	return withChild(e, idx, newChild)
}

// EvalAll drives eval1/Step to a fixpoint: the root is reduced to WHNF, then
// every child is recursively normalized the same way, so the final result
// has no further reducible sub-expression anywhere (spec.md §6 "evalAll").
// Errors encountered along the way are collected rather than aborting the
// whole walk, so a partially-evaluated tree is still returned.
func EvalAll(env Env, expr ast.Expr) (ast.Expr, error) {
	cur := expr
	var errs Errors
	for !binding.IsWHNF(cur) {
		next, err := eval1(env, cur)
		if err != nil {
			errs = append(errs, err)
			break
		}
		cur = next
	}

	children := cur.Children()
	if len(children) == 0 {
		return cur, errsOrNil(errs)
	}

	rebuilt := cur
	for i, c := range children {
		nc, err := EvalAll(env, c)
		if err != nil {
			errs = append(errs, err)
		}
		if nc != c {
			if r, werr := withChild(rebuilt, i, nc); werr == nil {
				rebuilt = r
			}
		}
	}
	return rebuilt, errsOrNil(errs)
}

func errsOrNil(e Errors) error {
	if len(e) == 0 {
		return nil
	}
	return e
}
