package evaluator

import (
	"math"

	"github.com/exprlab/stepwise/internal/ast"
)

// Arithmetic sequences admit only the closed set of enumerable base types:
// Int, Bool, Char (spec.md §3 invariants, §4.4.1).
func isEnumerableAtom(k ast.AtomKind) bool {
	return k == ast.AInt || k == ast.ABool || k == ast.AChar
}

func ordOf(a ast.Atom) int64 {
	switch a.Kind {
	case ast.AInt:
		return a.Int
	case ast.ABool:
		if a.Bool {
			return 1
		}
		return 0
	case ast.AChar:
		return int64(a.Char)
	}
	return 0
}

func fromOrd(kind ast.AtomKind, n int64) ast.Atom {
	switch kind {
	case ast.AInt:
		return ast.Int(n)
	case ast.ABool:
		return ast.Bool_(n != 0)
	case ast.AChar:
		return ast.Char(rune(n))
	}
	return ast.Atom{}
}

func topOf(kind ast.AtomKind) int64 {
	switch kind {
	case ast.AInt:
		return math.MaxInt64
	case ast.ABool:
		return 1
	case ast.AChar:
		return 0x10FFFF
	}
	return 0
}

func bottomOf(kind ast.AtomKind) int64 {
	switch kind {
	case ast.AInt:
		return math.MinInt64
	case ast.ABool:
		return 0
	case ast.AChar:
		return 0
	}
	return 0
}

// next implements "[x..]": enumerate upward from x by one to the top of the
// type, terminating at the top.
func next(x, top int64) (head *int64, cont *int64) {
	if x > top {
		return nil, nil
	}
	h := x
	if x == top {
		return &h, nil
	}
	n := x + 1
	return &h, &n
}

// nextTo implements "[x..z]": enumerate upward from x by one, terminating
// at z (empty if x > z).
func nextTo(x, z int64) (head *int64, cont *int64) {
	if x > z {
		return nil, nil
	}
	h := x
	if x == z {
		return &h, nil
	}
	n := x + 1
	return &h, &n
}

// nextStep implements "[x,y..]": step = y-x; ascending terminates when
// passing the top, descending when passing the bottom. A zero step with
// x==y emits [x] and terminates.
func nextStep(x, step, top, bottom int64) (head *int64, cont *int64) {
	h := x
	if step == 0 {
		return &h, nil
	}
	n := x + step
	if step > 0 {
		if n > top {
			return &h, nil
		}
		return &h, &n
	}
	if n < bottom {
		return &h, nil
	}
	return &h, &n
}

// nextStepTo implements "[x,y..z]": step = y-x, terminating at or past z in
// the direction given by the sign of the step.
func nextStepTo(x, step, z int64) (head *int64, cont *int64) {
	h := x
	if step == 0 {
		return &h, nil
	}
	if step > 0 && x > z {
		return nil, nil
	}
	if step < 0 && x < z {
		return nil, nil
	}
	n := x + step
	if step > 0 && n > z {
		return &h, nil
	}
	if step < 0 && n < z {
		return &h, nil
	}
	return &h, &n
}

// unfoldArithmSeq performs one unfold step of an ArithmSeq node, producing
// either a terminating List, or Binary(Colon, head, ArithmSeq(next...))
// (spec.md §4.4.1).
func unfoldArithmSeq(a *ast.ArithmSeq) (ast.Expr, error) {
	start, ok := atomOf(a.Start)
	if !ok || !isEnumerableAtom(start.Kind) {
		return nil, &CannotEvaluateError{Expr: a}
	}

	var headOrd, contOrd *int64
	switch {
	case a.Step == nil && a.End == nil:
		headOrd, contOrd = next(ordOf(start), topOf(start.Kind))
	case a.Step != nil && a.End == nil:
		step, ok := atomOf(a.Step)
		if !ok {
			return nil, &CannotEvaluateError{Expr: a}
		}
		headOrd, contOrd = nextStep(ordOf(start), ordOf(step)-ordOf(start), topOf(start.Kind), bottomOf(start.Kind))
	case a.Step == nil && a.End != nil:
		end, ok := atomOf(a.End)
		if !ok {
			return nil, &CannotEvaluateError{Expr: a}
		}
		headOrd, contOrd = nextTo(ordOf(start), ordOf(end))
	default:
		step, ok1 := atomOf(a.Step)
		end, ok2 := atomOf(a.End)
		if !ok1 || !ok2 {
			return nil, &CannotEvaluateError{Expr: a}
		}
		headOrd, contOrd = nextStepTo(ordOf(start), ordOf(step)-ordOf(start), ordOf(end))
	}

	if headOrd == nil {
		return ast.NewList(nil), nil
	}
	headExpr := ast.NewAtom(fromOrd(start.Kind, *headOrd))
	if contOrd == nil {
		return ast.NewList([]ast.Expr{headExpr}), nil
	}
	nextSeed := ast.NewAtom(fromOrd(start.Kind, *contOrd))
	nextStepExpr := a.Step
	if a.Step != nil {
		// The tail's second element is one step past its first, so the step
		// size carries over. If that element lies outside the type's range,
		// the tail is just the seed.
		delta := *contOrd - *headOrd
		if (delta > 0 && *contOrd > topOf(start.Kind)-delta) || (delta < 0 && *contOrd < bottomOf(start.Kind)-delta) {
			return ast.NewBinary(ast.Operator{Kind: ast.OpColon}, headExpr, ast.NewList([]ast.Expr{nextSeed})), nil
		}
		nextStepExpr = ast.NewAtom(fromOrd(start.Kind, *contOrd+delta))
	}
	return ast.NewBinary(ast.Operator{Kind: ast.OpColon}, headExpr, ast.NewArithmSeq(nextSeed, nextStepExpr, a.End)), nil
}
