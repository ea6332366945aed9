package evaluator

import (
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
)

func TestStepEmptyPathErrors(t *testing.T) {
	_, err := Step(Env{}, nil, ast.NewAtom(ast.Int(1)))
	if _, ok := err.(*PathError); !ok {
		t.Fatalf("expected PathError, got %T", err)
	}
}

func TestStepEndReducesRoot(t *testing.T) {
	e := ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	got, err := Step(Env{}, Path{{Kind: End}}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "3" {
		t.Errorf("got %s, want 3", got)
	}
}

func TestStepNavigatesToChildAndRebuilds(t *testing.T) {
	inner := ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	outer := ast.NewBinary(ast.Operator{Kind: ast.OpMul}, inner, ast.NewAtom(ast.Int(10)))
	got, err := Step(Env{}, Path{{Kind: Fst}, {Kind: End}}, outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "(3 * 10)" {
		t.Errorf("got %s, want (3 * 10)", got)
	}
}

func TestStepOutOfRangeChildIsIndexError(t *testing.T) {
	e := ast.NewAtom(ast.Int(1))
	_, err := Step(Env{}, Path{{Kind: Fst}, {Kind: End}}, e)
	if _, ok := err.(*IndexError); !ok {
		t.Fatalf("expected IndexError, got %T", err)
	}
}

func TestStepNthSelectsExplicitIndex(t *testing.T) {
	third := ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	tup := ast.NewNTuple([]ast.Expr{ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)), third})
	outer := ast.NewList([]ast.Expr{tup})
	got, err := Step(Env{}, Path{{Kind: Fst}, {Kind: Nth, N: 2}, {Kind: End}}, outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[(1, 2, 3)]" {
		t.Errorf("got %s, want [(1, 2, 3)]", got)
	}
}

func TestWithChildRejectsNonTerminalPathAtLeaf(t *testing.T) {
	e := ast.NewAtom(ast.Int(1))
	_, err := Step(Env{}, Path{{Kind: End}, {Kind: End}}, e)
	if _, ok := err.(*PathError); !ok {
		t.Fatalf("expected PathError, got %T", err)
	}
}

func TestEvalAllReducesToFullNormalForm(t *testing.T) {
	env := Env{}
	inner := ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	e := ast.NewList([]ast.Expr{inner, ast.NewAtom(ast.Int(10))})
	got, err := EvalAll(env, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[3, 10]" {
		t.Errorf("got %s, want [3, 10]", got)
	}
}

func TestEvalAllCollectsErrorWithoutAbortingWholeWalk(t *testing.T) {
	good := ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	bad := ast.NewAtom(ast.Name("undefined"))
	e := ast.NewList([]ast.Expr{good, bad})
	got, err := EvalAll(Env{}, e)
	if err == nil {
		t.Fatal("expected an error from the unknown-name child")
	}
	list, ok := got.(*ast.ListExpr)
	if !ok {
		t.Fatalf("expected a ListExpr even on partial failure, got %T", got)
	}
	if list.Elems[0].String() != "3" {
		t.Errorf("expected the good element to still be reduced, got %s", list.Elems[0])
	}
}
