package evaluator

import (
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
)

func unfoldToList(t *testing.T, seq *ast.ArithmSeq, limit int) []int64 {
	t.Helper()
	var out []int64
	cur := ast.Expr(seq)
	for i := 0; i < limit; i++ {
		switch x := cur.(type) {
		case *ast.ArithmSeq:
			next, err := unfoldArithmSeq(x)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			cur = next
		case *ast.BinaryExpr:
			a, ok := atomOf(x.Left)
			if !ok {
				t.Fatalf("expected head atom, got %T", x.Left)
			}
			out = append(out, a.Int)
			cur = x.Right
		case *ast.ListExpr:
			for _, e := range x.Elems {
				a, ok := atomOf(e)
				if !ok {
					t.Fatalf("expected atom in terminal list, got %T", e)
				}
				out = append(out, a.Int)
			}
			return out
		default:
			t.Fatalf("unexpected node %T mid-unfold", x)
		}
	}
	t.Fatalf("sequence did not terminate within %d unfold steps", limit)
	return nil
}

func TestUnfoldArithmSeqBoundedRange(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewAtom(ast.Int(1)), nil, ast.NewAtom(ast.Int(4)))
	got := unfoldToList(t, seq, 10)
	want := []int64{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestUnfoldArithmSeqEmptyWhenStartPastEnd(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewAtom(ast.Int(5)), nil, ast.NewAtom(ast.Int(1)))
	got, err := unfoldArithmSeq(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[]" {
		t.Errorf("got %s, want []", got)
	}
}

func TestUnfoldArithmSeqExplicitStep(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(3)), ast.NewAtom(ast.Int(10)))
	got := unfoldToList(t, seq, 10)
	want := []int64{1, 3, 5, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestUnfoldArithmSeqDescendingStep(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewAtom(ast.Int(10)), ast.NewAtom(ast.Int(8)), ast.NewAtom(ast.Int(4)))
	got := unfoldToList(t, seq, 10)
	want := []int64{10, 8, 6, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestUnfoldArithmSeqZeroStepEmitsSingletonThenStops(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewAtom(ast.Int(5)), ast.NewAtom(ast.Int(5)), nil)
	got, err := unfoldArithmSeq(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := got.(*ast.ListExpr)
	if !ok {
		t.Fatalf("expected the sequence to terminate at once with a singleton list, got %T", got)
	}
	if len(list.Elems) != 1 {
		t.Fatalf("expected exactly one element, got %d", len(list.Elems))
	}
	if got.String() != "[5]" {
		t.Errorf("got %s, want [5] (zero-step sequence terminates)", got)
	}
}

func TestUnfoldArithmSeqCharEnumeration(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewAtom(ast.Char('a')), nil, ast.NewAtom(ast.Char('c')))
	got := unfoldToList(t, seq, 10)
	want := []int64{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnfoldArithmSeqNonEnumerableTypeErrors(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewList(nil), nil, nil)
	_, err := unfoldArithmSeq(seq)
	if _, ok := err.(*CannotEvaluateError); !ok {
		t.Fatalf("expected CannotEvaluateError, got %T", err)
	}
}
