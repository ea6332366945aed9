package infer

import (
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
)

func TestIndexAssignsPreOrderIndicesToEveryNode(t *testing.T) {
	e := ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	count := Index(e)
	if count != 3 {
		t.Fatalf("got count %d, want 3 (root + 2 leaves)", count)
	}
	if !e.Meta().HasIndex || e.Meta().Index != 0 {
		t.Errorf("expected root index 0, got %+v", e.Meta())
	}
	left, right := e.Children()[0], e.Children()[1]
	if left.Meta().Index != 1 || right.Meta().Index != 2 {
		t.Errorf("expected children indexed 1, 2 in order, got %d, %d", left.Meta().Index, right.Meta().Index)
	}
}
