package infer

import (
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

func TestApplySubstToTreeRefinesEveryNode(t *testing.T) {
	e := ast.NewAtom(ast.Name("x"))
	env := typesystem.TypeEnv{"x": typesystem.Scheme{Type: typesystem.Var{Name: "a"}}}
	Generate(env, NewFresher(), e)
	ApplySubstToTree(typesystem.Subst{"a": typesystem.IntType}, e)
	if e.Meta().Type != typesystem.IntType {
		t.Errorf("got %v, want Int", e.Meta().Type)
	}
}

func TestTypeTreePartialTypesGoodSiblingsDespiteOneBadLeaf(t *testing.T) {
	good := ast.NewAtom(ast.Int(1))
	bad := ast.NewAtom(ast.Name("undefined"))
	e := ast.NewList([]ast.Expr{good, bad})
	TypeTreePartial(typesystem.TypeEnv{}, NewFresher(), e)

	if _, ok := e.Meta().Type.(typesystem.TypeErr); !ok {
		t.Errorf("expected the root to carry a TypeErr since one element failed, got %v", e.Meta().Type)
	}
	if _, ok := bad.Meta().Type.(typesystem.TypeErr); !ok {
		t.Errorf("expected the bad leaf itself to carry a TypeErr, got %v", bad.Meta().Type)
	}
}

func TestTypeTreePartialSucceedsWholesaleWhenWellTyped(t *testing.T) {
	e := ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	TypeTreePartial(typesystem.TypeEnv{}, NewFresher(), e)
	if e.Meta().Type != typesystem.IntType {
		t.Errorf("got %v, want Int", e.Meta().Type)
	}
}
