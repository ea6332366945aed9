package infer

import (
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

func TestBinaryOpSchemaArithmetic(t *testing.T) {
	t1, t2, result, extra, err := binaryOpSchema(typesystem.TypeEnv{}, ast.Operator{Kind: ast.OpAdd}, NewFresher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if t1 != typesystem.IntType || t2 != typesystem.IntType || result != typesystem.IntType {
		t.Errorf("got (%v, %v, %v), want all Int", t1, t2, result)
	}
	if len(extra) != 0 {
		t.Errorf("expected no extra constraints, got %v", extra)
	}
}

func TestBinaryOpSchemaConsSharesElementVar(t *testing.T) {
	t1, t2, result, _, err := binaryOpSchema(typesystem.TypeEnv{}, ast.Operator{Kind: ast.OpColon}, NewFresher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := t2.(typesystem.List)
	if !ok || list.Elem != t1 {
		t.Errorf("expected t2 = [t1], got t1=%v t2=%v", t1, t2)
	}
	if result.String() != t2.String() {
		t.Errorf("expected result = t2, got %v / %v", result, t2)
	}
}

func TestBinaryOpSchemaInfixFuncLooksUpEnv(t *testing.T) {
	env := typesystem.TypeEnv{
		"add": typesystem.Scheme{Type: typesystem.Arr{From: typesystem.IntType, To: typesystem.Arr{From: typesystem.IntType, To: typesystem.IntType}}},
	}
	t1, t2, result, _, err := binaryOpSchema(env, ast.Operator{Kind: ast.OpInfixFunc, Name: "add"}, NewFresher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if t1 != typesystem.IntType || t2 != typesystem.IntType || result != typesystem.IntType {
		t.Errorf("got (%v, %v, %v)", t1, t2, result)
	}
}

func TestBinaryOpSchemaInfixFuncUnboundNameErrors(t *testing.T) {
	_, _, _, _, err := binaryOpSchema(typesystem.TypeEnv{}, ast.Operator{Kind: ast.OpInfixFunc, Name: "nope"}, NewFresher())
	if _, ok := err.(*typesystem.UnboundVariableError); !ok {
		t.Fatalf("expected UnboundVariableError, got %T (%v)", err, err)
	}
}
