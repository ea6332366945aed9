package infer

import (
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

func TestInferLiteral(t *testing.T) {
	ty, err := Infer(typesystem.TypeEnv{}, ast.NewAtom(ast.Int(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty != typesystem.IntType {
		t.Errorf("got %v, want Int", ty)
	}
}

func TestInferIdentityLambdaIsPolymorphic(t *testing.T) {
	lam := ast.NewLambda([]ast.Binding{ast.NewLit(ast.Name("x"))}, ast.NewAtom(ast.Name("x")))
	ty, err := Infer(typesystem.TypeEnv{}, lam)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ty.String(); got != "a -> a" {
		t.Errorf("got %s, want a -> a", got)
	}
}

func TestInferIfUnifiesBranches(t *testing.T) {
	e := ast.NewIf(ast.NewAtom(ast.Bool_(true)), ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	ty, err := Infer(typesystem.TypeEnv{}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty != typesystem.IntType {
		t.Errorf("got %v, want Int", ty)
	}
}

func TestInferIfBranchMismatchFails(t *testing.T) {
	e := ast.NewIf(ast.NewAtom(ast.Bool_(true)), ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Bool_(false)))
	_, err := Infer(typesystem.TypeEnv{}, e)
	if _, ok := err.(*typesystem.UnificationFailError); !ok {
		t.Fatalf("expected UnificationFailError, got %T (%v)", err, err)
	}
}

func TestInferUnboundVariableFails(t *testing.T) {
	_, err := Infer(typesystem.TypeEnv{}, ast.NewAtom(ast.Name("nope")))
	if _, ok := err.(*typesystem.UnboundVariableError); !ok {
		t.Fatalf("expected UnboundVariableError, got %T (%v)", err, err)
	}
}

func TestInferApplicationOfKnownFunction(t *testing.T) {
	env := typesystem.TypeEnv{"not": typesystem.Scheme{Type: typesystem.Arr{From: typesystem.BoolType, To: typesystem.BoolType}}}
	app := ast.NewApp(ast.NewAtom(ast.Name("not")), []ast.Expr{ast.NewAtom(ast.Bool_(true))})
	ty, err := Infer(env, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty != typesystem.BoolType {
		t.Errorf("got %v, want Bool", ty)
	}
}

func TestInferArithmSeqOfNonEnumerableTypeFails(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewList(nil), nil, nil)
	_, err := Infer(typesystem.TypeEnv{}, seq)
	if err == nil {
		t.Fatal("expected an error: [t] has no Enum instance")
	}
}

func TestInferListComprehension(t *testing.T) {
	lc := ast.NewListComp(
		ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Name("x")), ast.NewAtom(ast.Int(1))),
		[]ast.Qual{
			{Kind: ast.QGen, Binding: ast.NewLit(ast.Name("x")), Expr: ast.NewList([]ast.Expr{ast.NewAtom(ast.Int(1))})},
		},
	)
	ty, err := Infer(typesystem.TypeEnv{}, lc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ty.String(); got != "[Int]" {
		t.Errorf("got %s, want [Int]", got)
	}
}
