package infer

import (
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/typesystem"
)

func TestExtractBindingNameBindsTToTheName(t *testing.T) {
	bindings, cs, err := ExtractBinding(typesystem.TypeEnv{}, ast.NewLit(ast.Name("x")), typesystem.IntType, NewFresher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs) != 0 {
		t.Errorf("expected no constraints for a bare name, got %v", cs)
	}
	if bindings["x"].Type != typesystem.IntType {
		t.Errorf("got %v, want Int", bindings["x"].Type)
	}
}

func TestExtractBindingLiteralConstrainsT(t *testing.T) {
	_, cs, err := ExtractBinding(typesystem.TypeEnv{}, ast.NewLit(ast.Int(0)), typesystem.Var{Name: "a"}, NewFresher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs) != 1 || cs[0].Right != typesystem.IntType {
		t.Fatalf("expected one constraint pinning t to Int, got %v", cs)
	}
}

func TestExtractBindingConsDestructuresListElem(t *testing.T) {
	pat := ast.NewConsLit(ast.NewLit(ast.Name("h")), ast.NewLit(ast.Name("t")))
	bindings, cs, err := ExtractBinding(typesystem.TypeEnv{}, pat, typesystem.Var{Name: "a"}, NewFresher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs) != 1 {
		t.Fatalf("expected one list-shape constraint, got %v", cs)
	}
	if _, ok := bindings["h"]; !ok {
		t.Error("expected h bound")
	}
	if _, ok := bindings["t"]; !ok {
		t.Error("expected t bound")
	}
}

func TestExtractBindingConstrLitUnknownConstructorErrors(t *testing.T) {
	pat := ast.NewConstrLit("Nope", nil)
	_, _, err := ExtractBinding(typesystem.TypeEnv{}, pat, typesystem.Var{Name: "a"}, NewFresher())
	if _, ok := err.(*typesystem.UnknownDataConstructorError); !ok {
		t.Fatalf("expected UnknownDataConstructorError, got %T (%v)", err, err)
	}
}

func TestExtractBindingConstrLitDestructuresArgs(t *testing.T) {
	env := typesystem.TypeEnv{
		"Just": typesystem.Scheme{
			Vars: []string{"a"},
			Type: typesystem.Arr{From: typesystem.Var{Name: "a"}, To: typesystem.TypeCons{Name: "Maybe", Params: []typesystem.Type{typesystem.Var{Name: "a"}}}},
		},
	}
	pat := ast.NewConstrLit("Just", []ast.Binding{ast.NewLit(ast.Name("x"))})
	bindings, cs, err := ExtractBinding(env, pat, typesystem.TypeCons{Name: "Maybe", Params: []typesystem.Type{typesystem.IntType}}, NewFresher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs) != 1 {
		t.Fatalf("expected one constraint tying the result type, got %v", cs)
	}
	if _, ok := bindings["x"]; !ok {
		t.Error("expected x bound to the constructor's argument type")
	}
}

func TestExtractBindingTupleArityMatchesElems(t *testing.T) {
	pat := ast.NewNTupleLit([]ast.Binding{ast.NewLit(ast.Name("a")), ast.NewLit(ast.Name("b"))})
	bindings, cs, err := ExtractBinding(typesystem.TypeEnv{}, pat, typesystem.Var{Name: "t"}, NewFresher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs) != 1 {
		t.Fatalf("expected one tuple-shape constraint, got %v", cs)
	}
	if len(bindings) != 2 {
		t.Errorf("expected 2 bound names, got %d", len(bindings))
	}
}
