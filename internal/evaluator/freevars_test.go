package evaluator

import (
	"sort"
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
)

func sortedFreeVars(e ast.Expr) []string {
	vs := FreeVariables(e)
	sort.Strings(vs)
	return vs
}

func TestFreeVariablesLambdaExcludesParams(t *testing.T) {
	lam := ast.NewLambda(
		[]ast.Binding{ast.NewLit(ast.Name("x"))},
		ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Name("x")), ast.NewAtom(ast.Name("y"))),
	)
	got := sortedFreeVars(lam)
	if len(got) != 1 || got[0] != "y" {
		t.Errorf("got %v, want [y]", got)
	}
}

func TestFreeVariablesLetExcludesOwnBindingsFromBodyAndValues(t *testing.T) {
	letExpr := ast.NewLet(
		[]ast.LetBinding{{Pattern: ast.NewLit(ast.Name("x")), Value: ast.NewAtom(ast.Name("x"))}},
		ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Name("x")), ast.NewAtom(ast.Name("z"))),
	)
	got := sortedFreeVars(letExpr)
	if len(got) != 1 || got[0] != "z" {
		t.Errorf("got %v, want [z] (recursive let binds x in both value and body)", got)
	}
}

func TestFreeVariablesListCompGeneratorScopesOverLaterQualifiers(t *testing.T) {
	lc := ast.NewListComp(
		ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Name("x")), ast.NewAtom(ast.Name("y"))),
		[]ast.Qual{
			{Kind: ast.QGen, Binding: ast.NewLit(ast.Name("x")), Expr: ast.NewAtom(ast.Name("xs"))},
			{Kind: ast.QGuard, Expr: ast.NewAtom(ast.Name("x"))},
		},
	)
	got := sortedFreeVars(lc)
	want := []string{"xs", "y"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestFreeVariablesPlainNameIsItself(t *testing.T) {
	got := FreeVariables(ast.NewAtom(ast.Name("x")))
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("got %v, want [x]", got)
	}
}

func TestFreeVariablesLiteralHasNone(t *testing.T) {
	got := FreeVariables(ast.NewAtom(ast.Int(1)))
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}
