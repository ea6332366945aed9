package infer

import (
	"testing"

	"github.com/exprlab/stepwise/internal/typesystem"
)

func TestSolveThreadsSubstitutionAcrossConstraints(t *testing.T) {
	cs := []Constraint{
		{Left: typesystem.Var{Name: "a"}, Right: typesystem.IntType},
		{Left: typesystem.Var{Name: "b"}, Right: typesystem.Var{Name: "a"}},
	}
	s, err := Solve(cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := (typesystem.Var{Name: "b"}).Apply(s); got != typesystem.IntType {
		t.Errorf("b resolved to %v, want Int", got)
	}
}

func TestSolveFailsOnConflictingConstraints(t *testing.T) {
	cs := []Constraint{
		{Left: typesystem.Var{Name: "a"}, Right: typesystem.IntType},
		{Left: typesystem.Var{Name: "a"}, Right: typesystem.BoolType},
	}
	_, err := Solve(cs)
	if _, ok := err.(*typesystem.UnificationFailError); !ok {
		t.Fatalf("expected UnificationFailError, got %T (%v)", err, err)
	}
}

func TestSolveEmptyConstraintsYieldsNullSubst(t *testing.T) {
	s, err := Solve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 0 {
		t.Errorf("expected null subst, got %v", s)
	}
}
