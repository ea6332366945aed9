package binding

import (
	"fmt"

	"github.com/exprlab/stepwise/internal/ast"
)

// MatchError is implemented by every pattern-matching failure variant
// (spec.md §4.3).
type MatchError interface {
	error
	matchError()
}

// MatchingError means the pattern and expression are both fully evaluated
// (WHNF) but their shapes disagree — the clause simply does not apply.
type MatchingError struct {
	Pattern ast.Binding
	Expr    ast.Expr
}

func (e *MatchingError) Error() string {
	return fmt.Sprintf("pattern %s does not match %s", e.Pattern, e.Expr)
}
func (*MatchingError) matchError() {}

// StrictnessError means expr is not yet in WHNF, so the caller must force
// it further (by eval1) before the match can be decided. This is what
// drives constructor-directed laziness (spec.md §4.4).
type StrictnessError struct {
	Pattern ast.Binding
	Expr    ast.Expr
}

func (e *StrictnessError) Error() string {
	return fmt.Sprintf("expression %s not yet forced enough to match %s", e.Expr, e.Pattern)
}
func (*StrictnessError) matchError() {}

// TooFewArguments means a clause's pattern list is longer than the actual
// argument list; the caller decides between "try next clause" and "answer
// with a lambda" (spec.md §4.4 tryClauses).
type TooFewArguments struct {
	Patterns []ast.Binding
	Args     []ast.Expr
}

func (e *TooFewArguments) Error() string {
	return fmt.Sprintf("too few arguments: %d patterns, %d arguments", len(e.Patterns), len(e.Args))
}
func (*TooFewArguments) matchError() {}
