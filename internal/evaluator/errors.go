// Package evaluator implements the small-step, path-directed reducer (C4):
// eval1, Step, EvalAll, the binary/unary primitive table, arithmetic
// sequence unfolding and definition resolution with multi-clause pattern
// matching (spec.md §4.4-4.5).
package evaluator

import (
	"fmt"
	"strings"

	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/binding"
)

// EvalError is implemented by every evaluation-error variant (spec.md §7).
type EvalError interface {
	error
	evalError()
}

// PathError means path did not navigate to a valid sub-node of expr.
type PathError struct {
	Path Path
	Expr ast.Expr
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %v into %s", e.Path, e.Expr)
}
func (*PathError) evalError() {}

// IndexError means an Nth(i) token selected an out-of-range child.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (len %d)", e.Index, e.Len)
}
func (*IndexError) evalError() {}

// DivByZeroError is raised by div/mod with a zero divisor.
type DivByZeroError struct{}

func (e *DivByZeroError) Error() string { return "division by zero" }
func (*DivByZeroError) evalError()      {}

// CannotEvaluateError is raised when eval1 has no applicable rule for expr
// (spec.md §4.4 rule 11).
type CannotEvaluateError struct {
	Expr ast.Expr
}

func (e *CannotEvaluateError) Error() string { return fmt.Sprintf("cannot evaluate %s", e.Expr) }
func (*CannotEvaluateError) evalError()      {}

// BinaryOpErrorT is raised when a binary primitive has no case for its
// operand types.
type BinaryOpErrorT struct {
	Op          ast.Operator
	Left, Right ast.Expr
}

func (e *BinaryOpErrorT) Error() string {
	return fmt.Sprintf("binary operator %s not defined for %s and %s", e.Op, e.Left, e.Right)
}
func (*BinaryOpErrorT) evalError() {}

// UnaryOpErrorT is raised when a unary primitive has no case for its
// operand type.
type UnaryOpErrorT struct {
	Op ast.Operator
	X  ast.Expr
}

func (e *UnaryOpErrorT) Error() string {
	return fmt.Sprintf("unary operator %s not defined for %s", e.Op, e.X)
}
func (*UnaryOpErrorT) evalError() {}

// NameCaptureError is raised when substituting a pattern-variable map into
// a body would capture a free variable of a substituted value under a
// nested binder (spec.md §4.4 "Name capture").
type NameCaptureError struct {
	Names []string
}

func (e *NameCaptureError) Error() string {
	return fmt.Sprintf("name capture for %s", strings.Join(e.Names, ", "))
}
func (*NameCaptureError) evalError() {}

// UnknownFunctionError is raised when apply looks up an undefined name.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string { return fmt.Sprintf("unknown function: %s", e.Name) }
func (*UnknownFunctionError) evalError()      {}

// NoMatchingFunctionError is raised when every clause failed to match with
// a pattern-matching error (spec.md §4.4 tryClauses); Reasons holds one
// failure per clause. A StrictnessError never gets this far: evalToBinding
// forces the argument and retries the match.
type NoMatchingFunctionError struct {
	Name    string
	Reasons []binding.MatchError
}

func (e *NoMatchingFunctionError) Error() string {
	return fmt.Sprintf("no matching clause for %s", e.Name)
}
func (*NoMatchingFunctionError) evalError() {}

// Errors is an associative concatenation of evaluation errors, so
// collectors can accumulate; the monoid identity is the empty slice
// (spec.md §7 "MoreErrors").
type Errors []error

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
func (Errors) evalError() {}

// Concat is the monoid operation for Errors.
func Concat(a, b Errors) Errors {
	out := make(Errors, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
