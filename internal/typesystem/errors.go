package typesystem

import "fmt"

// TypeError is implemented by every type-error variant from spec.md §7.
// The type variables inside an error are the inferencer's own fresh names;
// they are not renamed canonically before the error is returned.
type TypeError interface {
	error
	typeError()
}

// UnificationFailError is raised when two type terms cannot be made equal.
type UnificationFailError struct {
	T1, T2 Type
}

func (e *UnificationFailError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.T1, e.T2)
}
func (*UnificationFailError) typeError() {}

// InfiniteTypeError is raised when the occurs check fails during Unify.
type InfiniteTypeError struct {
	Var  string
	Type Type
}

func (e *InfiniteTypeError) Error() string {
	return fmt.Sprintf("infinite type: %s = %s", e.Var, e.Type)
}
func (*InfiniteTypeError) typeError() {}

// UnboundVariableError is raised when a name has no binding in scope.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string { return fmt.Sprintf("unbound variable: %s", e.Name) }
func (*UnboundVariableError) typeError()      {}

// UnknownDataConstructorError is raised by a pattern referencing an
// undeclared data constructor.
type UnknownDataConstructorError struct {
	Name string
}

func (e *UnknownDataConstructorError) Error() string {
	return fmt.Sprintf("unknown data constructor: %s", e.Name)
}
func (*UnknownDataConstructorError) typeError() {}

// NoInstanceOfEnumError is raised when an arithmetic sequence is built over
// a base type with no Enum instance.
type NoInstanceOfEnumError struct {
	Type Type
}

func (e *NoInstanceOfEnumError) Error() string {
	return fmt.Sprintf("no instance of Enum for %s", e.Type)
}
func (*NoInstanceOfEnumError) typeError() {}

// PatternMismatchError is raised when a binding pattern cannot possibly
// match values of the given type.
type PatternMismatchError struct {
	Pattern fmt.Stringer
	Type    Type
}

func (e *PatternMismatchError) Error() string {
	return fmt.Sprintf("pattern %s cannot match type %s", e.Pattern, e.Type)
}
func (*PatternMismatchError) typeError() {}

// UnknownError wraps a free-form diagnostic message, used for structural
// invariant violations such as overlapping pattern variables.
type UnknownError struct {
	Msg string
}

func (e *UnknownError) Error() string { return e.Msg }
func (*UnknownError) typeError()      {}
