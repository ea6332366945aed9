package ast

import "fmt"

// AtomKind discriminates the Atom variants (spec.md §3 "Atom").
type AtomKind int

const (
	AInt AtomKind = iota
	ABool
	AChar
	AName
	AConstr
)

// Atom is the leaf payload of the expression tree: AInt(i64), Bool(bool),
// Char(single-character string), Name(string) (a variable reference) or
// Constr(string) (a data-constructor reference).
type Atom struct {
	Kind AtomKind
	Int  int64
	Bool bool
	Char rune
	Name string // used for both AName and AConstr
}

func Int(i int64) Atom     { return Atom{Kind: AInt, Int: i} }
func Bool_(b bool) Atom    { return Atom{Kind: ABool, Bool: b} }
func Char(c rune) Atom     { return Atom{Kind: AChar, Char: c} }
func Name(n string) Atom   { return Atom{Kind: AName, Name: n} }
func Constr(n string) Atom { return Atom{Kind: AConstr, Name: n} }

// Equal compares two atoms pointwise, per spec.md §3: Name and Constr
// compare by their string, every other kind by its payload.
func (a Atom) Equal(b Atom) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AInt:
		return a.Int == b.Int
	case ABool:
		return a.Bool == b.Bool
	case AChar:
		return a.Char == b.Char
	case AName, AConstr:
		return a.Name == b.Name
	}
	return false
}

// Less defines the total order used by the polymorphic Leq/Lt/Geq/Gt
// primitives (spec.md §4.5): pointwise over Int, Char, Bool (false < true),
// and lexicographic over the constructor/name string.
func (a Atom) Less(b Atom) bool {
	switch a.Kind {
	case AInt:
		return a.Int < b.Int
	case ABool:
		return !a.Bool && b.Bool
	case AChar:
		return a.Char < b.Char
	case AName, AConstr:
		return a.Name < b.Name
	}
	return false
}

func (a Atom) String() string {
	switch a.Kind {
	case AInt:
		return fmt.Sprintf("%d", a.Int)
	case ABool:
		if a.Bool {
			return "True"
		}
		return "False"
	case AChar:
		return fmt.Sprintf("'%c'", a.Char)
	case AName:
		return a.Name
	case AConstr:
		return a.Name
	}
	return "<?atom>"
}

// Operator is the closed enumeration of operators, plus two open variants
// for infix function calls and infix data constructors (spec.md §3).
type Operator struct {
	Kind   OpKind
	Name   string // InfixFunc(name)
	Symbol string // InfixConstr(symbol)
}

type OpKind int

const (
	OpComposition OpKind = iota
	OpPower
	OpMul
	OpAdd
	OpSub
	OpColon
	OpAppend
	OpEqu
	OpNeq
	OpLt
	OpLeq
	OpGt
	OpGeq
	OpAnd
	OpOr
	OpDollar
	OpInfixFunc
	OpInfixConstr
)

func (o Operator) String() string {
	switch o.Kind {
	case OpComposition:
		return "."
	case OpPower:
		return "^"
	case OpMul:
		return "*"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpColon:
		return ":"
	case OpAppend:
		return "++"
	case OpEqu:
		return "=="
	case OpNeq:
		return "/="
	case OpLt:
		return "<"
	case OpLeq:
		return "<="
	case OpGt:
		return ">"
	case OpGeq:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpDollar:
		return "$"
	case OpInfixFunc:
		return "`" + o.Name + "`"
	case OpInfixConstr:
		return o.Symbol
	}
	return "<?op>"
}

// Assoc is a data-constructor's declared associativity (spec.md §3 "ADT
// definition").
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
	AssocNon
)

// Precedence returns a display-only precedence/associativity pair for an
// operator, used exclusively by the pretty-printer (spec.md §1 Non-goals:
// "no pretty-printer beyond what is needed for diagnostics").
func Precedence(op Operator) (prec int, assoc Assoc) {
	switch op.Kind {
	case OpComposition:
		return 9, AssocRight
	case OpPower:
		return 8, AssocRight
	case OpMul:
		return 7, AssocLeft
	case OpAdd, OpSub:
		return 6, AssocLeft
	case OpColon, OpAppend:
		return 5, AssocRight
	case OpEqu, OpNeq, OpLt, OpLeq, OpGt, OpGeq:
		return 4, AssocNon
	case OpAnd:
		return 3, AssocRight
	case OpOr:
		return 2, AssocRight
	case OpDollar:
		return 0, AssocRight
	case OpInfixConstr:
		return 5, AssocRight
	default:
		return 9, AssocLeft
	}
}
