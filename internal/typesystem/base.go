package typesystem

// The closed set of base types the language hard-wires overloading for
// (equality, ordering, enumeration) — spec.md §1 Non-goals, §3 Atom.
var (
	IntType  = Con{Name: "Int"}
	BoolType = Con{Name: "Bool"}
	CharType = Con{Name: "Char"}
)

// IsEnumerable reports whether t is one of the closed set of base types
// admitted by arithmetic sequences (spec.md §3 invariants).
func IsEnumerable(t Type) bool {
	c, ok := t.(Con)
	if !ok {
		return false
	}
	return c.Name == "Int" || c.Name == "Bool" || c.Name == "Char"
}
