// Package infer implements Hindley-Milner type inference over the shared
// expression tree: indexing (C6), two-phase constraint generation and
// unification-based solving (C5), and a partial-typing recovery pass that
// localizes an unsolvable node's error into its ancestors instead of
// failing the whole tree (spec.md §4.6).
package infer

import "github.com/exprlab/stepwise/internal/typesystem"

// Constraint is a single required type equality, collected during
// generation and discharged during solving.
type Constraint struct {
	Left, Right typesystem.Type
}
