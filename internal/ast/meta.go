// Package ast defines the expression tree shared by the evaluator
// (internal/evaluator) and the type inferencer (internal/infer): atoms,
// operators, binding patterns, the recursive expression tree and the
// per-node meta slot that carries optional type and index information
// (C1, spec.md §3-4.1).
package ast

import "github.com/exprlab/stepwise/internal/typesystem"

// Meta is attached to every expression, binding and operator-decorated
// node. Rather than parameterising the tree by four generic slots (the
// source language's approach), every node here carries exactly one Meta
// value covering the three standardised instantiations from spec.md §3:
//
//	Untyped:  Type == nil, HasIndex == false
//	Typed:    Type may be nil (not yet inferred) or set
//	Indexed:  HasIndex == true, Index holds the node's constraint-origin index
//
// TypeErr (from internal/typesystem) is a legal value of Type: it marks a
// node that partial typing could not type but that has an ancestor which
// could not be typed either (spec.md §4.6 "Partial typing").
type Meta struct {
	Type     typesystem.Type
	Index    int
	HasIndex bool
}

// WithType returns a copy of m with Type set, as used when inference or
// partial typing decorates a node.
func (m Meta) WithType(t typesystem.Type) Meta {
	m.Type = t
	return m
}

// WithIndex returns a copy of m with Index set, as used by the indexing
// pass (C6) prior to constraint generation.
func (m Meta) WithIndex(i int) Meta {
	m.Index = i
	m.HasIndex = true
	return m
}
