package evaluator

import "github.com/exprlab/stepwise/internal/ast"

// Clause is one (param-patterns, body) pair of a function definition.
type Clause struct {
	Params []ast.Binding
	Body   ast.Expr
}

// Env maps a function name to its ordered list of clauses (spec.md §3
// "Evaluation environment").
type Env map[string][]Clause

// DefsToEnv groups a program's Defs by name, preserving source order
// within each group (spec.md §6 "defsToEnv").
func DefsToEnv(defs []ast.Def) Env {
	env := make(Env)
	for _, d := range defs {
		env[d.Name] = append(env[d.Name], Clause{Params: d.Params, Body: d.Body})
	}
	return env
}
