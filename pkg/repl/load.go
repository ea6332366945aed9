package repl

import (
	"fmt"
	"os"

	"github.com/exprlab/stepwise/internal/ast"
	"github.com/exprlab/stepwise/internal/evaluator"
	"github.com/exprlab/stepwise/internal/source"
	"github.com/exprlab/stepwise/internal/typesystem"
)

// program is a loaded set of top-level definitions, ready for both
// evaluation (an evaluator.Env) and type inference (a typesystem.TypeEnv
// once BuildTypeEnv is run over it).
type program struct {
	defs []ast.Def
	env  evaluator.Env
}

func loadProgram(path string) (*program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defs, err := source.ParseDefs(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &program{defs: defs, env: evaluator.DefsToEnv(defs)}, nil
}

// mainExpr returns the zero-argument "main" clause's body, the starting
// expression every CLI subcommand steps or evaluates.
func mainExpr(p *program) (ast.Expr, error) {
	for _, d := range p.defs {
		if d.Name == "main" && len(d.Params) == 0 {
			return d.Body, nil
		}
	}
	return nil, fmt.Errorf(`no zero-argument "main" definition found`)
}

// baseTypeEnv is the fixed set of built-in schemes every program's
// top-level environment is layered on: div and mod (spec.md §4.5 "wired-in
// functions"), both Int -> Int -> Int.
func baseTypeEnv() typesystem.TypeEnv {
	intArr := typesystem.Arr{From: typesystem.Con{Name: "Int"}, To: typesystem.Arr{From: typesystem.Con{Name: "Int"}, To: typesystem.Con{Name: "Int"}}}
	return typesystem.TypeEnv{
		"div": typesystem.Scheme{Type: intArr},
		"mod": typesystem.Scheme{Type: intArr},
	}
}
