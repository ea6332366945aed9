package evaluator

import (
	"testing"

	"github.com/exprlab/stepwise/internal/ast"
)

func TestEval1IfTakesThenBranchOnTrue(t *testing.T) {
	e := ast.NewIf(ast.NewAtom(ast.Bool_(true)), ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	got, err := eval1(Env{}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "1" {
		t.Errorf("got %s, want 1", got)
	}
}

func TestEval1IfForcesUnevaluatedCondFirst(t *testing.T) {
	env := Env{"t": {{Body: ast.NewAtom(ast.Bool_(true))}}}
	cond := ast.NewApp(ast.NewAtom(ast.Name("t")), nil)
	e := ast.NewIf(cond, ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2)))
	got, err := eval1(env, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(*ast.IfExpr); !ok {
		t.Fatalf("expected a rebuilt IfExpr with its cond one step further, got %T", got)
	}
}

func TestEval1LetSubstitutesBindingsIntoBody(t *testing.T) {
	e := ast.NewLet(
		[]ast.LetBinding{{Pattern: ast.NewLit(ast.Name("x")), Value: ast.NewAtom(ast.Int(5))}},
		ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Name("x")), ast.NewAtom(ast.Name("x"))),
	)
	got, err := eval1(Env{}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "(5 + 5)" {
		t.Errorf("got %s", got)
	}
}

func TestEval1LambdaApplicationBetaReduces(t *testing.T) {
	lam := ast.NewLambda([]ast.Binding{ast.NewLit(ast.Name("x"))}, ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Name("x")), ast.NewAtom(ast.Int(1))))
	app := ast.NewApp(lam, []ast.Expr{ast.NewAtom(ast.Int(41))})
	got, err := eval1(Env{}, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "(41 + 1)" {
		t.Errorf("got %s", got)
	}
}

func TestEval1LambdaPartialApplicationCurriesRemainingParams(t *testing.T) {
	lam := ast.NewLambda(
		[]ast.Binding{ast.NewLit(ast.Name("x")), ast.NewLit(ast.Name("y"))},
		ast.NewBinary(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Name("x")), ast.NewAtom(ast.Name("y"))),
	)
	app := ast.NewApp(lam, []ast.Expr{ast.NewAtom(ast.Int(1))})
	got, err := eval1(Env{}, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	newLam, ok := got.(*ast.Lambda)
	if !ok {
		t.Fatalf("expected a Lambda of remaining arity, got %T", got)
	}
	if len(newLam.Params) != 1 {
		t.Errorf("expected one remaining param, got %d", len(newLam.Params))
	}
}

func TestEval1SectLAppliesRightOperand(t *testing.T) {
	sect := ast.NewSectL(ast.NewAtom(ast.Int(1)), ast.Operator{Kind: ast.OpAdd})
	app := ast.NewApp(sect, []ast.Expr{ast.NewAtom(ast.Int(2))})
	got, err := eval1(Env{}, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "3" {
		t.Errorf("got %s", got)
	}
}

func TestEval1SectRAppliesLeftOperand(t *testing.T) {
	sect := ast.NewSectR(ast.Operator{Kind: ast.OpAdd}, ast.NewAtom(ast.Int(1)))
	app := ast.NewApp(sect, []ast.Expr{ast.NewAtom(ast.Int(2))})
	got, err := eval1(Env{}, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "3" {
		t.Errorf("got %s", got)
	}
}

func TestEval1PrefixOpAppliedToTwoArgsReducesToBinary(t *testing.T) {
	pre := ast.NewPrefixOp(ast.Operator{Kind: ast.OpAdd})
	app := ast.NewApp(pre, []ast.Expr{ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2))})
	got, err := eval1(Env{}, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "3" {
		t.Errorf("got %s", got)
	}
}

func TestEval1SectLFallsBackToBinaryNodeWhenPrimitiveErrors(t *testing.T) {
	sect := ast.NewSectL(ast.NewAtom(ast.Name("x")), ast.Operator{Kind: ast.OpAdd})
	app := ast.NewApp(sect, []ast.Expr{ast.NewAtom(ast.Int(2))})
	got, err := eval1(Env{}, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected BinaryExpr fallback, got %T (%s)", got, got)
	}
	if got.String() != "(x + 2)" {
		t.Errorf("got %s", got)
	}
}

func TestEval1PrefixOpAppliedToOneArgYieldsSectL(t *testing.T) {
	pre := ast.NewPrefixOp(ast.Operator{Kind: ast.OpAdd})
	app := ast.NewApp(pre, []ast.Expr{ast.NewAtom(ast.Int(1))})
	got, err := eval1(Env{}, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(*ast.SectLExpr); !ok {
		t.Fatalf("expected SectLExpr, got %T", got)
	}
}

func TestEval1CompositionRewritesToNestedApp(t *testing.T) {
	f, g := ast.NewAtom(ast.Name("f")), ast.NewAtom(ast.Name("g"))
	comp := ast.NewBinary(ast.Operator{Kind: ast.OpComposition}, f, g)
	app := ast.NewApp(comp, []ast.Expr{ast.NewAtom(ast.Int(1))})
	got, err := eval1(Env{}, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "f (g 1)" {
		t.Errorf("got %s", got)
	}
}

func TestEval1ArithmSeqUnfoldsOneStepAtATime(t *testing.T) {
	seq := ast.NewArithmSeq(ast.NewAtom(ast.Int(1)), nil, ast.NewAtom(ast.Int(3)))
	got, err := eval1(Env{}, seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := got.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected Binary(Colon, 1, ArithmSeq(2..3)), got %T", got)
	}
	if bin.Left.String() != "1" {
		t.Errorf("head = %s, want 1", bin.Left)
	}
	if _, ok := bin.Right.(*ast.ArithmSeq); !ok {
		t.Errorf("expected tail to still be an ArithmSeq, got %T", bin.Right)
	}
}

func TestEval1ListCompEmptyQualsWrapsHeadInSingletonList(t *testing.T) {
	lc := ast.NewListComp(ast.NewAtom(ast.Int(1)), nil)
	got, err := eval1(Env{}, lc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[1]" {
		t.Errorf("got %s", got)
	}
}

func TestEval1ListCompGeneratorUnfoldsOneElementAtATime(t *testing.T) {
	xs := ast.NewList([]ast.Expr{ast.NewAtom(ast.Int(1)), ast.NewAtom(ast.Int(2))})
	lc := ast.NewListComp(ast.NewAtom(ast.Name("x")), []ast.Qual{
		{Kind: ast.QGen, Binding: ast.NewLit(ast.Name("x")), Expr: xs},
	})
	got, err := eval1(Env{}, lc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := got.(*ast.BinaryExpr)
	if !ok || bin.OpNode.Op.Kind != ast.OpAppend {
		t.Fatalf("expected Binary(Append, let-head, rest-comprehension), got %T", got)
	}
}

func TestEval1ListCompGuardFalseYieldsEmptyList(t *testing.T) {
	lc := ast.NewListComp(ast.NewAtom(ast.Int(1)), []ast.Qual{
		{Kind: ast.QGuard, Expr: ast.NewAtom(ast.Bool_(false))},
	})
	got, err := eval1(Env{}, lc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[]" {
		t.Errorf("got %s", got)
	}
}

func TestEval1UnknownNameErrors(t *testing.T) {
	_, err := eval1(Env{}, ast.NewAtom(ast.Name("undefined")))
	if _, ok := err.(*UnknownFunctionError); !ok {
		t.Fatalf("expected UnknownFunctionError, got %T (%v)", err, err)
	}
}
