package ast

import "testing"

func TestAtomEqual(t *testing.T) {
	if !Int(1).Equal(Int(1)) {
		t.Error("expected Int(1) == Int(1)")
	}
	if Int(1).Equal(Int(2)) {
		t.Error("expected Int(1) != Int(2)")
	}
	if Int(1).Equal(Bool_(true)) {
		t.Error("expected values of different kinds to never be equal")
	}
	if !Name("x").Equal(Name("x")) {
		t.Error("expected Name(x) == Name(x)")
	}
}

func TestAtomLess(t *testing.T) {
	if !Int(1).Less(Int(2)) {
		t.Error("expected 1 < 2")
	}
	if Int(2).Less(Int(1)) {
		t.Error("expected 2 not < 1")
	}
	if !Bool_(false).Less(Bool_(true)) {
		t.Error("expected False < True")
	}
	if !Char('a').Less(Char('b')) {
		t.Error("expected 'a' < 'b'")
	}
	if !Constr("Apple").Less(Constr("Banana")) {
		t.Error("expected lexicographic order on constructor names")
	}
}

func TestAtomString(t *testing.T) {
	tests := []struct {
		a    Atom
		want string
	}{
		{Int(42), "42"},
		{Bool_(true), "True"},
		{Bool_(false), "False"},
		{Char('x'), "'x'"},
		{Name("foo"), "foo"},
		{Constr("Just"), "Just"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{Operator{Kind: OpAdd}, "+"},
		{Operator{Kind: OpAppend}, "++"},
		{Operator{Kind: OpInfixFunc, Name: "div"}, "`div`"},
		{Operator{Kind: OpInfixConstr, Symbol: ":+:"}, ":+:"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	mulPrec, _ := Precedence(Operator{Kind: OpMul})
	addPrec, _ := Precedence(Operator{Kind: OpAdd})
	if mulPrec <= addPrec {
		t.Errorf("expected * to bind tighter than +, got %d vs %d", mulPrec, addPrec)
	}
	_, assoc := Precedence(Operator{Kind: OpColon})
	if assoc != AssocRight {
		t.Errorf("expected : to be right-associative, got %v", assoc)
	}
	_, assoc = Precedence(Operator{Kind: OpEqu})
	if assoc != AssocNon {
		t.Errorf("expected == to be non-associative, got %v", assoc)
	}
}
