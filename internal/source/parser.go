package source

import (
	"fmt"

	"github.com/exprlab/stepwise/internal/ast"
)

// ParseError reports a syntax error with the offending token's position.
type ParseError struct {
	Token Token
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s (got %s)", e.Token.Line, e.Token.Column, e.Msg, e.Token)
}

// Parser is a recursive-descent/precedence-climbing parser over a token
// stream produced by the Lexer.
type Parser struct {
	toks []Token
	pos  int
}

func NewParser(toks []Token) *Parser { return &Parser{toks: toks} }

func (p *Parser) cur() Token  { return p.toks[p.pos] }
func (p *Parser) peek() Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}
func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(tt TokenType, msg string) (Token, error) {
	if p.cur().Type != tt {
		return Token{}, &ParseError{p.cur(), msg}
	}
	return p.advance(), nil
}

// ParseExpr parses a single expression from source text, up to EOF.
func ParseExpr(input string) (ast.Expr, error) {
	toks, err := Lex(input)
	if err != nil {
		return nil, err
	}
	p := NewParser(toks)
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().Type != TEOF {
		return nil, &ParseError{p.cur(), "unexpected trailing input"}
	}
	return e, nil
}

// ParseDefs parses a whole program: a sequence of function clauses and ADT
// declarations, terminated by EOF. Declarations are separated by semicolons
// or by starting a line in its first column.
func ParseDefs(input string) ([]ast.Def, error) {
	toks, err := Lex(input)
	if err != nil {
		return nil, err
	}
	p := NewParser(toks)
	var defs []ast.Def
	for p.cur().Type != TEOF {
		for p.cur().Type == TSemicolon {
			p.advance()
		}
		if p.cur().Type == TEOF {
			break
		}
		if p.cur().Type == TName && p.cur().Lit == "data" {
			adt, err := p.parseADT()
			if err != nil {
				return nil, err
			}
			defs = append(defs, ast.CompileADT(adt)...)
			continue
		}
		d, err := p.parseDef()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// parseDef parses "name pat1 pat2 ... = body".
func (p *Parser) parseDef() (ast.Def, error) {
	name, err := p.expect(TName, "expected definition name")
	if err != nil {
		return ast.Def{}, err
	}
	var params []ast.Binding
	for p.cur().Type != TEquals {
		b, err := p.parseAtomBinding()
		if err != nil {
			return ast.Def{}, err
		}
		params = append(params, b)
	}
	if _, err := p.expect(TEquals, "expected '=' in definition"); err != nil {
		return ast.Def{}, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return ast.Def{}, err
	}
	return ast.Def{Name: name.Lit, Params: params, Body: body}, nil
}

// --- Expressions ---

func (p *Parser) parseExpr() (ast.Expr, error) {
	switch {
	case p.cur().Type == TBackslash:
		return p.parseLambda()
	case p.cur().Type == TKeyword && p.cur().Lit == "let":
		return p.parseLet()
	case p.cur().Type == TKeyword && p.cur().Lit == "if":
		return p.parseIf()
	}
	return p.parseOpExpr(0)
}

func (p *Parser) parseLambda() (ast.Expr, error) {
	p.advance() // backslash
	var params []ast.Binding
	for p.cur().Type != TArrow {
		b, err := p.parseAtomBinding()
		if err != nil {
			return nil, err
		}
		params = append(params, b)
	}
	p.advance() // ->
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewLambda(params, body), nil
}

func (p *Parser) parseLet() (ast.Expr, error) {
	p.advance() // let
	var bindings []ast.LetBinding
	for {
		pat, err := p.parseAtomBinding()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TEquals, "expected '=' in let-binding"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.LetBinding{Pattern: pat, Value: val})
		if p.cur().Type == TSemicolon {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewLet(bindings, body), nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	p.advance() // if
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("else"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewIf(cond, then, els), nil
}

func (p *Parser) expectKeyword(kw string) (Token, error) {
	if p.cur().Type != TKeyword || p.cur().Lit != kw {
		return Token{}, &ParseError{p.cur(), "expected keyword " + kw}
	}
	return p.advance(), nil
}

// parseOpExpr implements precedence climbing over ast.Precedence, with
// application binding tighter than any operator (spec.md §3 grammar).
func (p *Parser) parseOpExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOperator()
		if !ok || p.peek().Type == TRParen {
			// An operator directly before ')' is a left section, which
			// parseParenthesized builds.
			break
		}
		prec, assoc := ast.Precedence(op)
		if prec < minPrec {
			break
		}
		p.advance()
		nextMin := prec + 1
		if assoc == ast.AssocRight {
			nextMin = prec
		}
		right, err := p.parseOpExpr(nextMin)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(op, left, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.cur().Type == TOp && p.cur().Lit == "-" {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(ast.Operator{Kind: ast.OpSub}, x), nil
	}
	return p.parseApp()
}

// peekOperator reports whether the current token is an infix operator and,
// if so, which Operator it denotes.
func (p *Parser) peekOperator() (ast.Operator, bool) {
	tok := p.cur()
	if tok.Type != TOp {
		return ast.Operator{}, false
	}
	return opFromLit(tok.Lit), true
}

func opFromLit(lit string) ast.Operator {
	switch lit {
	case ".":
		return ast.Operator{Kind: ast.OpComposition}
	case "^":
		return ast.Operator{Kind: ast.OpPower}
	case "*":
		return ast.Operator{Kind: ast.OpMul}
	case "+":
		return ast.Operator{Kind: ast.OpAdd}
	case "-":
		return ast.Operator{Kind: ast.OpSub}
	case ":":
		return ast.Operator{Kind: ast.OpColon}
	case "++":
		return ast.Operator{Kind: ast.OpAppend}
	case "==":
		return ast.Operator{Kind: ast.OpEqu}
	case "/=":
		return ast.Operator{Kind: ast.OpNeq}
	case "<":
		return ast.Operator{Kind: ast.OpLt}
	case "<=":
		return ast.Operator{Kind: ast.OpLeq}
	case ">":
		return ast.Operator{Kind: ast.OpGt}
	case ">=":
		return ast.Operator{Kind: ast.OpGeq}
	case "&&":
		return ast.Operator{Kind: ast.OpAnd}
	case "||":
		return ast.Operator{Kind: ast.OpOr}
	case "$":
		return ast.Operator{Kind: ast.OpDollar}
	}
	if len(lit) >= 2 && lit[0] == '`' && lit[len(lit)-1] == '`' {
		return ast.Operator{Kind: ast.OpInfixFunc, Name: lit[1 : len(lit)-1]}
	}
	return ast.Operator{Kind: ast.OpInfixConstr, Symbol: lit}
}

// parseApp parses left-associative juxtaposition application: f a b c.
func (p *Parser) parseApp() (ast.Expr, error) {
	head, err := p.parseAtomExpr()
	if err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.startsAtomExpr() {
		arg, err := p.parseAtomExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return head, nil
	}
	return ast.NewApp(head, args), nil
}

func (p *Parser) startsAtomExpr() bool {
	if p.cur().Column == 1 {
		// A token in the first column begins the next declaration.
		return false
	}
	switch p.cur().Type {
	case TInt, TChar, TName, TConstr, TLParen, TLBracket:
		return true
	}
	return false
}

func (p *Parser) parseAtomExpr() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case TInt:
		p.advance()
		return ast.NewAtom(ast.Int(tok.IntVal)), nil
	case TChar:
		p.advance()
		return ast.NewAtom(ast.Char(tok.CharVal)), nil
	case TName:
		p.advance()
		return ast.NewAtom(ast.Name(tok.Lit)), nil
	case TConstr:
		p.advance()
		if tok.Lit == "True" {
			return ast.NewAtom(ast.Bool_(true)), nil
		}
		if tok.Lit == "False" {
			return ast.NewAtom(ast.Bool_(false)), nil
		}
		return ast.NewAtom(ast.Constr(tok.Lit)), nil
	case TLBracket:
		return p.parseBracketed()
	case TLParen:
		return p.parseParenthesized()
	}
	return nil, &ParseError{tok, "expected expression"}
}

// parseBracketed parses [e1, e2, ...], [a..b] / [a,b..c] / [a..], and list
// comprehensions [head | quals].
func (p *Parser) parseBracketed() (ast.Expr, error) {
	p.advance() // [
	if p.cur().Type == TRBracket {
		p.advance()
		return ast.NewList(nil), nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch p.cur().Type {
	case TPipe:
		p.advance()
		quals, err := p.parseQuals()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TRBracket, "expected ']' closing list comprehension"); err != nil {
			return nil, err
		}
		return ast.NewListComp(first, quals), nil

	case TDotDot:
		p.advance()
		var end ast.Expr
		if p.cur().Type != TRBracket {
			end, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(TRBracket, "expected ']' closing arithmetic sequence"); err != nil {
			return nil, err
		}
		return ast.NewArithmSeq(first, nil, end), nil

	case TComma:
		// Could be a list literal [a,b,c] or a stepped sequence [a,b..c].
		save := p.pos
		p.advance()
		second, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().Type == TDotDot {
			p.advance()
			var end ast.Expr
			if p.cur().Type != TRBracket {
				end, err = p.parseExpr()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(TRBracket, "expected ']' closing arithmetic sequence"); err != nil {
				return nil, err
			}
			return ast.NewArithmSeq(first, second, end), nil
		}
		// Ordinary list literal; backtrack is unnecessary since we can
		// keep consuming comma-separated elements from here.
		_ = save
		elems := []ast.Expr{first, second}
		for p.cur().Type == TComma {
			p.advance()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if _, err := p.expect(TRBracket, "expected ']' closing list"); err != nil {
			return nil, err
		}
		return ast.NewList(elems), nil

	case TRBracket:
		p.advance()
		return ast.NewList([]ast.Expr{first}), nil
	}
	return nil, &ParseError{p.cur(), "expected ',', '..', '|' or ']'"}
}

func (p *Parser) parseQuals() ([]ast.Qual, error) {
	var quals []ast.Qual
	for {
		q, err := p.parseQual()
		if err != nil {
			return nil, err
		}
		quals = append(quals, q)
		if p.cur().Type == TComma {
			p.advance()
			continue
		}
		return quals, nil
	}
}

func (p *Parser) parseQual() (ast.Qual, error) {
	if p.cur().Type == TKeyword && p.cur().Lit == "let" {
		p.advance()
		pat, err := p.parseAtomBinding()
		if err != nil {
			return ast.Qual{}, err
		}
		if _, err := p.expect(TEquals, "expected '=' in comprehension let"); err != nil {
			return ast.Qual{}, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return ast.Qual{}, err
		}
		return ast.Qual{Kind: ast.QLet, Binding: pat, Expr: val}, nil
	}

	// A generator is "pattern <- expr"; anything else is a guard
	// expression. Both start by trying to parse a binding pattern and
	// checking for the arrow, backtracking to a guard on mismatch.
	save := p.pos
	if pat, err := p.parseAtomBinding(); err == nil && p.cur().Type == TLArrow {
		p.advance()
		src, err := p.parseExpr()
		if err != nil {
			return ast.Qual{}, err
		}
		return ast.Qual{Kind: ast.QGen, Binding: pat, Expr: src}, nil
	}
	p.pos = save
	guard, err := p.parseExpr()
	if err != nil {
		return ast.Qual{}, err
	}
	return ast.Qual{Kind: ast.QGuard, Expr: guard}, nil
}

// parseParenthesized parses (expr), (expr, expr, ...), and operator
// sections (expr op), (op expr), (op).
func (p *Parser) parseParenthesized() (ast.Expr, error) {
	p.advance() // (

	if op, ok := p.peekOperator(); ok && p.peek().Type == TRParen {
		p.advance()
		p.advance()
		return ast.NewPrefixOp(op), nil
	}
	if op, ok := p.peekOperator(); ok {
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TRParen, "expected ')' closing right section"); err != nil {
			return nil, err
		}
		return ast.NewSectR(op, x), nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if op, ok := p.peekOperator(); ok && p.peek().Type == TRParen {
		p.advance()
		p.advance()
		return ast.NewSectL(first, op), nil
	}

	if p.cur().Type == TComma {
		elems := []ast.Expr{first}
		for p.cur().Type == TComma {
			p.advance()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if _, err := p.expect(TRParen, "expected ')' closing tuple"); err != nil {
			return nil, err
		}
		return ast.NewNTuple(elems), nil
	}

	if _, err := p.expect(TRParen, "expected ')'"); err != nil {
		return nil, err
	}
	return first, nil
}
