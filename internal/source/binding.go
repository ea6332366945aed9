package source

import "github.com/exprlab/stepwise/internal/ast"

// parseAtomBinding parses a single atomic pattern: a literal, a name, a
// bare (zero-argument) constructor reference, a bracketed list pattern, or
// a fully parenthesized pattern (cons, tuple, or an applied constructor).
func (p *Parser) parseAtomBinding() (ast.Binding, error) {
	tok := p.cur()
	switch tok.Type {
	case TInt:
		p.advance()
		return ast.NewLit(ast.Int(tok.IntVal)), nil
	case TChar:
		p.advance()
		return ast.NewLit(ast.Char(tok.CharVal)), nil
	case TName:
		p.advance()
		return ast.NewLit(ast.Name(tok.Lit)), nil
	case TConstr:
		p.advance()
		if tok.Lit == "True" {
			return ast.NewLit(ast.Bool_(true)), nil
		}
		if tok.Lit == "False" {
			return ast.NewLit(ast.Bool_(false)), nil
		}
		return ast.NewConstrLit(tok.Lit, nil), nil
	case TLBracket:
		return p.parseListBinding()
	case TLParen:
		return p.parseParenBinding()
	}
	return nil, &ParseError{tok, "expected pattern"}
}

func (p *Parser) startsAtomBinding() bool {
	switch p.cur().Type {
	case TInt, TChar, TName, TConstr, TLParen, TLBracket:
		return true
	}
	return false
}

func (p *Parser) parseListBinding() (ast.Binding, error) {
	p.advance() // [
	if p.cur().Type == TRBracket {
		p.advance()
		return ast.NewListLit(nil), nil
	}
	var elems []ast.Binding
	for {
		b, err := p.parseConsBinding()
		if err != nil {
			return nil, err
		}
		elems = append(elems, b)
		if p.cur().Type == TComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(TRBracket, "expected ']' closing list pattern"); err != nil {
		return nil, err
	}
	return ast.NewListLit(elems), nil
}

// parseConsBinding parses a right-associative chain of ':' patterns,
// e.g. x:y:zs.
func (p *Parser) parseConsBinding() (ast.Binding, error) {
	head, err := p.parseAtomBinding()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == TOp && p.cur().Lit == ":" {
		p.advance()
		tail, err := p.parseConsBinding()
		if err != nil {
			return nil, err
		}
		return ast.NewConsLit(head, tail), nil
	}
	return head, nil
}

// parseParenBinding parses the contents of a parenthesized pattern: an
// applied constructor (Just x), a cons chain (x:xs), a tuple (a, b), or a
// simple nested pattern.
func (p *Parser) parseParenBinding() (ast.Binding, error) {
	p.advance() // (

	if p.cur().Type == TConstr && p.cur().Lit != "True" && p.cur().Lit != "False" {
		name := p.advance().Lit
		var args []ast.Binding
		for p.startsAtomBinding() {
			a, err := p.parseAtomBinding()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
		if _, err := p.expect(TRParen, "expected ')' closing constructor pattern"); err != nil {
			return nil, err
		}
		return ast.NewConstrLit(name, args), nil
	}

	first, err := p.parseConsBinding()
	if err != nil {
		return nil, err
	}

	if p.cur().Type == TComma {
		elems := []ast.Binding{first}
		for p.cur().Type == TComma {
			p.advance()
			b, err := p.parseConsBinding()
			if err != nil {
				return nil, err
			}
			elems = append(elems, b)
		}
		if _, err := p.expect(TRParen, "expected ')' closing tuple pattern"); err != nil {
			return nil, err
		}
		return ast.NewNTupleLit(elems), nil
	}

	if _, err := p.expect(TRParen, "expected ')'"); err != nil {
		return nil, err
	}
	return first, nil
}
