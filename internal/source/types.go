package source

import "github.com/exprlab/stepwise/internal/typesystem"

// parseType parses a type expression: an arrow chain of applied type
// constructors, type variables, list types and tuple types.
func (p *Parser) parseType() (typesystem.Type, error) {
	t, err := p.parseAppType()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == TArrow {
		p.advance()
		to, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return typesystem.Arr{From: t, To: to}, nil
	}
	return t, nil
}

func (p *Parser) parseAppType() (typesystem.Type, error) {
	head, err := p.parseAtomType()
	if err != nil {
		return nil, err
	}
	cons, isCons := head.(typesystem.TypeCons)
	if !isCons {
		return head, nil
	}
	var params []typesystem.Type
	for p.startsAtomType() {
		a, err := p.parseAtomType()
		if err != nil {
			return nil, err
		}
		params = append(params, a)
	}
	if len(params) == 0 {
		return head, nil
	}
	return typesystem.TypeCons{Name: cons.Name, Params: params}, nil
}

func (p *Parser) startsAtomType() bool {
	if p.cur().Column == 1 {
		// A token in the first column begins the next declaration.
		return false
	}
	switch p.cur().Type {
	case TName, TConstr, TLParen, TLBracket:
		return true
	}
	return false
}

func (p *Parser) parseAtomType() (typesystem.Type, error) {
	tok := p.cur()
	switch tok.Type {
	case TName:
		p.advance()
		return typesystem.Var{Name: tok.Lit}, nil
	case TConstr:
		p.advance()
		switch tok.Lit {
		case "Int", "Bool", "Char":
			return typesystem.Con{Name: tok.Lit}, nil
		}
		return typesystem.TypeCons{Name: tok.Lit}, nil
	case TLBracket:
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TRBracket, "expected ']' closing list type"); err != nil {
			return nil, err
		}
		return typesystem.List{Elem: elem}, nil
	case TLParen:
		p.advance()
		first, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.cur().Type == TComma {
			elems := []typesystem.Type{first}
			for p.cur().Type == TComma {
				p.advance()
				e, err := p.parseType()
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
			}
			if _, err := p.expect(TRParen, "expected ')' closing tuple type"); err != nil {
				return nil, err
			}
			return typesystem.Tuple{Elems: elems}, nil
		}
		if _, err := p.expect(TRParen, "expected ')'"); err != nil {
			return nil, err
		}
		return first, nil
	}
	return nil, &ParseError{tok, "expected type"}
}
