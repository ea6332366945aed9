package source

import "github.com/exprlab/stepwise/internal/ast"
import "github.com/exprlab/stepwise/internal/typesystem"

// parseADT parses "data Name var* = ctorAlt ('|' ctorAlt)*", where a
// ctorAlt is either a prefix constructor ("Cons a (List a)") or an infix
// one ("a :+: b"). Declared infix constructors always associate right at
// a fixed display precedence — this parser is a harness, not a full
// fixity-declaration front end (spec.md §1 Non-goals).
func (p *Parser) parseADT() (ast.ADTDefinition, error) {
	p.advance() // "data"
	name, err := p.expect(TConstr, "expected type name after 'data'")
	if err != nil {
		return ast.ADTDefinition{}, err
	}
	var params []string
	for p.cur().Type == TName {
		params = append(params, p.advance().Lit)
	}
	if _, err := p.expect(TEquals, "expected '=' in data declaration"); err != nil {
		return ast.ADTDefinition{}, err
	}

	var ctors []ast.DataConstructor
	for {
		c, err := p.parseCtorAlt()
		if err != nil {
			return ast.ADTDefinition{}, err
		}
		ctors = append(ctors, c)
		if p.cur().Type == TPipe {
			p.advance()
			continue
		}
		break
	}
	return ast.ADTDefinition{Name: name.Lit, TypeParams: params, Constructors: ctors}, nil
}

func (p *Parser) parseCtorAlt() (ast.DataConstructor, error) {
	if p.cur().Type == TConstr {
		nameTok := p.advance()
		var args []typesystem.Type
		for p.startsAtomType() {
			t, err := p.parseAtomType()
			if err != nil {
				return ast.DataConstructor{}, err
			}
			args = append(args, t)
		}
		if p.cur().Type == TOp {
			left := typesystem.Type(typesystem.TypeCons{Name: nameTok.Lit, Params: args})
			if len(args) == 0 {
				left = typesystem.TypeCons{Name: nameTok.Lit}
			}
			return p.finishInfixCtor(left)
		}
		return ast.DataConstructor{Name: nameTok.Lit, ParamTypes: args}, nil
	}
	left, err := p.parseAtomType()
	if err != nil {
		return ast.DataConstructor{}, err
	}
	return p.finishInfixCtor(left)
}

func (p *Parser) finishInfixCtor(left typesystem.Type) (ast.DataConstructor, error) {
	if p.cur().Type != TOp {
		return ast.DataConstructor{}, &ParseError{p.cur(), "expected infix constructor symbol"}
	}
	sym := p.advance().Lit
	right, err := p.parseAppType()
	if err != nil {
		return ast.DataConstructor{}, err
	}
	return ast.DataConstructor{
		Infix:      true,
		Symbol:     sym,
		Assoc:      ast.AssocRight,
		Precedence: 5,
		LeftType:   left,
		RightType:  right,
	}, nil
}
