package parser

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/token"
)

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, _ := p.curToken.Literal.(int64)
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseDateLiteral() ast.Expression {
	d, _ := p.curToken.Literal.(token.Date)
	return &ast.DateLiteral{Token: p.curToken, Year: d.Year, Month: d.Month, Day: d.Day}
}

func (p *Parser) parseMisplacedString() ast.Expression {
	p.errorf(p.curToken, "string literal %s is only allowed as a print item", p.curToken.Lexeme)
	return nil
}

// IDENT or IDENT ' IDENT
func (p *Parser) parseIdentifierOrAttrRead() ast.Expression {
	ident := p.newIdentifier()
	if !p.peekTokenIs(token.APOSTROPHE) {
		return ident
	}
	p.nextToken()
	read := &ast.AttrRead{Token: p.curToken, Target: ident}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	read.Attr = p.curToken.Lexeme
	return read
}
