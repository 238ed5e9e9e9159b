package parser

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/token"
)

// NAME ( args )
func (p *Parser) parseFunctionCall() ast.Expression {
	call := &ast.FunctionCall{Token: p.curToken, Name: p.newIdentifier()}
	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	call.Arguments = args
	return call
}

// Name ( args ) as a statement
func (p *Parser) parseProcedureCall() *ast.ProcedureCall {
	call := &ast.ProcedureCall{Token: p.curToken, Name: p.newIdentifier()}
	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	call.Arguments = args
	return call
}

func (p *Parser) parseProcedureCallExpression() ast.Expression {
	if call := p.parseProcedureCall(); call != nil {
		return call
	}
	return nil
}

func (p *Parser) parseCallArguments() ([]ast.Expression, bool) {
	if !p.expectPeek(token.LPAREN) {
		return nil, false
	}
	var args []ast.Expression
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, true
	}
	for {
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return args, true
}
