package parser

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.errorf(p.curToken, "expression too complex: recursion depth limit exceeded")
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf(p.curToken, "expected an expression, got %s", describe(p.curToken))
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

// parseRValue is an expression or `do a unless cond otherwise b done`.
func (p *Parser) parseRValue() ast.Expression {
	if p.curTokenIs(token.DO) {
		return p.parseUnlessExpression()
	}
	return p.parseExpression(LOWEST)
}

func (p *Parser) parseUnlessExpression() ast.Expression {
	expr := &ast.UnlessExpression{Token: p.curToken}
	p.nextToken()
	if expr.Then = p.parseExpression(LOWEST); expr.Then == nil {
		return nil
	}
	if !p.expectPeek(token.UNLESS) {
		return nil
	}
	p.nextToken()
	if expr.Condition = p.parseExpression(LOWEST); expr.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.OTHERWISE) {
		return nil
	}
	p.nextToken()
	if expr.Otherwise = p.parseExpression(LOWEST); expr.Otherwise == nil {
		return nil
	}
	if !p.expectPeek(token.DONE) {
		return nil
	}
	return expr
}

// parsePrefixExpression handles unary + and -. A negated integer literal is
// folded into the literal; any other operand becomes 0 - operand.
func (p *Parser) parsePrefixExpression() ast.Expression {
	opToken := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	if opToken.Type == token.PLUS {
		return operand
	}
	if lit, ok := operand.(*ast.IntegerLiteral); ok {
		return &ast.IntegerLiteral{Token: opToken, Value: -lit.Value}
	}
	return &ast.BinaryExpression{
		Token:    opToken,
		Operator: ast.OpMinus,
		Left:     &ast.IntegerLiteral{Token: opToken, Value: 0},
		Right:    operand,
	}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.BinaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '('
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}
