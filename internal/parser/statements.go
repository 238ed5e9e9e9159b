package parser

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/token"
)

// ParseProgram parses definition* statement (',' statement)* EOF.
// It returns nil after a syntax error.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Token: p.curToken, File: p.ctx.FilePath}

	for p.curTokenIs(token.VAR) || p.curTokenIs(token.PROCEDURE) || p.curTokenIs(token.FUNCTION) {
		def := p.parseDefinition()
		if def == nil {
			return nil
		}
		program.Definitions = append(program.Definitions, def)
		p.nextToken()
	}

	program.Statements = p.parseStatementList()
	if p.failed {
		return nil
	}
	if !p.expectPeek(token.EOF) {
		return nil
	}
	return program
}

func (p *Parser) parseDefinition() ast.Definition {
	switch p.curToken.Type {
	case token.VAR:
		if def := p.parseVariableDef(); def != nil {
			return def
		}
	case token.PROCEDURE:
		if def := p.parseProcedureDef(); def != nil {
			return def
		}
	case token.FUNCTION:
		if def := p.parseFunctionDef(); def != nil {
			return def
		}
	}
	return nil
}

// parseStatementList parses statement (',' statement)*. On return curToken is
// the last token of the last statement.
func (p *Parser) parseStatementList() []ast.Statement {
	var stmts []ast.Statement
	for {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		stmts = append(stmts, stmt)
		if !p.peekTokenIs(token.COMMA) {
			return stmts
		}
		p.nextToken() // ','
		p.nextToken()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.PROC_IDENT:
		if call := p.parseProcedureCall(); call != nil {
			return call
		}
	case token.IDENT:
		if stmt := p.parseAssignment(); stmt != nil {
			return stmt
		}
	case token.PRINT:
		if stmt := p.parsePrintStatement(); stmt != nil {
			return stmt
		}
	case token.DO:
		return p.parseDoStatement()
	case token.RETURN:
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
	default:
		p.errorf(p.curToken, "expected a statement, got %s", describe(p.curToken))
	}
	return nil
}

// var IDENT = rvalue
func (p *Parser) parseVariableDef() *ast.VariableDef {
	def := &ast.VariableDef{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	def.Name = p.newIdentifier()
	if !p.expectPeek(token.EQ) {
		return nil
	}
	p.nextToken()
	def.Init = p.parseRValue()
	if def.Init == nil {
		return nil
	}
	return def
}

// function NAME { formals } return type locals is rvalue end function
func (p *Parser) parseFunctionDef() *ast.FunctionDef {
	def := &ast.FunctionDef{Token: p.curToken}
	if !p.expectPeek(token.FUNC_IDENT) {
		return nil
	}
	def.Name = p.newIdentifier()

	formals, ok := p.parseFormals()
	if !ok {
		return nil
	}
	def.Formals = formals

	if !p.expectPeek(token.RETURN) || !p.expectPeek(token.IDENT) {
		return nil
	}
	def.ReturnType = p.curToken.Lexeme
	def.ReturnToken = p.curToken

	locals, ok := p.parseLocals()
	if !ok {
		return nil
	}
	def.Locals = locals

	if !p.expectPeek(token.IS) {
		return nil
	}
	p.nextToken()
	def.Body = p.parseRValue()
	if def.Body == nil {
		return nil
	}
	if !p.expectPeek(token.END) || !p.expectPeek(token.FUNCTION) {
		return nil
	}
	return def
}

// procedure Name { formals } [return type] locals is statements end procedure
func (p *Parser) parseProcedureDef() *ast.ProcedureDef {
	def := &ast.ProcedureDef{Token: p.curToken}
	if !p.expectPeek(token.PROC_IDENT) {
		return nil
	}
	def.Name = p.newIdentifier()

	formals, ok := p.parseFormals()
	if !ok {
		return nil
	}
	def.Formals = formals

	if p.peekTokenIs(token.RETURN) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		def.ReturnType = p.curToken.Lexeme
		def.ReturnToken = p.curToken
	}

	locals, ok := p.parseLocals()
	if !ok {
		return nil
	}
	def.Locals = locals

	if !p.expectPeek(token.IS) {
		return nil
	}
	p.nextToken()
	def.Body = p.parseStatementList()
	if def.Body == nil {
		return nil
	}
	if !p.expectPeek(token.END) || !p.expectPeek(token.PROCEDURE) {
		return nil
	}
	return def
}

// { name[type], ... } with curToken on the callee name.
func (p *Parser) parseFormals() ([]*ast.FormalArg, bool) {
	if !p.expectPeek(token.LCURLY) {
		return nil, false
	}
	var formals []*ast.FormalArg
	if p.peekTokenIs(token.RCURLY) {
		p.nextToken()
		return formals, true
	}
	for {
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		formal := &ast.FormalArg{Token: p.curToken, Name: p.newIdentifier()}
		if !p.expectPeek(token.LSQUARE) || !p.expectPeek(token.IDENT) {
			return nil, false
		}
		formal.TypeName = p.curToken.Lexeme
		if !p.expectPeek(token.RSQUARE) {
			return nil, false
		}
		formals = append(formals, formal)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.expectPeek(token.RCURLY) {
		return nil, false
	}
	return formals, true
}

func (p *Parser) parseLocals() ([]*ast.VariableDef, bool) {
	var locals []*ast.VariableDef
	for p.peekTokenIs(token.VAR) {
		p.nextToken()
		def := p.parseVariableDef()
		if def == nil {
			return nil, false
		}
		locals = append(locals, def)
	}
	return locals, true
}

// IDENT = rvalue | IDENT . IDENT = rvalue
func (p *Parser) parseAssignment() *ast.Assignment {
	name := p.newIdentifier()
	var target ast.LValue = name
	if p.peekTokenIs(token.DOT) {
		p.nextToken()
		dot := p.curToken
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		target = &ast.AttrAssign{Token: dot, Target: name, Attr: p.curToken.Lexeme}
	}
	if !p.expectPeek(token.EQ) {
		return nil
	}
	stmt := &ast.Assignment{Token: p.curToken, Target: target}
	p.nextToken()
	stmt.Value = p.parseRValue()
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

// print item ('&' item)*
func (p *Parser) parsePrintStatement() *ast.PrintStatement {
	stmt := &ast.PrintStatement{Token: p.curToken}
	for {
		p.nextToken()
		var item ast.Expression
		if p.curTokenIs(token.STRING) {
			item = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
		} else {
			item = p.parseExpression(LOWEST)
		}
		if item == nil {
			return nil
		}
		stmt.Items = append(stmt.Items, item)
		if !p.peekTokenIs(token.AMPERSAND) {
			return stmt
		}
		p.nextToken()
	}
}

// do statements until expr
// do statements unless expr [otherwise statements] done
func (p *Parser) parseDoStatement() ast.Statement {
	doToken := p.curToken
	p.nextToken()
	body := p.parseStatementList()
	if body == nil {
		return nil
	}

	switch p.peekToken.Type {
	case token.UNTIL:
		p.nextToken()
		p.nextToken()
		cond := p.parseExpression(LOWEST)
		if cond == nil {
			return nil
		}
		return &ast.LoopStatement{Token: doToken, Body: body, Condition: cond}
	case token.UNLESS:
		p.nextToken()
		p.nextToken()
		stmt := &ast.UnlessStatement{Token: doToken, Body: body}
		stmt.Condition = p.parseExpression(LOWEST)
		if stmt.Condition == nil {
			return nil
		}
		if p.peekTokenIs(token.OTHERWISE) {
			p.nextToken()
			p.nextToken()
			stmt.Otherwise = p.parseStatementList()
			if stmt.Otherwise == nil {
				return nil
			}
		}
		if !p.expectPeek(token.DONE) {
			return nil
		}
		return stmt
	}
	p.errorf(p.peekToken, "expected 'until' or 'unless' after do-block, got %s", describe(p.peekToken))
	return nil
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) newIdentifier() *ast.Identifier {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}
