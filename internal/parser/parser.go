package parser

import (
	"fmt"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/pipeline"
	"github.com/funvibe/datelang/internal/token"
)

// MaxRecursionDepth bounds expression nesting.
const MaxRecursionDepth = 1000

const (
	_ int = iota
	LOWEST
	COMPARE // = <
	SUM     // + -
	PRODUCT // * /
	PREFIX  // -x +x
)

var precedences = map[token.TokenType]int{
	token.EQ:    COMPARE,
	token.LT:    COMPARE,
	token.PLUS:  SUM,
	token.MINUS: SUM,
	token.MULT:  PRODUCT,
	token.DIV:   PRODUCT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser is a recursive-descent parser with Pratt-style expressions.
// Parsing stops at the first syntax error.
type Parser struct {
	tokens []token.Token
	pos    int
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	depth  int
	failed bool

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{tokens: tokens, ctx: ctx}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:      p.parseIdentifierOrAttrRead,
		token.INT:        p.parseIntegerLiteral,
		token.DATE:       p.parseDateLiteral,
		token.STRING:     p.parseMisplacedString,
		token.FUNC_IDENT: p.parseFunctionCall,
		token.PROC_IDENT: p.parseProcedureCallExpression,
		token.LPAREN:     p.parseGroupedExpression,
		token.MINUS:      p.parsePrefixExpression,
		token.PLUS:       p.parsePrefixExpression,
	}
	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for tt := range precedences {
		p.infixParseFns[tt] = p.parseInfixExpression
	}

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
		return
	}
	// Past the end: keep yielding EOF at the last known position
	p.peekToken = token.Token{Type: token.EOF, Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.errorf(p.peekToken, "expected %s, got %s", t, describe(p.peekToken))
}

// errorf records a syntax error. Only the first one is kept.
func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	if p.failed {
		return
	}
	p.failed = true
	p.ctx.AddErrors(diagnostics.NewError(diagnostics.ErrP001, tok, fmt.Sprintf(format, args...)))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT, token.FUNC_IDENT, token.PROC_IDENT, token.INT, token.DATE, token.STRING:
		return fmt.Sprintf("%s %s", tok.Type, tok.Lexeme)
	}
	return fmt.Sprintf("'%s'", tok.Lexeme)
}
