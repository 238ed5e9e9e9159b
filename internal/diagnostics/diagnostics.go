// Package diagnostics defines the coded, line-addressed reports produced by
// every static stage (lexer, parser, AST loader, symbol builder, resolver and
// verifier passes).
package diagnostics

import (
	"fmt"
	"sort"

	"github.com/funvibe/datelang/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal character or malformed token
	ErrL002 ErrorCode = "L002" // integer literal out of range
	ErrL003 ErrorCode = "L003" // unterminated string or comment

	// Parser / AST loader
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // malformed AST document

	// Symbols
	ErrS001 ErrorCode = "S001" // redefinition
	ErrS002 ErrorCode = "S002" // undefined symbol

	// Verifier passes
	ErrA001 ErrorCode = "A001" // arity
	ErrA002 ErrorCode = "A002" // type mismatch
	ErrA003 ErrorCode = "A003" // procedure call inside function
	ErrA004 ErrorCode = "A004" // misplaced date literal
	ErrA005 ErrorCode = "A005" // illegal date attribute
	ErrA006 ErrorCode = "A006" // return type consistency

	// Runtime (internal, never part of the static taxonomy)
	ErrR001 ErrorCode = "R001"
)

var categories = map[ErrorCode]string{
	ErrL001: "LexicalError",
	ErrL002: "LexicalError",
	ErrL003: "LexicalError",
	ErrP001: "SyntaxError",
	ErrP002: "SyntaxError",
	ErrS001: "RedefinitionError",
	ErrS002: "UndefinedSymbolError",
	ErrA001: "ArityError",
	ErrA002: "TypeMismatchError",
	ErrA003: "ScopeViolationError",
	ErrA004: "LiteralPlacementError",
	ErrA005: "AttributeLegalityError",
	ErrA006: "ReturnConsistencyError",
	ErrR001: "InternalError",
}

// Category returns the taxonomy name of the code, e.g. "ArityError".
func (c ErrorCode) Category() string {
	if name, ok := categories[c]; ok {
		return name
	}
	return "Error"
}

type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func NewErrorf(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return NewError(code, tok, fmt.Sprintf(format, args...))
}

// Line is the 1-based source line the diagnostic points at.
func (e *DiagnosticError) Line() int {
	return e.Token.Line
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: [%s] %s", e.File, e.Token.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("line %d: [%s] %s", e.Token.Line, e.Code, e.Message)
}

// Sort orders diagnostics by line, then column, keeping the emission order
// of diagnostics that share a position.
func Sort(errs []*DiagnosticError) {
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Token.Line != errs[j].Token.Line {
			return errs[i].Token.Line < errs[j].Token.Line
		}
		return errs[i].Token.Column < errs[j].Token.Column
	})
}
