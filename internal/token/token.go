package token

import "fmt"

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string      // Raw text as it appeared in the source
	Literal interface{} // Decoded value: string for names, int64 for INT, Date for DATE
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

// Date is the decoded payload of a DATE_LITERAL token.
type Date struct {
	Year  int
	Month int
	Day   int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT      TokenType = "IDENT"      // lower-case start: variables, formals
	FUNC_IDENT TokenType = "FUNC_IDENT" // ALLCAPS: functions
	PROC_IDENT TokenType = "PROC_IDENT" // Capitalized: procedures
	INT        TokenType = "INT_LITERAL"
	DATE       TokenType = "DATE_LITERAL"
	STRING     TokenType = "STRING"

	// Punctuation
	LPAREN     TokenType = "("
	RPAREN     TokenType = ")"
	LSQUARE    TokenType = "["
	RSQUARE    TokenType = "]"
	LCURLY     TokenType = "{"
	RCURLY     TokenType = "}"
	APOSTROPHE TokenType = "'"
	AMPERSAND  TokenType = "&"
	COMMA      TokenType = ","
	DOT        TokenType = "."

	// Operators
	EQ    TokenType = "="
	LT    TokenType = "<"
	PLUS  TokenType = "+"
	MINUS TokenType = "-"
	MULT  TokenType = "*"
	DIV   TokenType = "/"

	// Keywords
	VAR       TokenType = "VAR"
	IS        TokenType = "IS"
	UNLESS    TokenType = "UNLESS"
	OTHERWISE TokenType = "OTHERWISE"
	UNTIL     TokenType = "UNTIL"
	DO        TokenType = "DO"
	DONE      TokenType = "DONE"
	PROCEDURE TokenType = "PROCEDURE"
	FUNCTION  TokenType = "FUNCTION"
	RETURN    TokenType = "RETURN"
	PRINT     TokenType = "PRINT"
	END       TokenType = "END"
)

var keywords = map[string]TokenType{
	"var":       VAR,
	"is":        IS,
	"unless":    UNLESS,
	"otherwise": OTHERWISE,
	"until":     UNTIL,
	"do":        DO,
	"done":      DONE,
	"procedure": PROCEDURE,
	"function":  FUNCTION,
	"return":    RETURN,
	"print":     PRINT,
	"end":       END,
}

// LookupKeyword returns the keyword type for ident, if it is one.
func LookupKeyword(ident string) (TokenType, bool) {
	tok, ok := keywords[ident]
	return tok, ok
}

// AtLine builds a synthetic token that only carries a position.
// Used for nodes that do not come from source text (e.g. decoded AST documents).
func AtLine(line int) Token {
	return Token{Line: line}
}
