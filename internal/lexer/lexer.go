package lexer

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number

	errors []*diagnostics.DiagnosticError
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Errors returns the diagnostics collected so far.
func (l *Lexer) Errors() []*diagnostics.DiagnosticError {
	return l.errors
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) errorf(code diagnostics.ErrorCode, line, column int, format string, args ...interface{}) {
	tok := token.Token{Type: token.ILLEGAL, Line: line, Column: column}
	l.errors = append(l.errors, diagnostics.NewErrorf(code, tok, format, args...))
}

// NextToken returns the next token. At the end of input it keeps returning
// EOF. Malformed input is reported through Errors and skipped.
func (l *Lexer) NextToken() token.Token {
	for {
		if !l.skipWhitespaceAndComments() {
			return l.eofToken()
		}
		if l.atEOF() {
			return l.eofToken()
		}
		tok, ok := l.scan()
		if ok {
			return tok
		}
	}
}

func (l *Lexer) eofToken() token.Token {
	return token.Token{Type: token.EOF, Line: l.line, Column: l.column}
}

// Tokenize lexes the whole input. The returned slice always ends with EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

var punctuation = map[rune]token.TokenType{
	'(':  token.LPAREN,
	')':  token.RPAREN,
	'[':  token.LSQUARE,
	']':  token.RSQUARE,
	'{':  token.LCURLY,
	'}':  token.RCURLY,
	'\'': token.APOSTROPHE,
	'&':  token.AMPERSAND,
	',':  token.COMMA,
	'.':  token.DOT,
	'=':  token.EQ,
	'<':  token.LT,
	'+':  token.PLUS,
	'-':  token.MINUS,
	'*':  token.MULT,
	'/':  token.DIV,
}

// scan reads one token starting at the current character. ok is false when
// the input was malformed and nothing should be emitted.
func (l *Lexer) scan() (token.Token, bool) {
	line, column := l.line, l.column

	if tt, isPunct := punctuation[l.ch]; isPunct {
		lexeme := string(l.ch)
		l.readChar()
		return token.Token{Type: tt, Lexeme: lexeme, Literal: lexeme, Line: line, Column: column}, true
	}

	switch {
	case l.ch == '"':
		return l.readString(line, column)
	case isDigit(l.ch):
		if l.looksLikeDate() {
			return l.readDate(line, column)
		}
		return l.readInt(line, column)
	case isLetter(l.ch):
		return l.readIdentifier(line, column), true
	}

	l.errorf(diagnostics.ErrL001, line, column, "illegal character %q", l.ch)
	l.readChar()
	return token.Token{}, false
}

// skipWhitespaceAndComments returns false if an unterminated comment ran to
// the end of input.
func (l *Lexer) skipWhitespaceAndComments() bool {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '%':
			line, column := l.line, l.column
			l.readChar()
			for l.ch != '%' {
				if l.atEOF() {
					l.errorf(diagnostics.ErrL003, line, column, "unterminated comment")
					return false
				}
				l.readChar()
			}
			l.readChar()
		default:
			return true
		}
	}
}

func (l *Lexer) readString(line, column int) (token.Token, bool) {
	l.readChar() // opening quote
	start := l.position
	for l.ch != '"' {
		if l.ch == '\n' || l.atEOF() {
			l.errorf(diagnostics.ErrL003, line, column, "unterminated string literal")
			return token.Token{}, false
		}
		l.readChar()
	}
	value := l.input[start:l.position]
	l.readChar() // closing quote
	return token.Token{
		Type:    token.STRING,
		Lexeme:  `"` + value + `"`,
		Literal: value,
		Line:    line,
		Column:  column,
	}, true
}

// looksLikeDate checks for DDDD-DD-DD not followed by another digit.
func (l *Lexer) looksLikeDate() bool {
	rest := l.input[l.position:]
	if len(rest) < 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		c := rune(rest[i])
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if !isDigit(c) {
			return false
		}
	}
	return len(rest) == 10 || !isDigit(rune(rest[10]))
}

func (l *Lexer) readDate(line, column int) (token.Token, bool) {
	lexeme := l.input[l.position : l.position+10]
	for i := 0; i < 10; i++ {
		l.readChar()
	}
	year, _ := strconv.Atoi(lexeme[0:4])
	month, _ := strconv.Atoi(lexeme[5:7])
	day, _ := strconv.Atoi(lexeme[8:10])
	if !validDate(year, month, day) {
		l.errorf(diagnostics.ErrL001, line, column, "invalid date literal %s", lexeme)
		return token.Token{}, false
	}
	return token.Token{
		Type:    token.DATE,
		Lexeme:  lexeme,
		Literal: token.Date{Year: year, Month: month, Day: day},
		Line:    line,
		Column:  column,
	}, true
}

func (l *Lexer) readInt(line, column int) (token.Token, bool) {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil || value >= config.MaxIntLiteral {
		l.errorf(diagnostics.ErrL002, line, column, "integer literal %s out of range (|n| < %d)", lexeme, config.MaxIntLiteral)
		return token.Token{}, false
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: value, Line: line, Column: column}, true
}

func (l *Lexer) readIdentifier(line, column int) token.Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: classifyIdentifier(lexeme), Lexeme: lexeme, Literal: lexeme, Line: line, Column: column}
}

// classifyIdentifier: lower-case start is a keyword or variable name,
// ALLCAPS (two or more characters) a function name, any other capitalized
// name a procedure name.
func classifyIdentifier(lexeme string) token.TokenType {
	first := rune(lexeme[0])
	if isLower(first) {
		if kw, ok := token.LookupKeyword(lexeme); ok {
			return kw
		}
		return token.IDENT
	}
	if len(lexeme) < 2 {
		return token.PROC_IDENT
	}
	for _, c := range lexeme[1:] {
		if isLower(c) {
			return token.PROC_IDENT
		}
	}
	return token.FUNC_IDENT
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func isLetter(ch rune) bool {
	return isLower(ch) || ('A' <= ch && ch <= 'Z')
}

func isLower(ch rune) bool {
	return 'a' <= ch && ch <= 'z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
