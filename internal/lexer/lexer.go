// Package lexer implements the Tarn lexical analyzer. It turns source
// text into the token vocabulary the expression grammar consumes and
// attaches a source span to every token for later diagnostics.
package lexer

import (
	"fmt"

	"github.com/tarn-lang/tarn/internal/position"
)

// TokenType represents the type of a token.
type TokenType int

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types.
const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenIdentifier
	TokenNumber
	TokenString
	TokenBool
	TokenNil

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// Delimiters
	TokenLParen
	TokenRParen
)

// tokenNames provides string representations for token types.
var tokenNames = map[TokenType]string{
	TokenEOF:   "EOF",
	TokenError: "ERROR",

	TokenIdentifier: "IDENTIFIER",
	TokenNumber:     "NUMBER",
	TokenString:     "STRING",
	TokenBool:       "BOOL",
	TokenNil:        "NIL",

	TokenPlus:         "PLUS",
	TokenMinus:        "MINUS",
	TokenStar:         "STAR",
	TokenSlash:        "SLASH",
	TokenBang:         "BANG",
	TokenBangEqual:    "BANG_EQUAL",
	TokenEqual:        "EQUAL",
	TokenEqualEqual:   "EQUAL_EQUAL",
	TokenGreater:      "GREATER",
	TokenGreaterEqual: "GREATER_EQUAL",
	TokenLess:         "LESS",
	TokenLessEqual:    "LESS_EQUAL",

	TokenLParen: "LPAREN",
	TokenRParen: "RPAREN",
}

// keywords maps reserved words to their token types.
var keywords = map[string]TokenType{
	"true":  TokenBool,
	"false": TokenBool,
	"nil":   TokenNil,
}

// Token represents a lexical token with position information. The parser
// reads only Type and Literal; the Span is carried for diagnostics.
type Token struct {
	Type    TokenType
	Literal string
	Span    position.Span
}

// String returns a string representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Pos: %s}", t.Type, t.Literal, t.Span.Start)
}

// ScanError represents a lexical error with position information.
type ScanError struct {
	Pos     position.Position
	Message string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error at %s: %s", e.Pos, e.Message)
}

// Lexer represents the lexical analyzer.
type Lexer struct {
	input        string
	filename     string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

// New creates a new lexer instance for anonymous input.
func New(input string) *Lexer {
	return NewWithFilename(input, "")
}

// NewWithFilename creates a new lexer instance with filename for error reporting.
func NewWithFilename(input, filename string) *Lexer {
	l := &Lexer{
		input:    input,
		filename: filename,
		line:     1,
		column:   0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // NUL represents end of input
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// currentPos returns the position of the character under examination.
func (l *Lexer) currentPos() position.Position {
	return position.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.column,
		Offset:   l.position,
	}
}

// skipWhitespace skips spaces, tabs, carriage returns, and newlines.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// skipLineComment skips a // comment up to (not including) the newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// NextToken scans and returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	for l.ch == '/' && l.peekChar() == '/' {
		l.skipLineComment()
		l.skipWhitespace()
	}

	start := l.currentPos()

	switch l.ch {
	case 0:
		return l.makeToken(TokenEOF, "", start)
	case '(':
		l.readChar()
		return l.makeToken(TokenLParen, "(", start)
	case ')':
		l.readChar()
		return l.makeToken(TokenRParen, ")", start)
	case '+':
		l.readChar()
		return l.makeToken(TokenPlus, "+", start)
	case '-':
		l.readChar()
		return l.makeToken(TokenMinus, "-", start)
	case '*':
		l.readChar()
		return l.makeToken(TokenStar, "*", start)
	case '/':
		l.readChar()
		return l.makeToken(TokenSlash, "/", start)
	case '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.makeToken(TokenBangEqual, "!=", start)
		}
		return l.makeToken(TokenBang, "!", start)
	case '=':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.makeToken(TokenEqualEqual, "==", start)
		}
		return l.makeToken(TokenEqual, "=", start)
	case '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.makeToken(TokenGreaterEqual, ">=", start)
		}
		return l.makeToken(TokenGreater, ">", start)
	case '<':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.makeToken(TokenLessEqual, "<=", start)
		}
		return l.makeToken(TokenLess, "<", start)
	case '"':
		return l.readString(start)
	default:
		if isDigit(l.ch) {
			return l.readNumber(start)
		}
		if isLetter(l.ch) {
			return l.readIdentifier(start)
		}
		ch := l.ch
		l.readChar()
		return l.makeToken(TokenError, fmt.Sprintf("unexpected character %q", ch), start)
	}
}

// makeToken builds a token spanning from start to the current position.
func (l *Lexer) makeToken(tokenType TokenType, literal string, start position.Position) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Span:    position.Between(start, l.currentPos()),
	}
}

// readNumber reads an integer or decimal number literal.
func (l *Lexer) readNumber(start position.Position) Token {
	begin := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.makeToken(TokenNumber, l.input[begin:l.position], start)
}

// readString reads a double-quoted string literal. The token literal is
// the unquoted content; an unterminated string yields an error token.
func (l *Lexer) readString(start position.Position) Token {
	l.readChar() // consume opening quote
	begin := l.position
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		return l.makeToken(TokenError, "unterminated string literal", start)
	}
	content := l.input[begin:l.position]
	l.readChar() // consume closing quote
	return l.makeToken(TokenString, content, start)
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier(start position.Position) Token {
	begin := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	word := l.input[begin:l.position]
	if tokenType, ok := keywords[word]; ok {
		return l.makeToken(tokenType, word, start)
	}
	return l.makeToken(TokenIdentifier, word, start)
}

// ScanAll materializes the full token sequence for the input, excluding
// the trailing EOF token. The first lexical error aborts the scan.
func (l *Lexer) ScanAll() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokenEOF:
			return tokens, nil
		case TokenError:
			return nil, &ScanError{Pos: tok.Span.Start, Message: tok.Literal}
		default:
			tokens = append(tokens, tok)
		}
	}
}

// Scan tokenizes source text in one call.
func Scan(input string) ([]Token, error) {
	return New(input).ScanAll()
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
