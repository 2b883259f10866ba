package parser

import "github.com/tarn-lang/tarn/internal/lexer"

// Cursor is a monotonic position into a materialized token sequence.
// Exactly one cursor exists per parse; every parsing function consumes
// tokens through it so consumption stays globally ordered. It supports
// one token of lookahead and never rewinds.
type Cursor struct {
	tokens []lexer.Token
	index  int
}

// NewCursor creates a cursor positioned at the first token.
func NewCursor(tokens []lexer.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the next token without consuming it. Peek is idempotent:
// calling it repeatedly returns the same token and advances nothing.
// The second return value is false at end of stream.
func (c *Cursor) Peek() (lexer.Token, bool) {
	if c.index >= len(c.tokens) {
		return lexer.Token{}, false
	}
	return c.tokens[c.index], true
}

// Advance consumes and returns the next token. The second return value
// is false at end of stream.
func (c *Cursor) Advance() (lexer.Token, bool) {
	if c.index >= len(c.tokens) {
		return lexer.Token{}, false
	}
	tok := c.tokens[c.index]
	c.index++
	return tok, true
}
