// Package parser implements the Tarn recursive descent expression parser.
// Precedence is encoded as a chain of parsing functions, one per level,
// each delegating to the next tighter-binding level for its operands:
//
//	expression → equality → comparison → term → factor → unary → primary
//
// All left-associative levels share one generic binary-fold routine; the
// levels differ only in the operators they recognize and the operand
// parser they delegate to.
package parser

import (
	"fmt"
	"strconv"

	"github.com/tarn-lang/tarn/internal/ast"
	"github.com/tarn-lang/tarn/internal/lexer"
	"github.com/tarn-lang/tarn/internal/position"
)

// ParseError represents a parsing error with source context. Parsing has
// exactly one failure class: any grammar violation aborts the whole parse
// with no partial tree and no recovery.
type ParseError struct {
	Pos     position.Position
	Message string
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Parser holds the single cursor shared by the precedence chain.
type Parser struct {
	cursor *Cursor
}

// NewParser creates a parser over a materialized token sequence.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{cursor: NewCursor(tokens)}
}

// Parse parses a single expression from a token sequence. It returns a
// complete tree or an error, never a partial tree.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	return NewParser(tokens).ParseExpression()
}

// ParseExpression is the entry into the precedence chain.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	return p.parseEquality()
}

// operatorMap recognizes the operators of one precedence level. Tokens
// outside the level map to ok == false.
type operatorMap func(tok lexer.Token) (ast.Operator, bool)

// operandParser parses one operand at the next tighter-binding level.
type operandParser func() (ast.Expr, error)

// parseBinary implements generic left-associative binary parsing for one
// precedence level: parse an operand, then fold further operands into a
// Binary node as long as the level's operators appear. Each continuing
// iteration consumes exactly one token, so the loop terminates.
func (p *Parser) parseBinary(mapOperator operatorMap, parseOperand operandParser) (ast.Expr, error) {
	expr, err := parseOperand()
	if err != nil {
		return nil, err
	}
	for {
		peeked, ok := p.cursor.Peek()
		if !ok {
			return expr, nil
		}
		operator, ok := mapOperator(peeked)
		if !ok {
			return expr, nil
		}
		p.cursor.Advance() // the peeked operator token
		right, err := parseOperand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
}

func equalityOperator(tok lexer.Token) (ast.Operator, bool) {
	switch tok.Type {
	case lexer.TokenBangEqual:
		return ast.OpNotEqual, true
	case lexer.TokenEqualEqual:
		return ast.OpEqual, true
	default:
		return 0, false
	}
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseBinary(equalityOperator, p.parseComparison)
}

func comparisonOperator(tok lexer.Token) (ast.Operator, bool) {
	switch tok.Type {
	case lexer.TokenGreater:
		return ast.OpGreater, true
	case lexer.TokenGreaterEqual:
		return ast.OpGreaterEqual, true
	case lexer.TokenLess:
		return ast.OpLess, true
	case lexer.TokenLessEqual:
		return ast.OpLessEqual, true
	default:
		return 0, false
	}
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	return p.parseBinary(comparisonOperator, p.parseTerm)
}

func termOperator(tok lexer.Token) (ast.Operator, bool) {
	switch tok.Type {
	case lexer.TokenMinus:
		return ast.OpMinus, true
	case lexer.TokenPlus:
		return ast.OpPlus, true
	default:
		return 0, false
	}
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinary(termOperator, p.parseFactor)
}

func factorOperator(tok lexer.Token) (ast.Operator, bool) {
	switch tok.Type {
	case lexer.TokenSlash:
		return ast.OpSlash, true
	case lexer.TokenStar:
		return ast.OpStar, true
	default:
		return 0, false
	}
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	return p.parseBinary(factorOperator, p.parseUnary)
}

func unaryOperator(tok lexer.Token) (ast.Operator, bool) {
	switch tok.Type {
	case lexer.TokenMinus:
		return ast.OpMinus, true
	case lexer.TokenBang:
		return ast.OpBang, true
	default:
		return 0, false
	}
}

// parseUnary parses right-associative prefix operators by recursing into
// itself, so chains like !!x nest naturally.
func (p *Parser) parseUnary() (ast.Expr, error) {
	peeked, ok := p.cursor.Peek()
	if !ok {
		return p.parsePrimary()
	}
	operator, ok := unaryOperator(peeked)
	if !ok {
		return p.parsePrimary()
	}
	p.cursor.Advance() // the peeked operator token
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Operator: operator, Right: right}, nil
}

// parsePrimary consumes exactly one token and resolves it to a literal
// node or a parenthesized sub-expression. Anything else is a parse error.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok, ok := p.cursor.Advance()
	if !ok {
		return nil, &ParseError{Message: "unexpected end of expression"}
	}
	switch tok.Type {
	case lexer.TokenBool:
		return ast.NewBoolLiteral(tok.Literal == "true"), nil
	case lexer.TokenNil:
		return ast.NewNilLiteral(), nil
	case lexer.TokenNumber:
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, &ParseError{Pos: tok.Span.Start, Message: fmt.Sprintf("invalid number literal %q", tok.Literal)}
		}
		return ast.NewNumberLiteral(value), nil
	case lexer.TokenString:
		return ast.NewStringLiteral(tok.Literal), nil
	case lexer.TokenLParen:
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		// A grouping closes on the matching right paren.
		closing, ok := p.cursor.Advance()
		if !ok {
			return nil, &ParseError{Pos: tok.Span.Start, Message: "unterminated grouping, expected ')'"}
		}
		if closing.Type != lexer.TokenRParen {
			return nil, &ParseError{Pos: closing.Span.Start, Message: fmt.Sprintf("expected ')', got %s", closing.Type)}
		}
		return &ast.Grouping{Expr: expr}, nil
	default:
		return nil, &ParseError{Pos: tok.Span.Start, Message: fmt.Sprintf("unexpected token %s in expression", tok.Type)}
	}
}
