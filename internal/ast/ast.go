// Package ast defines the Tarn expression AST produced by the parser and
// consumed by later passes (pretty printer, evaluator).
package ast

import (
	"fmt"
	"strconv"
)

// Operator is the semantic operator carried by Unary and Binary nodes.
// It is decoupled from the lexical token that produced it so that passes
// over the tree never depend on the scanner's vocabulary.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpMinus
	OpPlus
	OpSlash
	OpStar
	OpBang
)

// operatorNames provides string representations for operators.
var operatorNames = map[Operator]string{
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpMinus:        "-",
	OpPlus:         "+",
	OpSlash:        "/",
	OpStar:         "*",
	OpBang:         "!",
}

// String returns the source spelling of the operator.
func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(op))
}

// Expr represents all expression nodes. Trees are strictly tree shaped:
// every node owns its children through pointers, no sharing, no cycles.
type Expr interface {
	// String returns a parenthesized debug representation of the node.
	String() string
	// Accept implements the visitor pattern.
	Accept(visitor Visitor) interface{}
	exprNode()
}

// LiteralKind discriminates the payload held by a Literal node.
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralNil
	LiteralNumber
	LiteralString
)

// Literal represents a literal value.
type Literal struct {
	Kind  LiteralKind
	Value interface{} // bool, float64, or string depending on Kind; nil for LiteralNil
}

// NewBoolLiteral creates a boolean literal node.
func NewBoolLiteral(v bool) *Literal {
	return &Literal{Kind: LiteralBool, Value: v}
}

// NewNilLiteral creates a nil literal node.
func NewNilLiteral() *Literal {
	return &Literal{Kind: LiteralNil}
}

// NewNumberLiteral creates a number literal node.
func NewNumberLiteral(v float64) *Literal {
	return &Literal{Kind: LiteralNumber, Value: v}
}

// NewStringLiteral creates a string literal node.
func NewStringLiteral(v string) *Literal {
	return &Literal{Kind: LiteralString, Value: v}
}

func (l *Literal) String() string {
	switch l.Kind {
	case LiteralNil:
		return "nil"
	case LiteralNumber:
		return strconv.FormatFloat(l.Value.(float64), 'f', -1, 64)
	case LiteralString:
		return strconv.Quote(l.Value.(string))
	default:
		return fmt.Sprintf("%v", l.Value)
	}
}
func (l *Literal) Accept(visitor Visitor) interface{} { return visitor.VisitLiteral(l) }
func (l *Literal) exprNode()                          {}

// Unary represents prefix operations such as negation and logical not.
type Unary struct {
	Operator Operator
	Right    Expr
}

func (u *Unary) String() string                     { return fmt.Sprintf("(%s%s)", u.Operator, u.Right) }
func (u *Unary) Accept(visitor Visitor) interface{} { return visitor.VisitUnary(u) }
func (u *Unary) exprNode()                          {}

// Binary represents infix binary operations.
type Binary struct {
	Left     Expr
	Operator Operator
	Right    Expr
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}
func (b *Binary) Accept(visitor Visitor) interface{} { return visitor.VisitBinary(b) }
func (b *Binary) exprNode()                          {}

// Grouping marks an explicitly parenthesized expression so precedence
// overrides survive later passes.
type Grouping struct {
	Expr Expr
}

func (g *Grouping) String() string                     { return fmt.Sprintf("(group %s)", g.Expr) }
func (g *Grouping) Accept(visitor Visitor) interface{} { return visitor.VisitGrouping(g) }
func (g *Grouping) exprNode()                          {}
