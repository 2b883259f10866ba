// Package printer renders a Tarn expression tree back to source-like
// text. It is the reference consumer of the AST visitor interface.
package printer

import (
	"fmt"
	"strconv"

	"github.com/tarn-lang/tarn/internal/ast"
)

// PrettyPrinter renders expressions with one space around binary
// operators and explicit parentheses only where the tree has a Grouping
// node, so precedence overrides written by the user survive printing.
type PrettyPrinter struct{}

// Print renders the expression tree as source-like text.
func Print(expr ast.Expr) string {
	return New().Print(expr)
}

// New creates a pretty printer.
func New() *PrettyPrinter {
	return &PrettyPrinter{}
}

// Print renders the expression tree as source-like text.
func (pp *PrettyPrinter) Print(expr ast.Expr) string {
	return expr.Accept(pp).(string)
}

// VisitLiteral renders a literal payload.
func (pp *PrettyPrinter) VisitLiteral(node *ast.Literal) interface{} {
	switch node.Kind {
	case ast.LiteralBool:
		return strconv.FormatBool(node.Value.(bool))
	case ast.LiteralNil:
		return "nil"
	case ast.LiteralNumber:
		return strconv.FormatFloat(node.Value.(float64), 'f', -1, 64)
	case ast.LiteralString:
		return strconv.Quote(node.Value.(string))
	default:
		return fmt.Sprintf("%v", node.Value)
	}
}

// VisitUnary renders the operator directly followed by its operand.
func (pp *PrettyPrinter) VisitUnary(node *ast.Unary) interface{} {
	return node.Operator.String() + pp.Print(node.Right)
}

// VisitBinary renders left and right operands around a spaced operator.
func (pp *PrettyPrinter) VisitBinary(node *ast.Binary) interface{} {
	return fmt.Sprintf("%s %s %s", pp.Print(node.Left), node.Operator, pp.Print(node.Right))
}

// VisitGrouping renders the inner expression in parentheses.
func (pp *PrettyPrinter) VisitGrouping(node *ast.Grouping) interface{} {
	return "(" + pp.Print(node.Expr) + ")"
}
