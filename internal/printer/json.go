package printer

import (
	"encoding/json"

	"github.com/tarn-lang/tarn/internal/ast"
)

// JSON node shapes, one per expression variant. Child fields hold the
// encoded form of the child node, keeping the output strictly tree
// shaped like the AST itself.
type literalJSON struct {
	Type  string      `json:"type"`
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
}

type unaryJSON struct {
	Type     string      `json:"type"`
	Operator string      `json:"operator"`
	Right    interface{} `json:"right"`
}

type binaryJSON struct {
	Type     string      `json:"type"`
	Operator string      `json:"operator"`
	Left     interface{} `json:"left"`
	Right    interface{} `json:"right"`
}

type groupingJSON struct {
	Type string      `json:"type"`
	Expr interface{} `json:"expr"`
}

// literalKindNames provides the JSON spelling of literal kinds.
var literalKindNames = map[ast.LiteralKind]string{
	ast.LiteralBool:   "bool",
	ast.LiteralNil:    "nil",
	ast.LiteralNumber: "number",
	ast.LiteralString: "string",
}

// JSONEncoder renders an expression tree as a JSON document, for tools
// that post-process parser output.
type JSONEncoder struct{}

// PrintJSON renders the expression tree as indented JSON.
func PrintJSON(expr ast.Expr) (string, error) {
	return NewJSONEncoder().Print(expr)
}

// NewJSONEncoder creates a JSON encoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Print renders the expression tree as indented JSON.
func (enc *JSONEncoder) Print(expr ast.Expr) (string, error) {
	data, err := json.MarshalIndent(expr.Accept(enc), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// VisitLiteral encodes a literal with its kind and raw payload.
func (enc *JSONEncoder) VisitLiteral(node *ast.Literal) interface{} {
	return literalJSON{
		Type:  "literal",
		Kind:  literalKindNames[node.Kind],
		Value: node.Value,
	}
}

// VisitUnary encodes the operator spelling and the encoded operand.
func (enc *JSONEncoder) VisitUnary(node *ast.Unary) interface{} {
	return unaryJSON{
		Type:     "unary",
		Operator: node.Operator.String(),
		Right:    node.Right.Accept(enc),
	}
}

// VisitBinary encodes the operator spelling and both encoded operands.
func (enc *JSONEncoder) VisitBinary(node *ast.Binary) interface{} {
	return binaryJSON{
		Type:     "binary",
		Operator: node.Operator.String(),
		Left:     node.Left.Accept(enc),
		Right:    node.Right.Accept(enc),
	}
}

// VisitGrouping encodes the encoded inner expression.
func (enc *JSONEncoder) VisitGrouping(node *ast.Grouping) interface{} {
	return groupingJSON{
		Type: "grouping",
		Expr: node.Expr.Accept(enc),
	}
}
