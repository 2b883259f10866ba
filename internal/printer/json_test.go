package printer

import (
	"encoding/json"
	"testing"

	"github.com/tarn-lang/tarn/internal/ast"
)

func TestPrintJSONLiteral(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{
			name: "Number",
			expr: ast.NewNumberLiteral(123),
			expected: `{
  "type": "literal",
  "kind": "number",
  "value": 123
}`,
		},
		{
			name: "Bool",
			expr: ast.NewBoolLiteral(false),
			expected: `{
  "type": "literal",
  "kind": "bool",
  "value": false
}`,
		},
		{
			name: "Nil",
			expr: ast.NewNilLiteral(),
			expected: `{
  "type": "literal",
  "kind": "nil",
  "value": null
}`,
		},
		{
			name: "String",
			expr: ast.NewStringLiteral("hi"),
			expected: `{
  "type": "literal",
  "kind": "string",
  "value": "hi"
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := PrintJSON(tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, actual)
			}
		})
	}
}

func TestPrintJSONBinary(t *testing.T) {
	expr := &ast.Binary{
		Left:     ast.NewNumberLiteral(1),
		Operator: ast.OpPlus,
		Right: &ast.Unary{
			Operator: ast.OpMinus,
			Right:    ast.NewNumberLiteral(2),
		},
	}

	expected := `{
  "type": "binary",
  "operator": "+",
  "left": {
    "type": "literal",
    "kind": "number",
    "value": 1
  },
  "right": {
    "type": "unary",
    "operator": "-",
    "right": {
      "type": "literal",
      "kind": "number",
      "value": 2
    }
  }
}`

	actual, err := PrintJSON(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

// The JSON form mirrors the tree structure, so a grouping survives as
// its own node and the document round-trips as valid JSON.
func TestPrintJSONGroupingRoundTrip(t *testing.T) {
	expr := &ast.Grouping{
		Expr: &ast.Binary{
			Left:     ast.NewNumberLiteral(1),
			Operator: ast.OpPlus,
			Right:    ast.NewNumberLiteral(2),
		},
	}

	out, err := PrintJSON(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Type string `json:"type"`
		Expr struct {
			Type     string `json:"type"`
			Operator string `json:"operator"`
		} `json:"expr"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Type != "grouping" {
		t.Errorf("root type wrong. expected=%q, got=%q", "grouping", decoded.Type)
	}
	if decoded.Expr.Type != "binary" || decoded.Expr.Operator != "+" {
		t.Errorf("inner node wrong. expected binary %q, got %s %q",
			"+", decoded.Expr.Type, decoded.Expr.Operator)
	}
}
