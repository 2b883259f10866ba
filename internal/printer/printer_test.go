package printer

import (
	"testing"

	"github.com/tarn-lang/tarn/internal/ast"
)

func TestPrintLiterals(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{"Integral number", ast.NewNumberLiteral(123), "123"},
		{"Decimal number", ast.NewNumberLiteral(1.5), "1.5"},
		{"True", ast.NewBoolLiteral(true), "true"},
		{"False", ast.NewBoolLiteral(false), "false"},
		{"Nil", ast.NewNilLiteral(), "nil"},
		{"String", ast.NewStringLiteral("hi"), `"hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Print(tt.expr)
			if actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}

func TestPrintComposites(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{
			name: "Binary",
			expr: &ast.Binary{
				Left:     ast.NewNumberLiteral(123),
				Operator: ast.OpPlus,
				Right:    ast.NewNumberLiteral(456),
			},
			expected: "123 + 456",
		},
		{
			name: "Unary",
			expr: &ast.Unary{
				Operator: ast.OpMinus,
				Right:    ast.NewNumberLiteral(7),
			},
			expected: "-7",
		},
		{
			name: "Grouping",
			expr: &ast.Grouping{
				Expr: &ast.Binary{
					Left:     ast.NewNumberLiteral(1),
					Operator: ast.OpPlus,
					Right:    ast.NewNumberLiteral(2),
				},
			},
			expected: "(1 + 2)",
		},
		{
			name: "Nested binary stays flat without grouping",
			expr: &ast.Binary{
				Left: &ast.Binary{
					Left:     ast.NewNumberLiteral(1),
					Operator: ast.OpPlus,
					Right:    ast.NewNumberLiteral(2),
				},
				Operator: ast.OpStar,
				Right:    ast.NewNumberLiteral(3),
			},
			expected: "1 + 2 * 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Print(tt.expr)
			if actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}
