package ast

import "testing"

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op       Operator
		expected string
	}{
		{OpEqual, "=="},
		{OpNotEqual, "!="},
		{OpGreater, ">"},
		{OpGreaterEqual, ">="},
		{OpLess, "<"},
		{OpLessEqual, "<="},
		{OpMinus, "-"},
		{OpPlus, "+"},
		{OpSlash, "/"},
		{OpStar, "*"},
		{OpBang, "!"},
	}

	for i, tt := range tests {
		if actual := tt.op.String(); actual != tt.expected {
			t.Errorf("tests[%d] - operator string wrong. expected=%q, got=%q", i, tt.expected, actual)
		}
	}

	if actual := Operator(99).String(); actual != "UNKNOWN(99)" {
		t.Errorf("out-of-range operator string wrong. got=%q", actual)
	}
}

func TestNodeDebugStrings(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{"Number literal", NewNumberLiteral(123), "123"},
		{"Nil literal", NewNilLiteral(), "nil"},
		{"String literal", NewStringLiteral("a"), `"a"`},
		{
			name: "Binary",
			expr: &Binary{
				Left:     NewNumberLiteral(1),
				Operator: OpPlus,
				Right:    NewNumberLiteral(2),
			},
			expected: "(1 + 2)",
		},
		{
			name:     "Unary",
			expr:     &Unary{Operator: OpBang, Right: NewBoolLiteral(true)},
			expected: "(!true)",
		},
		{
			name:     "Grouping",
			expr:     &Grouping{Expr: NewNumberLiteral(3)},
			expected: "(group 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual := tt.expr.String(); actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}

// countingVisitor counts visited nodes per kind.
type countingVisitor struct {
	literals, unaries, binaries, groupings int
}

func (v *countingVisitor) VisitLiteral(node *Literal) interface{} {
	v.literals++
	return nil
}

func (v *countingVisitor) VisitUnary(node *Unary) interface{} {
	v.unaries++
	return node.Right.Accept(v)
}

func (v *countingVisitor) VisitBinary(node *Binary) interface{} {
	v.binaries++
	node.Left.Accept(v)
	return node.Right.Accept(v)
}

func (v *countingVisitor) VisitGrouping(node *Grouping) interface{} {
	v.groupings++
	return node.Expr.Accept(v)
}

func TestVisitorDispatch(t *testing.T) {
	// (1 + 2) * -3
	expr := &Binary{
		Left: &Grouping{
			Expr: &Binary{
				Left:     NewNumberLiteral(1),
				Operator: OpPlus,
				Right:    NewNumberLiteral(2),
			},
		},
		Operator: OpStar,
		Right:    &Unary{Operator: OpMinus, Right: NewNumberLiteral(3)},
	}

	v := &countingVisitor{}
	expr.Accept(v)

	if v.literals != 3 || v.unaries != 1 || v.binaries != 2 || v.groupings != 1 {
		t.Errorf("visit counts wrong. got literals=%d unaries=%d binaries=%d groupings=%d",
			v.literals, v.unaries, v.binaries, v.groupings)
	}
}
