package position

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{
			name:     "With filename",
			pos:      Position{Filename: "dir/expr.tarn", Line: 3, Column: 7, Offset: 42},
			expected: "expr.tarn:3:7",
		},
		{
			name:     "Anonymous input",
			pos:      Position{Line: 1, Column: 1, Offset: 0},
			expected: "1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual := tt.pos.String(); actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}

func TestPositionIsValid(t *testing.T) {
	valid := Position{Line: 1, Column: 1, Offset: 0}
	if !valid.IsValid() {
		t.Error("expected position to be valid")
	}

	var zero Position
	if zero.IsValid() {
		t.Error("expected zero position to be invalid")
	}
}

func TestSpanString(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		expected string
	}{
		{
			name: "Single line",
			span: Span{
				Start: Position{Line: 1, Column: 1, Offset: 0},
				End:   Position{Line: 1, Column: 4, Offset: 3},
			},
			expected: "1:1-4",
		},
		{
			name: "Multi line",
			span: Span{
				Start: Position{Line: 1, Column: 2, Offset: 1},
				End:   Position{Line: 2, Column: 3, Offset: 7},
			},
			expected: "1:2-2:3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual := tt.span.String(); actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}

func TestSourceFile(t *testing.T) {
	sf := NewSourceFile("expr.tarn", "1 + 2\n* 3")

	if line := sf.GetLine(1); line != "1 + 2" {
		t.Errorf("line 1 wrong. expected=%q, got=%q", "1 + 2", line)
	}
	if line := sf.GetLine(2); line != "* 3" {
		t.Errorf("line 2 wrong. expected=%q, got=%q", "* 3", line)
	}
	if line := sf.GetLine(3); line != "" {
		t.Errorf("out-of-range line should be empty, got=%q", line)
	}

	span := Between(
		Position{Filename: "expr.tarn", Line: 1, Column: 3, Offset: 2},
		Position{Filename: "expr.tarn", Line: 1, Column: 4, Offset: 3},
	)
	if text := sf.GetSpanText(span); text != "+" {
		t.Errorf("span text wrong. expected=%q, got=%q", "+", text)
	}
}
