package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{"inside", NewRect(0, 0, 10, 10), 5, 5, true},
		{"top-left corner", NewRect(0, 0, 10, 10), 0, 0, true},
		{"right edge excluded", NewRect(0, 0, 10, 10), 10, 5, false},
		{"bottom edge excluded", NewRect(0, 0, 10, 10), 5, 10, false},
		{"outside", NewRect(2, 2, 3, 3), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1.0 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1.0", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0.0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0.0", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %f, expected 0.25", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 || Abs(0) != 0 {
		t.Error("Abs returned unexpected values")
	}
}
