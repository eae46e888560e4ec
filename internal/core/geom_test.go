package core

import "testing"

func TestRectTouches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"shared vertical edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), true},
		{"shared corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 10, 10), true},
		{"contained", NewRect(0, 0, 30, 30), NewRect(10, 10, 5, 5), true},
		{"one pixel gap horizontal", NewRect(0, 0, 10, 10), NewRect(11, 0, 10, 10), false},
		{"one pixel gap vertical", NewRect(0, 0, 10, 10), NewRect(0, 11, 10, 10), false},
		{"x overlaps, y apart", NewRect(0, 0, 10, 10), NewRect(5, 40, 10, 10), false},
		{"negative coordinates", NewRect(-20, -20, 10, 10), NewRect(-15, -15, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Touches(tc.b); got != tc.expected {
				t.Errorf("Touches() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Touches(tc.a); got != tc.expected {
				t.Errorf("Touches() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestPointAdd(t *testing.T) {
	got := Point{X: 2, Y: -3}.Add(Point{X: 5, Y: 1})
	if got != (Point{X: 7, Y: -2}) {
		t.Errorf("Add() = %+v, expected {7 -2}", got)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		in, expected int
	}{
		{-7, -1},
		{0, 0},
		{3, 1},
	}

	for _, tc := range tests {
		if got := Sign(tc.in); got != tc.expected {
			t.Errorf("Sign(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
