package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", Vec{3, 4}, Vec{3, 4}, 0},
		{"3-4-5 triangle", Vec{0, 0}, Vec{3, 4}, 5},
		{"negative coordinates", Vec{-1, -1}, Vec{2, 3}, 5},
		{"horizontal", Vec{10, 7}, Vec{-30, 7}, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Dist(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist(%v, %v) = %f, expected %f", tc.a, tc.b, got, tc.expected)
			}
			// Distance is symmetric
			if back := Dist(tc.b, tc.a); math.Abs(back-got) > 1e-9 {
				t.Errorf("Dist is not symmetric: %f vs %f", got, back)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3.0, 40.0, 20.0, 30.0}, // degenerate range collapses to the midpoint
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
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
