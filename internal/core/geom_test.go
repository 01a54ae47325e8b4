package core

import (
	"math"
	"testing"
)

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		angle    float64
		expected Vec2
	}{
		{"zero angle", V(3, 4), 0, V(3, 4)},
		{"quarter turn clockwise", V(0, -1), math.Pi / 2, V(1, 0)},
		{"half turn", V(2, 1), math.Pi, V(-2, -1)},
		{"negative quarter turn", V(1, 0), -math.Pi / 2, V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.v.Rotate(tc.angle)
			if !result.ApproxEqual(tc.expected, 1e-9) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.angle, result, tc.expected)
			}
		})
	}
}

func TestVec2RotateRoundTrip(t *testing.T) {
	v := V(17.5, -3.25)
	for _, angle := range []float64{0.1, 1, -2.5, math.Pi / 4} {
		back := v.Rotate(angle).Rotate(-angle)
		if !back.ApproxEqual(v, 1e-9) {
			t.Errorf("rotate by %v and back = %v, expected %v", angle, back, v)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(4, 6)

	if got := a.Add(b); got != V(5, 8) {
		t.Errorf("Add() = %v, expected (5, 8)", got)
	}
	if got := b.Sub(a); got != V(3, 4) {
		t.Errorf("Sub() = %v, expected (3, 4)", got)
	}
	if got := a.Scale(3); got != V(3, 6) {
		t.Errorf("Scale() = %v, expected (3, 6)", got)
	}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance() = %v, expected 5", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
