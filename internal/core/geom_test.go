package core

import (
	"math"
	"testing"
)

func TestRectOverlapsX(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping spans",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 50, 10, 10),
			expected: true,
		},
		{
			name:     "disjoint spans",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained span",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 300, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.OverlapsX(tc.b); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.OverlapsX(tc.a); got != tc.expected {
				t.Errorf("OverlapsX() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectWithinY(t *testing.T) {
	r := NewRect(0, 100, 60, 60)

	tests := []struct {
		name        string
		top, bottom float64
		expected    bool
	}{
		{"fully inside", 50, 200, true},
		{"exact fit", 100, 160, true},
		{"pokes above", 101, 200, false},
		{"pokes below", 50, 159, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.WithinY(tc.top, tc.bottom); got != tc.expected {
				t.Errorf("WithinY(%v, %v) = %v, expected %v", tc.top, tc.bottom, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected {15 17.5}", c)
	}
}

func TestVecDist(t *testing.T) {
	a := Vec{X: 0, Y: 0}
	b := Vec{X: 3, Y: 4}

	if d := a.Dist(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	if got := a.Add(b); got != b {
		t.Errorf("Add() = %v, expected %v", got, b)
	}
}

func TestCirclesTouch(t *testing.T) {
	a := Vec{X: 0, Y: 0}
	b := Vec{X: 10, Y: 0}

	if !CirclesTouch(a, 5, b, 5.1) {
		t.Error("circles with combined radius above distance should touch")
	}
	if CirclesTouch(a, 5, b, 5) {
		t.Error("circles exactly at combined radius should not touch (strict)")
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
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorPink.Hex(); got != "#FF6B9D" {
		t.Errorf("ColorPink.Hex() = %q, expected #FF6B9D", got)
	}
	if len(BalloonPalette) != 8 {
		t.Errorf("BalloonPalette has %d colors, expected 8", len(BalloonPalette))
	}
}
