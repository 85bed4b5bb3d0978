package core

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		v, size  float64
		expected float64
	}{
		{"inside", 5, 10, 5},
		{"zero", 0, 10, 0},
		{"at size", 10, 10, 0},
		{"past size", 12.5, 10, 2.5},
		{"negative", -1, 10, 9},
		{"far negative", -25, 10, 5},
		{"tiny negative", -1e-18, 10, 0},
		{"zero size", 5, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Wrap(tc.v, tc.size)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.size, result, tc.expected)
			}
			if tc.size > 0 && (result < 0 || result >= tc.size) {
				t.Errorf("Wrap(%v, %v) = %v, outside [0, %v)", tc.v, tc.size, result, tc.size)
			}
		})
	}
}

func TestWrapVec(t *testing.T) {
	v := WrapVec(V(-1, 31), 80, 30)
	if v.X != 79 || v.Y != 1 {
		t.Errorf("WrapVec = %+v, expected {79 1}", v)
	}
}

func TestFromHeading(t *testing.T) {
	tests := []struct {
		deg  float64
		x, y float64
	}{
		{0, 0, -1},  // up
		{90, 1, 0},  // right
		{180, 0, 1}, // down
		{270, -1, 0},
	}

	for _, tc := range tests {
		d := FromHeading(tc.deg)
		if math.Abs(d.X-tc.x) > 1e-9 || math.Abs(d.Y-tc.y) > 1e-9 {
			t.Errorf("FromHeading(%v) = %+v, expected (%v, %v)", tc.deg, d, tc.x, tc.y)
		}
		if math.Abs(d.Len()-1) > 1e-9 {
			t.Errorf("FromHeading(%v) should be a unit vector, len %v", tc.deg, d.Len())
		}
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(4, 6)

	if got := a.Add(b); got != V(5, 8) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != V(3, 4) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist = %v, expected 5", got)
	}
}

func TestNormalizeDeg(t *testing.T) {
	if got := NormalizeDeg(-5); got != 355 {
		t.Errorf("NormalizeDeg(-5) = %v, expected 355", got)
	}
	if got := NormalizeDeg(725); got != 5 {
		t.Errorf("NormalizeDeg(725) = %v, expected 5", got)
	}
}
