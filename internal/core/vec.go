package core

import "math"

// Vec2 is a point or direction in the continuous playfield.
// The y axis grows downward, matching screen rows.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// FromHeading returns the unit direction for a heading in degrees.
// 0° points up and angles grow clockwise.
func FromHeading(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: math.Sin(rad), Y: -math.Cos(rad)}
}

// NormalizeDeg maps an angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	return Wrap(deg, 360)
}

// Wrap maps v onto [0, size) as if the axis were a ring.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	// math.Mod of a tiny negative value can round back up to size.
	if r >= size {
		r = 0
	}
	return r
}

// WrapVec wraps both coordinates onto a w×h torus.
func WrapVec(v Vec2, w, h float64) Vec2 {
	return Vec2{X: Wrap(v.X, w), Y: Wrap(v.Y, h)}
}
