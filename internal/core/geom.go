// Package core holds the pieces shared by the simulation and the terminal
// front end: vectors, the character screen, the half-block canvas and input
// frames. It does not import Bubble Tea, so the game logic stays testable
// without a terminal.
package core

// Rect is an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // top-left cell
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is one past the last column.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is one past the last row.
func (r Rect) Bottom() int { return r.Y + r.H }

// Centered returns a w×h rectangle centred inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}
