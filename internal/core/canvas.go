package core

import "math"

// Canvas plots sub-cell points onto a Screen using half-block characters.
// Each terminal cell holds two vertical sub-pixels, so a W×H screen exposes a
// W×2H logical plane where one unit is as wide as it is tall on a typical
// terminal font.
type Canvas struct {
	width  int
	height int // in sub-pixels (screen rows * 2)
	pixels []bool
	colors []Color // per sub-pixel
}

// NewCanvas creates a canvas covering a cols×rows screen area.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the canvas for a new screen size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.width = cols
	c.height = rows * 2
	c.pixels = make([]bool, c.width*c.height)
	c.colors = make([]Color, c.width*c.height)
}

// Width returns the logical width in units.
func (c *Canvas) Width() float64 {
	return float64(c.width)
}

// Height returns the logical height in units.
func (c *Canvas) Height() float64 {
	return float64(c.height)
}

// Clear unsets every sub-pixel.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = false
		c.colors[i] = ColorDefault
	}
}

// Plot sets the sub-pixel containing the logical point p.
// Points outside the canvas are ignored.
func (c *Canvas) Plot(p Vec2, col Color) {
	x := int(math.Floor(p.X))
	y := int(math.Floor(p.Y))
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x
	c.pixels[i] = true
	c.colors[i] = col
}

// Line plots a straight segment from a to b.
func (c *Canvas) Line(a, b Vec2, col Color) {
	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		c.Plot(a, col)
		return
	}
	step := d.Scale(1 / float64(steps))
	p := a
	for i := 0; i <= steps; i++ {
		c.Plot(p, col)
		p = p.Add(step)
	}
}

// Circle plots the outline of a circle.
func (c *Canvas) Circle(center Vec2, r float64, col Color) {
	if r <= 0 {
		c.Plot(center, col)
		return
	}
	n := int(math.Max(8, math.Ceil(2*math.Pi*r)))
	for i := 0; i < n; i++ {
		c.Plot(center.Add(FromHeading(float64(i)*360/float64(n)).Scale(r)), col)
	}
}

// Polygon plots a regular polygon outline with the given number of sides,
// radius and rotation in degrees.
func (c *Canvas) Polygon(center Vec2, r float64, sides int, rotation float64, col Color) {
	if sides < 3 {
		c.Circle(center, r, col)
		return
	}
	prev := center.Add(FromHeading(rotation).Scale(r))
	for i := 1; i <= sides; i++ {
		next := center.Add(FromHeading(rotation + float64(i)*360/float64(sides)).Scale(r))
		c.Line(prev, next, col)
		prev = next
	}
}

// Triangle plots the outline of the triangle a-b-c.
func (c *Canvas) Triangle(a, b, v Vec2, col Color) {
	c.Line(a, b, col)
	c.Line(b, v, col)
	c.Line(v, a, col)
}

// Flush writes the plotted sub-pixels into dst, offset by rowOffset screen
// rows. Cells with no plotted pixels are left untouched.
func (c *Canvas) Flush(dst *Screen, rowOffset int) {
	for row := 0; row*2 < c.height; row++ {
		for x := 0; x < c.width; x++ {
			top := row*2*c.width + x
			bottom := top + c.width
			hasTop := c.pixels[top]
			hasBottom := bottom < len(c.pixels) && c.pixels[bottom]

			var r rune
			col := ColorDefault
			switch {
			case hasTop && hasBottom:
				r = '█'
				col = c.colors[top]
			case hasTop:
				r = '▀'
				col = c.colors[top]
			case hasBottom:
				r = '▄'
				col = c.colors[bottom]
			default:
				continue
			}
			dst.SetColor(x, row+rowOffset, r, col)
		}
	}
}
