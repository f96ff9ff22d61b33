package gamemath

// Rect is an axis-aligned rectangle with a top-left origin and y pointing down.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether a and b overlap. Every comparison is strict, so
// rectangles that only share an edge do not intersect, while a zero-size
// rectangle strictly inside the other does.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// ContainsPoint reports whether (x, y) lies strictly inside r.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}
