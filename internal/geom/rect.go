// Package geom holds the small amount of 2D geometry the game needs.
package geom

// Point is a position on the playfield.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a square of half-size r centered on c.
func RectAround(c Point, r float64) Rect {
	return Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Intersects reports whether r and other overlap. Touching edges count as
// an overlap so a ball grazing a paddle is still a hit.
func (r Rect) Intersects(other Rect) bool {
	if r.MaxX() < other.MinX() || other.MaxX() < r.MinX() {
		return false
	}
	if r.MaxY() < other.MinY() || other.MaxY() < r.MinY() {
		return false
	}
	return true
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
