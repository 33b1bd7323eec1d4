package geo

// Rect is an axis-aligned rectangle in screen pixel space.
type Rect struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// RectAround returns the rectangle centered at (x,y) with the given total
// width and height.
func RectAround(x, y, width, height float64) Rect {
	hw, hh := width/2, height/2
	return Rect{
		Min: Point2D{X: x - hw, Y: y - hh},
		Max: Point2D{X: x + hw, Y: y + hh},
	}
}

// Expand returns the rectangle grown by buffer on all four sides.
func (r Rect) Expand(buffer float64) Rect {
	return Rect{
		Min: Point2D{X: r.Min.X - buffer, Y: r.Min.Y - buffer},
		Max: Point2D{X: r.Max.X + buffer, Y: r.Max.Y + buffer},
	}
}

// Intersects reports whether r and other overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Max.X < other.Min.X || r.Min.X > other.Max.X ||
		r.Max.Y < other.Min.Y || r.Min.Y > other.Max.Y)
}

// ContainsPoint reports whether p lies within r (edges inclusive).
func (r Rect) ContainsPoint(p Point2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ClosestPointTo returns the point within r nearest to p. If p is inside
// r the result is p itself.
func (r Rect) ClosestPointTo(p Point2D) Point2D {
	return Point2D{
		X: clamp(p.X, r.Min.X, r.Max.X),
		Y: clamp(p.Y, r.Min.Y, r.Max.Y),
	}
}

// Within reports whether r lies entirely inside outer.
func (r Rect) Within(outer Rect) bool {
	return r.Min.X >= outer.Min.X && r.Max.X <= outer.Max.X &&
		r.Min.Y >= outer.Min.Y && r.Max.Y <= outer.Max.Y
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
