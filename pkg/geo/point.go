// Package geo provides the small geometric vocabulary shared by the
// generation phases: float points in screen space, circles derived from
// rasterized boundary point sets, and padded axis-aligned rectangles used
// for conservative collision testing.
package geo

import "math"

// Point2D represents a point in screen pixel space (Y grows downward).
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor for Point2D.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// DistanceSq returns the squared distance from p to q.
func (p Point2D) DistanceSq(q Point2D) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
