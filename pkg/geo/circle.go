package geo

import "github.com/ditharaavindi/city-generator/pkg/raster"

// Circle is an implicit circle approximation derived from a boundary
// point set.
type Circle struct {
	Center Point2D `json:"center"`
	Radius float64 `json:"radius"`
}

// DeriveCircle computes the effective center and radius of a rasterized
// boundary point set: the center is the arithmetic mean of the points and
// the radius is the maximum distance from that center to any point.
//
// Parks and the fountain never store their circle; every collision test
// (park spacing, road filtering, building validation, rendering) derives
// it through this one function so there is a single definition of "the
// circle" everywhere.
func DeriveCircle(boundary []raster.Point) Circle {
	if len(boundary) == 0 {
		return Circle{}
	}

	var cx, cy float64
	for _, p := range boundary {
		cx += float64(p.X)
		cy += float64(p.Y)
	}
	cx /= float64(len(boundary))
	cy /= float64(len(boundary))

	center := Point2D{X: cx, Y: cy}
	radius := 0.0
	for _, p := range boundary {
		if d := center.Distance(Pt(float64(p.X), float64(p.Y))); d > radius {
			radius = d
		}
	}

	return Circle{Center: center, Radius: radius}
}

// Contains reports whether p lies on or inside the circle.
func (c Circle) Contains(p Point2D) bool {
	return c.Center.DistanceSq(p) <= c.Radius*c.Radius
}

// ContainsRasterPoint reports whether an integer raster point lies on or
// inside the circle.
func (c Circle) ContainsRasterPoint(p raster.Point) bool {
	return c.Contains(Pt(float64(p.X), float64(p.Y)))
}
