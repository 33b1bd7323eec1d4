// Package raster implements the classic integer rasterization algorithms
// used by the generation phases: Bresenham's line algorithm and the
// midpoint circle algorithm. Every city element starts life as a sequence
// of pixel-exact Points produced here.
package raster

// Point is a 2D integer pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Line returns every pixel on the straight path from (x0,y0) to (x1,y1)
// inclusive, computed with Bresenham's integer error accumulation. The
// sequence starts at (x0,y0), ends at (x1,y1), and consecutive points
// differ by at most one in each axis. All eight octants and degenerate
// horizontal/vertical lines are handled.
func Line(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	points := make([]Point, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := x0, y0

	for {
		points = append(points, Point{X: x, Y: y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}

	return points
}

// Circle returns the perimeter pixels of a circle of radius r centered at
// (cx,cy), computed with the midpoint circle algorithm. For each decision
// step all eight symmetric reflections of the octant offset are emitted,
// so the returned order interleaves octants rather than walking the
// perimeter; callers must not assume consecutive points are adjacent.
func Circle(cx, cy, r int) []Point {
	x, y := 0, r
	d := 1 - r

	var points []Point
	emit := func(x, y int) {
		points = append(points,
			Point{cx + x, cy + y},
			Point{cx - x, cy + y},
			Point{cx + x, cy - y},
			Point{cx - x, cy - y},
			Point{cx + y, cy + x},
			Point{cx - y, cy + x},
			Point{cx + y, cy - x},
			Point{cx - y, cy - x},
		)
	}

	emit(x, y)
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
		emit(x, y)
	}

	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
