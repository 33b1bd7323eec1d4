package raster

import (
	"math"
	"testing"
)

func TestLineHorizontal(t *testing.T) {
	got := Line(0, 0, 5, 0)
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}

	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	cases := [][4]int{
		{0, 0, 10, 3},
		{5, 5, -7, 2},
		{0, 0, 0, 9},
		{3, -4, 3, -4},
		{-2, 8, 6, -1},
		{10, 0, 0, 10},
	}

	for _, c := range cases {
		pts := Line(c[0], c[1], c[2], c[3])
		if len(pts) == 0 {
			t.Fatalf("line %v: no points", c)
		}
		if pts[0] != Pt(c[0], c[1]) {
			t.Errorf("line %v: starts at %v, expected (%d,%d)", c, pts[0], c[0], c[1])
		}
		last := pts[len(pts)-1]
		if last != Pt(c[2], c[3]) {
			t.Errorf("line %v: ends at %v, expected (%d,%d)", c, last, c[2], c[3])
		}
	}
}

func TestLineNoGaps(t *testing.T) {
	// Consecutive points must differ by at most 1 in each axis, in every
	// octant.
	for _, c := range [][4]int{
		{0, 0, 12, 5}, {0, 0, 5, 12}, {0, 0, -12, 5}, {0, 0, -5, -12},
		{0, 0, 12, -5}, {0, 0, -12, -5}, {0, 0, 5, -12}, {0, 0, -5, 12},
	} {
		pts := Line(c[0], c[1], c[2], c[3])
		for i := 1; i < len(pts); i++ {
			dx := abs(pts[i].X - pts[i-1].X)
			dy := abs(pts[i].Y - pts[i-1].Y)
			if dx > 1 || dy > 1 {
				t.Errorf("line %v: gap between %v and %v", c, pts[i-1], pts[i])
			}
		}
	}
}

func TestLineReversalSymmetry(t *testing.T) {
	// The shared-error form breaks half-pixel ties toward the start point,
	// so a reversed diagonal line may pick different pixels at tie steps.
	// Tie-free lines (axis-aligned, perfect diagonal) must match exactly;
	// for the rest, every reversed point stays within one pixel of the
	// forward rasterization.
	for _, c := range [][4]int{{0, 0, 7, 0}, {2, -1, 2, 8}, {0, 0, 6, 6}, {4, 4, -2, -2}} {
		forward := Line(c[0], c[1], c[2], c[3])
		backward := Line(c[2], c[3], c[0], c[1])
		set := make(map[Point]bool, len(forward))
		for _, p := range forward {
			set[p] = true
		}
		for _, p := range backward {
			if !set[p] {
				t.Errorf("line %v: backward point %v not in forward set", c, p)
			}
		}
	}

	forward := Line(-3, 2, 9, -7)
	backward := Line(9, -7, -3, 2)
	if len(forward) != len(backward) {
		t.Fatalf("forward has %d points, backward %d", len(forward), len(backward))
	}
	for _, p := range backward {
		near := false
		for _, q := range forward {
			if abs(p.X-q.X) <= 1 && abs(p.Y-q.Y) <= 1 {
				near = true
				break
			}
		}
		if !near {
			t.Errorf("backward point %v further than one pixel from the forward line", p)
		}
	}
}

func TestCircleCardinalPoints(t *testing.T) {
	pts := Circle(0, 0, 5)

	for _, want := range []Point{{5, 0}, {-5, 0}, {0, 5}, {0, -5}} {
		found := false
		for _, p := range pts {
			if p == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected cardinal point %v in circle", want)
		}
	}
}

func TestCircleRadiusTolerance(t *testing.T) {
	// Every point rounds to within one pixel of the requested radius.
	for _, r := range []int{1, 3, 5, 12, 40} {
		for _, p := range Circle(10, -4, r) {
			d := math.Hypot(float64(p.X-10), float64(p.Y+4))
			rd := int(math.Round(d))
			if rd < r-1 || rd > r+1 {
				t.Errorf("radius %d: point %v at distance %.2f", r, p, d)
			}
		}
	}
}

func TestCircleEightWaySymmetry(t *testing.T) {
	cx, cy := 7, 11
	set := make(map[Point]bool)
	for _, p := range Circle(cx, cy, 9) {
		set[p] = true
	}

	for p := range set {
		dx, dy := p.X-cx, p.Y-cy
		reflections := []Point{
			{cx + dx, cy + dy}, {cx - dx, cy + dy},
			{cx + dx, cy - dy}, {cx - dx, cy - dy},
			{cx + dy, cy + dx}, {cx - dy, cy + dx},
			{cx + dy, cy - dx}, {cx - dy, cy - dx},
		}
		for _, refl := range reflections {
			if !set[refl] {
				t.Errorf("missing reflection %v of %v", refl, p)
			}
		}
	}
}

func TestCircleDeterministic(t *testing.T) {
	a := Circle(3, 3, 6)
	b := Circle(3, 3, 6)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCircleZeroRadius(t *testing.T) {
	pts := Circle(4, 4, 0)
	if len(pts) == 0 {
		t.Fatal("expected points for zero radius")
	}
	for _, p := range pts {
		if p != Pt(4, 4) {
			t.Errorf("expected center point, got %v", p)
		}
	}
}
