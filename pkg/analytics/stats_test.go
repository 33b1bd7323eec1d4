package analytics

import (
	"math"
	"testing"

	"github.com/ditharaavindi/city-generator/pkg/layout"
	"github.com/ditharaavindi/city-generator/pkg/raster"
	"github.com/ditharaavindi/city-generator/pkg/scene"
)

func testCity() *scene.City {
	return &scene.City{
		Roads: []layout.Road{
			{Points: raster.Line(0, 0, 9, 0), Width: 14},
			{Points: raster.Line(0, 0, 0, 9), Width: 14},
		},
		Parks: []layout.Park{
			{Boundary: raster.Circle(200, 200, 40)},
		},
		Fountain: &layout.Park{Boundary: raster.Circle(400, 300, 25)},
		Buildings: []layout.Building{
			{X: 100, Y: 100, Width: 20, Depth: 30, Height: 25, Type: layout.LowRise},
			{X: 500, Y: 200, Width: 40, Depth: 40, Height: 80, Type: layout.MidRise},
			{X: 600, Y: 400, Width: 30, Depth: 20, Height: 200, Type: layout.HighRise},
		},
		Generated: true,
	}
}

func TestSummarizeCounts(t *testing.T) {
	s := Summarize(testCity(), 800, 600)

	if s.Roads != 2 {
		t.Errorf("expected 2 roads, got %d", s.Roads)
	}
	if s.RoadPoints != 20 {
		t.Errorf("expected 20 road points, got %d", s.RoadPoints)
	}
	if s.Parks != 1 {
		t.Errorf("expected 1 park, got %d", s.Parks)
	}
	if !s.HasFountain {
		t.Error("expected fountain flag set")
	}
	if s.Buildings.Total != 3 || s.Buildings.LowRise != 1 || s.Buildings.MidRise != 1 || s.Buildings.HighRise != 1 {
		t.Errorf("unexpected building breakdown: %+v", s.Buildings)
	}
}

func TestSummarizeHeights(t *testing.T) {
	s := Summarize(testCity(), 800, 600)

	wantAvg := (25.0 + 80.0 + 200.0) / 3.0
	if math.Abs(s.Buildings.AvgHeight-wantAvg) > 1e-9 {
		t.Errorf("expected avg height %.2f, got %.2f", wantAvg, s.Buildings.AvgHeight)
	}
	if s.Buildings.MaxHeight != 200 {
		t.Errorf("expected max height 200, got %.1f", s.Buildings.MaxHeight)
	}
}

func TestSummarizeAreas(t *testing.T) {
	s := Summarize(testCity(), 800, 600)

	wantBuilt := 20.0*30 + 40.0*40 + 30.0*20
	if math.Abs(s.BuiltAreaPx-wantBuilt) > 1e-9 {
		t.Errorf("expected built area %.0f, got %.0f", wantBuilt, s.BuiltAreaPx)
	}
	wantCoverage := wantBuilt / (800.0 * 600.0)
	if math.Abs(s.BuiltCoverage-wantCoverage) > 1e-9 {
		t.Errorf("expected coverage %.4f, got %.4f", wantCoverage, s.BuiltCoverage)
	}
	// The derived park circle radius sits close to the nominal 40.
	wantPark := math.Pi * 40 * 40
	if s.ParkAreaPx < wantPark*0.9 || s.ParkAreaPx > wantPark*1.1 {
		t.Errorf("park area %.0f too far from %.0f", s.ParkAreaPx, wantPark)
	}
}

func TestSummarizeEmptyCity(t *testing.T) {
	s := Summarize(&scene.City{}, 800, 600)

	if s.Roads != 0 || s.Parks != 0 || s.Buildings.Total != 0 {
		t.Errorf("expected zeroed stats, got %+v", s)
	}
	if s.HasFountain {
		t.Error("expected no fountain")
	}
	if s.Buildings.AvgHeight != 0 {
		t.Errorf("expected zero avg height, got %.1f", s.Buildings.AvgHeight)
	}
}
