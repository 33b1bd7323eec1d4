package layout

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/geo"
	"github.com/ditharaavindi/city-generator/pkg/validation"
)

// BuildingType classifies a building by height.
type BuildingType string

const (
	LowRise  BuildingType = "low_rise"  // 1-3 floors
	MidRise  BuildingType = "mid_rise"  // 4-10 floors
	HighRise BuildingType = "high_rise" // 11+ floors
)

// Height sampling ranges per building type.
const (
	lowRiseMinHeight, lowRiseMaxHeight   = 10.0, 30.0
	midRiseMinHeight, midRiseMaxHeight   = 40.0, 100.0
	highRiseMinHeight, highRiseMaxHeight = 120.0, 250.0
)

// Collision buffers for building validation.
const (
	screenEdgeBuffer = 60.0 // minimum footprint distance from screen edges
	buildingBuffer   = 25.0 // minimum gap between two building footprints
	parkBuffer       = 35.0 // minimum gap between a footprint and a park or fountain
	roadBuffer       = 5.0  // extra gap beyond half the road width

	// Candidate centers are sampled at least this far from the screen
	// edges.
	buildingPlacementMargin = 80

	// Randomized footprint dimensions are sampled from this range.
	minFootprint, maxFootprint = 20.0, 60.0

	// buildingAttemptsPerBuilding bounds the placement retry loop.
	buildingAttemptsPerBuilding = 50
)

// Building is a rectangular footprint with a vertical extent, immutable
// once placed.
type Building struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Depth  float64      `json:"depth"`
	Height float64      `json:"height"`
	Type   BuildingType `json:"type"`
}

// Footprint returns the building's unpadded bounding box.
func (b Building) Footprint() geo.Rect {
	return geo.RectAround(b.X, b.Y, b.Width, b.Depth)
}

// PlaceBuildings scatters up to cfg.NumBuildings rectangular buildings,
// rejecting candidates that sit too close to the screen edge, another
// building, a park, the fountain, or a road. The retry budget is
// NumBuildings*50 attempts; a shortfall is reported as a warning, never
// an error.
func PlaceBuildings(cfg *config.Config, roads []Road, parks []Park, fountain *Park, screenWidth, screenHeight int) ([]Building, *validation.Report) {
	report := validation.NewReport()
	if cfg.NumBuildings == 0 {
		return nil, report
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Derived circles are recomputed once per run; the derivation itself
	// is the same one used by every other collision test.
	parkCircles := make([]geo.Circle, len(parks))
	for i, p := range parks {
		parkCircles[i] = p.Circle()
	}
	var fountainCircle *geo.Circle
	if fountain != nil && len(fountain.Boundary) > 0 {
		c := fountain.Circle()
		fountainCircle = &c
	}

	screen := geo.Rect{
		Min: geo.Pt(screenEdgeBuffer, screenEdgeBuffer),
		Max: geo.Pt(float64(screenWidth)-screenEdgeBuffer, float64(screenHeight)-screenEdgeBuffer),
	}

	var buildings []Building
	maxAttempts := cfg.NumBuildings * buildingAttemptsPerBuilding

	for attempts := 0; attempts < maxAttempts && len(buildings) < cfg.NumBuildings; attempts++ {
		x := float64(buildingPlacementMargin + rng.Intn(screenWidth-2*buildingPlacementMargin+1))
		y := float64(buildingPlacementMargin + rng.Intn(screenHeight-2*buildingPlacementMargin+1))

		var width, depth float64
		if cfg.UseStandardSize {
			width, depth = cfg.StandardWidth, cfg.StandardDepth
		} else {
			width = minFootprint + rng.Float64()*(maxFootprint-minFootprint)
			depth = minFootprint + rng.Float64()*(maxFootprint-minFootprint)
		}

		if !isValidPosition(x, y, width, depth, screen, buildings, parks, parkCircles, fountain, fountainCircle, roads) {
			continue
		}

		btype, height := sampleSkyline(cfg.Skyline, rng)
		buildings = append(buildings, Building{
			X: x, Y: y,
			Width: width, Depth: depth,
			Height: height,
			Type:   btype,
		})
	}

	if len(buildings) < cfg.NumBuildings {
		report.AddWarning(validation.Result{
			Stage: validation.StageSpatial,
			Message: fmt.Sprintf("placed only %d of %d buildings before exhausting %d attempts",
				len(buildings), cfg.NumBuildings, maxAttempts),
			Field:       "num_buildings",
			ActualValue: len(buildings),
			Expected:    fmt.Sprintf("%d", cfg.NumBuildings),
		})
	}

	counts := map[BuildingType]int{}
	for _, b := range buildings {
		counts[b.Type]++
	}
	report.AddInfo(validation.Result{
		Stage: validation.StageSpatial,
		Message: fmt.Sprintf("placed %d buildings (low: %d, mid: %d, high: %d)",
			len(buildings), counts[LowRise], counts[MidRise], counts[HighRise]),
	})

	return buildings, report
}

// isValidPosition applies every placement check to a candidate footprint.
// All checks must pass.
func isValidPosition(x, y, width, depth float64, screen geo.Rect, buildings []Building, parks []Park, parkCircles []geo.Circle, fountain *Park, fountainCircle *geo.Circle, roads []Road) bool {
	box := geo.RectAround(x, y, width, depth)

	// Screen bounds with edge buffer.
	if !box.Within(screen) {
		return false
	}

	// Gap against every placed building.
	for _, other := range buildings {
		if box.Expand(buildingBuffer).Intersects(other.Footprint()) {
			return false
		}
	}

	// Parks and fountain get a two-fold test: the circle-to-box proximity
	// test on the derived circle, and a per-point test on every boundary
	// point. The two can disagree near the buffer edge, so both run.
	for i := range parks {
		if circleTooClose(box, parkCircles[i]) {
			return false
		}
		if boundaryTooClose(box, parks[i]) {
			return false
		}
	}
	if fountainCircle != nil {
		if circleTooClose(box, *fountainCircle) {
			return false
		}
		if boundaryTooClose(box, *fountain) {
			return false
		}
	}

	// Roads: each stored point is expanded by half the road's width plus
	// a small buffer.
	for _, road := range roads {
		expanded := box.Expand(float64(road.Width)/2 + roadBuffer)
		for _, pt := range road.Points {
			if expanded.ContainsPoint(geo.Pt(float64(pt.X), float64(pt.Y))) {
				return false
			}
		}
	}

	return true
}

// circleTooClose clamps the circle center into the buffer-padded box and
// compares against the buffered radius; the buffer applies on both sides.
func circleTooClose(box geo.Rect, c geo.Circle) bool {
	closest := box.Expand(parkBuffer).ClosestPointTo(c.Center)
	limit := c.Radius + parkBuffer
	return closest.DistanceSq(c.Center) < limit*limit
}

func boundaryTooClose(box geo.Rect, p Park) bool {
	expanded := box.Expand(parkBuffer)
	for _, pt := range p.Boundary {
		if expanded.ContainsPoint(geo.Pt(float64(pt.X), float64(pt.Y))) {
			return true
		}
	}
	return false
}

// sampleSkyline maps the skyline policy to a building type and a height
// drawn uniformly from that type's range.
func sampleSkyline(policy config.Skyline, rng *rand.Rand) (BuildingType, float64) {
	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}

	switch policy {
	case config.SkylineLowRise:
		return LowRise, uniform(lowRiseMinHeight, lowRiseMaxHeight)
	case config.SkylineMidRise:
		return MidRise, uniform(midRiseMinHeight, midRiseMaxHeight)
	case config.SkylineSkyscraper:
		if rng.Intn(3) <= 1 {
			return HighRise, uniform(highRiseMinHeight, highRiseMaxHeight)
		}
		return MidRise, uniform(midRiseMinHeight, midRiseMaxHeight)
	default: // mixed
		switch rng.Intn(3) {
		case 0:
			return LowRise, uniform(lowRiseMinHeight, lowRiseMaxHeight)
		case 1:
			return MidRise, uniform(midRiseMinHeight, midRiseMaxHeight)
		default:
			return HighRise, uniform(highRiseMinHeight, highRiseMaxHeight)
		}
	}
}
