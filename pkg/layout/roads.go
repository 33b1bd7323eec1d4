// Package layout implements the spatial generation phases: road network
// generation, park and fountain placement, and building placement. Each
// phase returns its placed entities together with a validation report;
// shortfalls are reported, never fatal.
package layout

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/geo"
	"github.com/ditharaavindi/city-generator/pkg/raster"
	"github.com/ditharaavindi/city-generator/pkg/validation"
)

// roadMargin is the inset from the screen edges used by every road
// pattern.
const roadMargin = 50

// Road is a rasterized road: an ordered point sequence plus a pixel
// width. After obstacle filtering the sequence may contain gaps where it
// crossed a reserved circle; that fragmentation is expected.
type Road struct {
	Points []raster.Point `json:"points"`
	Width  int            `json:"width"`
}

// RoadGenerator produces road networks for a fixed viewport. Its random
// stream is seeded once at construction and persists across generation
// calls.
type RoadGenerator struct {
	screenWidth  int
	screenHeight int
	rng          *rand.Rand
}

// NewRoadGenerator creates a road generator for the given viewport.
func NewRoadGenerator(width, height int) *RoadGenerator {
	return &RoadGenerator{
		screenWidth:  width,
		screenHeight: height,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate builds the road network selected by the config's road pattern.
func (g *RoadGenerator) Generate(cfg *config.Config) []Road {
	switch cfg.RoadPattern {
	case config.RoadRadial:
		return g.generateRadial(cfg)
	case config.RoadRandom:
		return g.generateRandom(cfg)
	default:
		return g.generateGrid(cfg)
	}
}

// GenerateAvoidingObstacles generates the configured road network and then
// removes every road point that falls inside a reserved circle (park or
// fountain, via the derived center/radius test). Roads left with no points
// are dropped. This is a post-filter, not replanning: roads end up
// visually broken at park boundaries on purpose.
func (g *RoadGenerator) GenerateAvoidingObstacles(cfg *config.Config, parks []Park, fountain *Park) ([]Road, *validation.Report) {
	report := validation.NewReport()
	all := g.Generate(cfg)

	var circles []geo.Circle
	for _, park := range parks {
		if len(park.Boundary) == 0 {
			continue
		}
		circles = append(circles, park.Circle())
	}
	if fountain != nil && len(fountain.Boundary) > 0 {
		circles = append(circles, fountain.Circle())
	}

	var filtered []Road
	removed := 0
	for _, road := range all {
		kept := make([]raster.Point, 0, len(road.Points))
		for _, pt := range road.Points {
			inside := false
			for _, c := range circles {
				if c.ContainsRasterPoint(pt) {
					inside = true
					removed++
					break
				}
			}
			if !inside {
				kept = append(kept, pt)
			}
		}
		if len(kept) > 0 {
			filtered = append(filtered, Road{Points: kept, Width: road.Width})
		}
	}

	report.AddInfo(validation.Result{
		Stage: validation.StageSpatial,
		Message: fmt.Sprintf("generated %d roads (%s pattern), removed %d points inside %d reserved circles, kept %d roads",
			len(all), cfg.RoadPattern, removed, len(circles), len(filtered)),
	})
	return filtered, report
}

// generateGrid lays out layoutSize+1 horizontal and layoutSize+1 vertical
// roads across the margin-inset screen.
func (g *RoadGenerator) generateGrid(cfg *config.Config) []Road {
	var roads []Road
	spacing := (g.screenWidth - 2*roadMargin) / cfg.LayoutSize

	for i := 0; i <= cfg.LayoutSize; i++ {
		y := roadMargin + i*spacing
		roads = append(roads, g.createRoad(roadMargin, y, g.screenWidth-roadMargin, y, cfg.RoadWidth))
	}
	for i := 0; i <= cfg.LayoutSize; i++ {
		x := roadMargin + i*spacing
		roads = append(roads, g.createRoad(x, roadMargin, x, g.screenHeight-roadMargin, cfg.RoadWidth))
	}

	return roads
}

// generateRadial lays out layoutSize spokes from the screen center plus
// layoutSize/2 concentric rings. Rings are built by sampling the circle
// rasterizer at stride-8 intervals and connecting the samples with
// straight segments, which yields a faceted ring rather than a smooth
// circle.
func (g *RoadGenerator) generateRadial(cfg *config.Config) []Road {
	var roads []Road

	centerX := g.screenWidth / 2
	centerY := g.screenHeight / 2
	maxRadius := min(g.screenWidth, g.screenHeight)/2 - roadMargin

	numSpokes := cfg.LayoutSize
	for i := 0; i < numSpokes; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSpokes)
		endX := centerX + int(float64(maxRadius)*math.Cos(angle))
		endY := centerY + int(float64(maxRadius)*math.Sin(angle))

		endX = clampInt(endX, roadMargin, g.screenWidth-roadMargin)
		endY = clampInt(endY, roadMargin, g.screenHeight-roadMargin)

		roads = append(roads, g.createRoad(centerX, centerY, endX, endY, cfg.RoadWidth))
	}

	numRings := cfg.LayoutSize / 2
	for ring := 1; ring <= numRings; ring++ {
		radius := maxRadius * ring / numRings

		var valid []raster.Point
		for _, pt := range raster.Circle(centerX, centerY, radius) {
			if pt.X >= roadMargin && pt.X <= g.screenWidth-roadMargin &&
				pt.Y >= roadMargin && pt.Y <= g.screenHeight-roadMargin {
				valid = append(valid, pt)
			}
		}
		if len(valid) == 0 {
			continue
		}

		for i := 0; i < len(valid); i += 8 {
			next := (i + 8) % len(valid)
			roads = append(roads, g.createRoad(valid[i].X, valid[i].Y, valid[next].X, valid[next].Y, cfg.RoadWidth))
		}
	}

	return roads
}

// generateRandom scatters layoutSize*2 interior nodes plus 4 corner
// anchors and draws layoutSize*3 roads between randomly chosen distinct
// pairs. Duplicate and crossing roads are permitted.
func (g *RoadGenerator) generateRandom(cfg *config.Config) []Road {
	var roads []Road

	nodes := make([]raster.Point, 0, cfg.LayoutSize*2+4)
	for i := 0; i < cfg.LayoutSize*2; i++ {
		nodes = append(nodes, g.randomPoint(roadMargin))
	}
	nodes = append(nodes,
		raster.Pt(100, 100),
		raster.Pt(g.screenWidth-100, 100),
		raster.Pt(100, g.screenHeight-100),
		raster.Pt(g.screenWidth-100, g.screenHeight-100),
	)

	numRoads := cfg.LayoutSize * 3
	for i := 0; i < numRoads; i++ {
		a := g.rng.Intn(len(nodes))
		b := g.rng.Intn(len(nodes))
		if a == b {
			continue
		}
		roads = append(roads, g.createRoad(nodes[a].X, nodes[a].Y, nodes[b].X, nodes[b].Y, cfg.RoadWidth))
	}

	return roads
}

func (g *RoadGenerator) createRoad(x0, y0, x1, y1, width int) Road {
	return Road{Points: raster.Line(x0, y0, x1, y1), Width: width}
}

func (g *RoadGenerator) randomPoint(margin int) raster.Point {
	x := margin + g.rng.Intn(g.screenWidth-2*margin+1)
	y := margin + g.rng.Intn(g.screenHeight-2*margin+1)
	return raster.Pt(x, y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
