package scene

import (
	"fmt"

	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/layout"
	"github.com/ditharaavindi/city-generator/pkg/validation"
)

// Generator sequences the generation phases for a fixed viewport and owns
// the current city snapshot. The phase order is a hard invariant: parks
// and the fountain are placed first, roads are generated against those
// reserved circles, and buildings are validated against the already
// filtered roads. Each Generate call replaces the snapshot wholesale.
type Generator struct {
	screenWidth  int
	screenHeight int
	roadGen      *layout.RoadGenerator
	city         *City
}

// NewGenerator creates a generator for the given viewport extent.
func NewGenerator(width, height int) *Generator {
	return &Generator{
		screenWidth:  width,
		screenHeight: height,
		roadGen:      layout.NewRoadGenerator(width, height),
	}
}

// Generate runs one full generation and replaces the stored city. The
// returned report carries per-phase info and any placement shortfalls;
// generation always completes.
func (g *Generator) Generate(cfg *config.Config) *validation.Report {
	report := validation.NewReport()

	parks, fountain, parkReport := layout.PlaceParks(cfg, g.screenWidth, g.screenHeight)
	report.Merge(parkReport)

	roads, roadReport := g.roadGen.GenerateAvoidingObstacles(cfg, parks, fountain)
	report.Merge(roadReport)

	buildings, buildingReport := layout.PlaceBuildings(cfg, roads, parks, fountain, g.screenWidth, g.screenHeight)
	report.Merge(buildingReport)

	g.city = &City{
		Roads:     roads,
		Parks:     parks,
		Fountain:  fountain,
		Buildings: buildings,
		Generated: true,
	}

	n := g.city.Counts()
	report.AddInfo(validation.Result{
		Stage: validation.StageSpatial,
		Message: fmt.Sprintf("city generation complete: %d roads, %d parks, %d fountain, %d buildings",
			n.Roads, n.Parks, n.Fountains, n.Buildings),
	})
	return report
}

// HasCity reports whether a city has been generated at least once.
func (g *Generator) HasCity() bool {
	return g.city != nil && g.city.Generated
}

// City returns the current snapshot, or nil before the first generation.
// Callers must treat the snapshot as read-only.
func (g *Generator) City() *City {
	return g.city
}

// Bounds returns the viewport extent the generator was built with.
func (g *Generator) Bounds() (width, height int) {
	return g.screenWidth, g.screenHeight
}
