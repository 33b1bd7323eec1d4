// Package analytics derives summary statistics from a generated city
// snapshot: entity counts, building class breakdown, and area coverage
// estimates. Statistics are purely observational; they never influence
// generation.
package analytics

import (
	"math"

	"github.com/ditharaavindi/city-generator/pkg/layout"
	"github.com/ditharaavindi/city-generator/pkg/scene"
)

// BuildingStats summarizes the building population.
type BuildingStats struct {
	Total     int     `json:"total"`
	LowRise   int     `json:"low_rise"`
	MidRise   int     `json:"mid_rise"`
	HighRise  int     `json:"high_rise"`
	AvgHeight float64 `json:"avg_height"`
	MaxHeight float64 `json:"max_height"`
}

// Stats is the complete analytic summary of one city snapshot.
type Stats struct {
	Roads         int           `json:"roads"`
	RoadPoints    int           `json:"road_points"`
	Parks         int           `json:"parks"`
	HasFountain   bool          `json:"has_fountain"`
	Buildings     BuildingStats `json:"buildings"`
	ParkAreaPx    float64       `json:"park_area_px"`
	BuiltAreaPx   float64       `json:"built_area_px"`
	BuiltCoverage float64       `json:"built_coverage"` // fraction of the viewport under building footprints
}

// Summarize computes the statistics of a snapshot for a given viewport.
func Summarize(city *scene.City, screenWidth, screenHeight int) Stats {
	s := Stats{
		Roads:       len(city.Roads),
		Parks:       len(city.Parks),
		HasFountain: city.Fountain != nil,
	}

	for _, road := range city.Roads {
		s.RoadPoints += len(road.Points)
	}

	for _, park := range city.Parks {
		c := park.Circle()
		s.ParkAreaPx += math.Pi * c.Radius * c.Radius
	}

	s.Buildings.Total = len(city.Buildings)
	for _, b := range city.Buildings {
		switch b.Type {
		case layout.LowRise:
			s.Buildings.LowRise++
		case layout.MidRise:
			s.Buildings.MidRise++
		case layout.HighRise:
			s.Buildings.HighRise++
		}
		s.Buildings.AvgHeight += b.Height
		if b.Height > s.Buildings.MaxHeight {
			s.Buildings.MaxHeight = b.Height
		}
		s.BuiltAreaPx += b.Width * b.Depth
	}
	if s.Buildings.Total > 0 {
		s.Buildings.AvgHeight /= float64(s.Buildings.Total)
	}

	viewport := float64(screenWidth) * float64(screenHeight)
	if viewport > 0 {
		s.BuiltCoverage = s.BuiltAreaPx / viewport
	}

	return s
}
