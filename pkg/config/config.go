// Package config defines the city generation configuration: building and
// park counts, road pattern, skyline policy, texture theme and sizing
// options. A Config is immutable per generation call; it affects layout
// only, except View3D which selects the rendered projection.
package config

import "fmt"

// RoadPattern selects the road network layout algorithm.
type RoadPattern string

const (
	RoadGrid   RoadPattern = "grid"   // evenly spaced horizontal and vertical roads
	RoadRadial RoadPattern = "radial" // spokes from the center plus concentric rings
	RoadRandom RoadPattern = "random" // random connections between scattered nodes
)

// ParseRoadPattern converts a string into a RoadPattern.
func ParseRoadPattern(s string) (RoadPattern, error) {
	switch RoadPattern(s) {
	case RoadGrid, RoadRadial, RoadRandom:
		return RoadPattern(s), nil
	}
	return "", fmt.Errorf("unknown road pattern %q", s)
}

// Skyline selects the building height distribution policy.
type Skyline string

const (
	SkylineLowRise    Skyline = "low_rise"   // all low buildings
	SkylineMidRise    Skyline = "mid_rise"   // all medium buildings
	SkylineSkyscraper Skyline = "skyscraper" // mostly tall with some medium
	SkylineMixed      Skyline = "mixed"      // uniform mix of all classes
)

// ParseSkyline converts a string into a Skyline.
func ParseSkyline(s string) (Skyline, error) {
	switch Skyline(s) {
	case SkylineLowRise, SkylineMidRise, SkylineSkyscraper, SkylineMixed:
		return Skyline(s), nil
	}
	return "", fmt.Errorf("unknown skyline %q", s)
}

// Theme selects the visual palette used when rendering buildings.
type Theme string

const (
	ThemeModern     Theme = "modern"
	ThemeClassic    Theme = "classic"
	ThemeIndustrial Theme = "industrial"
	ThemeFuturistic Theme = "futuristic"
)

// ParseTheme converts a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeModern, ThemeClassic, ThemeIndustrial, ThemeFuturistic:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Config holds every user-controlled generation parameter.
type Config struct {
	NumBuildings int `yaml:"num_buildings" json:"num_buildings"`
	LayoutSize   int `yaml:"layout_size" json:"layout_size"`

	RoadPattern RoadPattern `yaml:"road_pattern" json:"road_pattern"`
	RoadWidth   int         `yaml:"road_width" json:"road_width"`

	Skyline Skyline `yaml:"skyline" json:"skyline"`
	Theme   Theme   `yaml:"theme" json:"theme"`

	ParkRadius     int `yaml:"park_radius" json:"park_radius"`
	NumParks       int `yaml:"num_parks" json:"num_parks"`
	FountainRadius int `yaml:"fountain_radius" json:"fountain_radius"`

	UseStandardSize bool    `yaml:"use_standard_size" json:"use_standard_size"`
	StandardWidth   float64 `yaml:"standard_width" json:"standard_width"`
	StandardDepth   float64 `yaml:"standard_depth" json:"standard_depth"`

	View3D bool `yaml:"view_3d" json:"view_3d"`
}

// Default returns the stock medium-city configuration: 20 buildings on a
// 10x10 grid with mixed heights, 3 parks and a central fountain.
func Default() Config {
	cfg := Config{
		NumBuildings:    20,
		LayoutSize:      10,
		RoadPattern:     RoadGrid,
		RoadWidth:       14,
		Skyline:         SkylineMixed,
		Theme:           ThemeModern,
		ParkRadius:      40,
		NumParks:        3,
		FountainRadius:  25,
		UseStandardSize: true,
		View3D:          false,
	}
	cfg.UpdateStandardSize(800, 50)
	return cfg
}

// UpdateStandardSize recomputes the standard building footprint from the
// layout grid: buildings are sized to 40% of a grid cell so they sit
// inside one block with room for roads.
func (c *Config) UpdateStandardSize(screenWidth, margin int) {
	cellSize := float64(screenWidth-2*margin) / float64(c.LayoutSize)
	c.StandardWidth = cellSize * 0.40
	c.StandardDepth = cellSize * 0.40
}
