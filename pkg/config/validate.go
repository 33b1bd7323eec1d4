package config

import (
	"fmt"

	"github.com/ditharaavindi/city-generator/pkg/validation"
)

// Validate checks a Config against the supported parameter ranges. A
// failed validation only gates commands that require a sensible config;
// generation itself never fails on any accepted Config.
func Validate(c *Config) *validation.Report {
	r := validation.NewReport()

	checkRange(r, "num_buildings", c.NumBuildings, 1, 100)
	checkRange(r, "layout_size", c.LayoutSize, 5, 20)
	checkRange(r, "road_width", c.RoadWidth, 2, 20)
	checkRange(r, "park_radius", c.ParkRadius, 10, 100)
	checkRange(r, "num_parks", c.NumParks, 0, 10)

	if c.FountainRadius < 0 {
		r.AddError(validation.Result{
			Stage:       validation.StageConfig,
			Message:     "fountain_radius must not be negative",
			Field:       "fountain_radius",
			ActualValue: c.FountainRadius,
			Expected:    ">= 0",
		})
	}

	if _, err := ParseRoadPattern(string(c.RoadPattern)); err != nil {
		r.AddError(validation.Result{
			Stage:       validation.StageConfig,
			Message:     err.Error(),
			Field:       "road_pattern",
			ActualValue: string(c.RoadPattern),
			Expected:    "grid, radial or random",
		})
	}
	if _, err := ParseSkyline(string(c.Skyline)); err != nil {
		r.AddError(validation.Result{
			Stage:       validation.StageConfig,
			Message:     err.Error(),
			Field:       "skyline",
			ActualValue: string(c.Skyline),
			Expected:    "low_rise, mid_rise, skyscraper or mixed",
		})
	}
	if _, err := ParseTheme(string(c.Theme)); err != nil {
		r.AddError(validation.Result{
			Stage:       validation.StageConfig,
			Message:     err.Error(),
			Field:       "theme",
			ActualValue: string(c.Theme),
			Expected:    "modern, classic, industrial or futuristic",
		})
	}

	if c.UseStandardSize && (c.StandardWidth <= 0 || c.StandardDepth <= 0) {
		r.AddError(validation.Result{
			Stage:       validation.StageConfig,
			Message:     "standard building dimensions must be positive when use_standard_size is set",
			Field:       "standard_width",
			ActualValue: fmt.Sprintf("%.0fx%.0f", c.StandardWidth, c.StandardDepth),
			Expected:    "> 0",
		})
	}

	return r
}

func checkRange(r *validation.Report, field string, value, lo, hi int) {
	if value < lo || value > hi {
		r.AddError(validation.Result{
			Stage:       validation.StageConfig,
			Message:     fmt.Sprintf("%s %d is outside valid range (%d-%d)", field, value, lo, hi),
			Field:       field,
			ActualValue: value,
			Expected:    fmt.Sprintf("%d-%d", lo, hi),
		})
	}
}
