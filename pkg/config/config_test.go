package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.NumBuildings != 20 {
		t.Errorf("expected 20 buildings, got %d", cfg.NumBuildings)
	}
	if cfg.LayoutSize != 10 {
		t.Errorf("expected layout size 10, got %d", cfg.LayoutSize)
	}
	if cfg.RoadPattern != RoadGrid {
		t.Errorf("expected grid pattern, got %q", cfg.RoadPattern)
	}
	if cfg.Skyline != SkylineMixed {
		t.Errorf("expected mixed skyline, got %q", cfg.Skyline)
	}
	if cfg.Theme != ThemeModern {
		t.Errorf("expected modern theme, got %q", cfg.Theme)
	}

	report := Validate(&cfg)
	if !report.Valid {
		t.Errorf("default config should validate: %s", report.Summary)
	}
}

func TestUpdateStandardSize(t *testing.T) {
	cfg := Default()
	cfg.LayoutSize = 10
	cfg.UpdateStandardSize(800, 50)

	// cell = (800 - 100) / 10 = 70, footprint = 40% of that
	if cfg.StandardWidth != 28 || cfg.StandardDepth != 28 {
		t.Errorf("expected 28x28 standard footprint, got %.1fx%.1f",
			cfg.StandardWidth, cfg.StandardDepth)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "city.yaml")
	data := []byte("num_buildings: 42\nroad_pattern: radial\ntheme: futuristic\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NumBuildings != 42 {
		t.Errorf("expected 42 buildings, got %d", cfg.NumBuildings)
	}
	if cfg.RoadPattern != RoadRadial {
		t.Errorf("expected radial pattern, got %q", cfg.RoadPattern)
	}
	if cfg.Theme != ThemeFuturistic {
		t.Errorf("expected futuristic theme, got %q", cfg.Theme)
	}
	// Unset fields keep their defaults.
	if cfg.LayoutSize != 10 {
		t.Errorf("expected default layout size 10, got %d", cfg.LayoutSize)
	}
	if cfg.NumParks != 3 {
		t.Errorf("expected default 3 parks, got %d", cfg.NumParks)
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	if _, err := LoadProject(t.TempDir()); err == nil {
		t.Error("expected an error for a project without city.yaml")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("num_buildings: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"too many buildings", func(c *Config) { c.NumBuildings = 101 }, "num_buildings"},
		{"zero buildings", func(c *Config) { c.NumBuildings = 0 }, "num_buildings"},
		{"layout too small", func(c *Config) { c.LayoutSize = 4 }, "layout_size"},
		{"layout too large", func(c *Config) { c.LayoutSize = 21 }, "layout_size"},
		{"road too narrow", func(c *Config) { c.RoadWidth = 1 }, "road_width"},
		{"park radius too small", func(c *Config) { c.ParkRadius = 9 }, "park_radius"},
		{"too many parks", func(c *Config) { c.NumParks = 11 }, "num_parks"},
		{"negative fountain", func(c *Config) { c.FountainRadius = -1 }, "fountain_radius"},
		{"bad pattern", func(c *Config) { c.RoadPattern = "spiral" }, "road_pattern"},
		{"bad skyline", func(c *Config) { c.Skyline = "medieval" }, "skyline"},
		{"bad theme", func(c *Config) { c.Theme = "gothic" }, "theme"},
		{"zero standard size", func(c *Config) { c.StandardWidth = 0 }, "standard_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			report := Validate(&cfg)
			if report.Valid {
				t.Fatal("expected validation failure")
			}
			found := false
			for _, res := range report.Errors {
				if res.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no error reported for field %q", tt.field)
			}
		})
	}
}

func TestValidateZeroParksAllowed(t *testing.T) {
	cfg := Default()
	cfg.NumParks = 0
	cfg.FountainRadius = 0
	if report := Validate(&cfg); !report.Valid {
		t.Errorf("parkless config should validate: %s", report.Summary)
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseRoadPattern("grid"); err != nil {
		t.Errorf("grid should parse: %v", err)
	}
	if _, err := ParseSkyline("skyscraper"); err != nil {
		t.Errorf("skyscraper should parse: %v", err)
	}
	if _, err := ParseTheme("industrial"); err != nil {
		t.Errorf("industrial should parse: %v", err)
	}
	if _, err := ParseRoadPattern(""); err == nil {
		t.Error("empty pattern should not parse")
	}
}
