package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ditharaavindi/city-generator/pkg/analytics"
	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/render"
	"github.com/ditharaavindi/city-generator/pkg/scene"
	"github.com/ditharaavindi/city-generator/pkg/validation"
)

// loadAndValidate loads the config and runs range validation.
func loadAndValidate(projectPath string) (*config.Config, *validation.Report, error) {
	cfg, err := loadConfig(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, config.Validate(cfg), nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath string, width, height int) error {
	cfg, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printReport(report)
		return fmt.Errorf("config has validation errors")
	}

	gen := scene.NewGenerator(width, height)
	report.Merge(gen.Generate(cfg))

	output := map[string]any{
		"config":     cfg,
		"validation": report,
		"stats":      analytics.Summarize(gen.City(), width, height),
		"scene":      gen.City(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runRender(projectPath string, width, height int, out, format, view string) error {
	cfg, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printReport(report)
		return fmt.Errorf("config has validation errors")
	}

	switch view {
	case "2d":
		cfg.View3D = false
	case "3d":
		cfg.View3D = true
	case "":
	default:
		return fmt.Errorf("unknown view %q (want 2d or 3d)", view)
	}

	gen := scene.NewGenerator(width, height)
	report.Merge(gen.Generate(cfg))
	printReport(report)

	palette := render.PaletteFor(cfg.Theme)
	city := gen.City()

	switch format {
	case "svg":
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		if err := render.WriteSVG(city, width, height, palette, f); err != nil {
			return err
		}
	case "png":
		if cfg.View3D {
			if err := render.Save3D(city, width, height, palette, out); err != nil {
				return err
			}
		} else {
			if err := render.Save2D(city, width, height, palette, out); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown format %q (want png or svg)", format)
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}
