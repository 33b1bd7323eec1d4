package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/layout"
	"github.com/ditharaavindi/city-generator/pkg/raster"
	"github.com/ditharaavindi/city-generator/pkg/scene"
)

func renderTestCity() *scene.City {
	return &scene.City{
		Roads: []layout.Road{
			{Points: raster.Line(100, 300, 700, 300), Width: 14},
		},
		Parks: []layout.Park{
			{Boundary: raster.Circle(200, 150, 40)},
		},
		Fountain: &layout.Park{Boundary: raster.Circle(400, 300, 25)},
		Buildings: []layout.Building{
			{X: 300, Y: 450, Width: 40, Depth: 40, Height: 60, Type: layout.MidRise},
			{X: 550, Y: 150, Width: 30, Depth: 30, Height: 180, Type: layout.HighRise},
		},
		Generated: true,
	}
}

func TestRender2DImageBounds(t *testing.T) {
	palette := PaletteFor(config.ThemeModern)
	im := Render2D(renderTestCity(), 800, 600, palette)

	b := im.Bounds()
	if b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("expected 800x600 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRender3DImageBounds(t *testing.T) {
	palette := PaletteFor(config.ThemeFuturistic)
	im := Render3D(renderTestCity(), 640, 480, palette)

	b := im.Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("expected 640x480 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRender2DDrawsRoad(t *testing.T) {
	palette := PaletteFor(config.ThemeModern)
	im := Render2D(renderTestCity(), 800, 600, palette)

	// The horizontal road crosses (400, 300); that pixel must not be the
	// background colour. The fountain sits there too, either way it is
	// painted over.
	got := im.At(400, 300)
	bgR, bgG, bgB, _ := palette.Background.RGBA()
	r, g, b, _ := got.RGBA()
	if r == bgR && g == bgG && b == bgB {
		t.Error("expected a painted pixel on the road centreline")
	}
}

func TestWriteSVG(t *testing.T) {
	palette := PaletteFor(config.ThemeClassic)
	var buf bytes.Buffer

	if err := WriteSVG(renderTestCity(), 800, 600, palette, &buf); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("output is not a complete SVG document")
	}
	if !strings.Contains(out, "<circle") {
		t.Error("expected park and fountain circles in SVG output")
	}
	if !strings.Contains(out, "<rect") {
		t.Error("expected road and building rects in SVG output")
	}
}

type failingWriter struct{ written int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.written += len(p)
	if f.written > 128 {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestWriteSVGReportsWriterError(t *testing.T) {
	palette := PaletteFor(config.ThemeModern)
	if err := WriteSVG(renderTestCity(), 800, 600, palette, &failingWriter{}); err == nil {
		t.Error("expected an error from a failing writer")
	}
}

func TestPaletteThemesDiffer(t *testing.T) {
	modern := PaletteFor(config.ThemeModern)
	industrial := PaletteFor(config.ThemeIndustrial)

	mr, mg, mb, _ := modern.BuildingColor(layout.HighRise).RGBA()
	ir, ig, ib, _ := industrial.BuildingColor(layout.HighRise).RGBA()
	if mr == ir && mg == ig && mb == ib {
		t.Error("expected themes to use distinct high-rise colours")
	}
}

func TestPaletteUnknownTypeFallback(t *testing.T) {
	p := PaletteFor(config.ThemeModern)
	if p.BuildingColor(layout.BuildingType("bungalow")) == nil {
		t.Error("expected a fallback colour for unknown building types")
	}
}

func TestCameraProjectsCityCenter(t *testing.T) {
	cam := defaultCityCamera(800, 600)
	x, y, depth, ok := cam.project(vec3{400, 300, 0}, 800, 600)
	if !ok {
		t.Fatal("city center should be in front of the default camera")
	}
	if depth <= 0 {
		t.Errorf("expected positive depth, got %.2f", depth)
	}
	if x < 0 || x > 800 || y < 0 || y > 600 {
		t.Errorf("city center projected off screen at (%.0f, %.0f)", x, y)
	}
}

func TestCameraCullsBehind(t *testing.T) {
	cam := defaultCityCamera(800, 600)
	// A point far behind the camera position must be culled.
	if _, _, _, ok := cam.project(vec3{400, 5000, 0}, 800, 600); ok {
		t.Error("expected a point behind the camera to be culled")
	}
}
