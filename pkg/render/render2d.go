package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/ditharaavindi/city-generator/pkg/scene"
)

// Render2D draws the city as a top-down orthographic image at the native
// viewport size. Roads are drawn point by point at their stored width, so
// obstacle gaps show up exactly where the generator left them.
func Render2D(city *scene.City, width, height int, palette *Palette) image.Image {
	ctx := gg.NewContext(width, height)
	ctx.SetColor(palette.Background)
	ctx.Clear()

	drawRoads(ctx, city, palette)
	drawParks(ctx, city, palette)
	drawBuildings(ctx, city, palette)

	return ctx.Image()
}

// Save2D renders the city and writes it to fpath as a PNG.
func Save2D(city *scene.City, width, height int, palette *Palette, fpath string) error {
	im := Render2D(city, width, height, palette)
	ctx := gg.NewContextForImage(im)
	if err := ctx.SavePNG(fpath); err != nil {
		return fmt.Errorf("writing 2D render: %w", err)
	}
	return nil
}

func drawRoads(ctx *gg.Context, city *scene.City, palette *Palette) {
	ctx.SetColor(palette.Roads)
	for _, road := range city.Roads {
		half := float64(road.Width) / 2
		for _, pt := range road.Points {
			ctx.DrawRectangle(float64(pt.X)-half, float64(pt.Y)-half, float64(road.Width), float64(road.Width))
		}
		ctx.Fill()
	}
}

func drawParks(ctx *gg.Context, city *scene.City, palette *Palette) {
	for _, park := range city.Parks {
		c := park.Circle()
		ctx.SetColor(palette.Parks)
		ctx.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
		ctx.Fill()
		for _, pt := range park.Boundary {
			ctx.DrawRectangle(float64(pt.X), float64(pt.Y), 1, 1)
		}
		ctx.Fill()
	}

	if city.Fountain != nil {
		c := city.Fountain.Circle()
		ctx.SetColor(palette.Fountain)
		ctx.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
		ctx.Fill()
	}
}

func drawBuildings(ctx *gg.Context, city *scene.City, palette *Palette) {
	for _, b := range city.Buildings {
		fp := b.Footprint()
		ctx.SetColor(palette.BuildingColor(b.Type))
		ctx.DrawRectangle(fp.Min.X, fp.Min.Y, fp.Width(), fp.Height())
		ctx.Fill()
	}
}
