package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"

	"github.com/ditharaavindi/city-generator/pkg/geo"
	"github.com/ditharaavindi/city-generator/pkg/raster"
	"github.com/ditharaavindi/city-generator/pkg/scene"
)

// Render3D draws the city in a perspective view from a camera hovering
// south of the city center. Ground features (roads, parks, fountain) are
// projected flat; buildings are extruded to their generated height and
// drawn back to front painter-style.
func Render3D(city *scene.City, width, height int, palette *Palette) image.Image {
	return Render3DWithCamera(city, width, height, palette, defaultCityCamera(width, height))
}

// Render3DWithCamera renders the perspective view through the given
// camera.
func Render3DWithCamera(city *scene.City, width, height int, palette *Palette, cam *Camera) image.Image {
	ctx := gg.NewContext(width, height)
	ctx.SetColor(palette.Background)
	ctx.Clear()

	drawGroundFeatures(ctx, city, palette, cam, width, height)
	drawBuildingBoxes(ctx, city, palette, cam, width, height)

	return ctx.Image()
}

// Save3D renders the perspective view and writes it to fpath as a PNG.
func Save3D(city *scene.City, width, height int, palette *Palette, fpath string) error {
	im := Render3D(city, width, height, palette)
	ctx := gg.NewContextForImage(im)
	if err := ctx.SavePNG(fpath); err != nil {
		return fmt.Errorf("writing 3D render: %w", err)
	}
	return nil
}

func drawGroundFeatures(ctx *gg.Context, city *scene.City, palette *Palette, cam *Camera, w, h int) {
	// Roads: each stored point projected individually, so filtered gaps
	// survive into the 3D view.
	ctx.SetColor(palette.Roads)
	for _, road := range city.Roads {
		for _, pt := range road.Points {
			x, y, depth, ok := cam.project(vec3{float64(pt.X), float64(pt.Y), 0}, w, h)
			if !ok {
				continue
			}
			r := float64(road.Width) / 2 * perspectiveScale(depth)
			ctx.DrawCircle(x, y, r)
		}
		ctx.Fill()
	}

	for _, park := range city.Parks {
		fillProjectedBoundary(ctx, palette.Parks, park.Boundary, cam, w, h)
	}
	if city.Fountain != nil {
		fillProjectedBoundary(ctx, palette.Fountain, city.Fountain.Boundary, cam, w, h)
	}
}

// fillProjectedBoundary fills the projected footprint of a derived
// circle. The boundary set is octant-interleaved, so the fill uses the
// derived center/radius rather than connecting boundary points directly.
func fillProjectedBoundary(ctx *gg.Context, col color.Color, boundary []raster.Point, cam *Camera, w, h int) {
	c := geo.DeriveCircle(boundary)

	first := true
	for i := 0; i < 64; i++ {
		angle := 2 * math.Pi * float64(i) / 64
		px := c.Center.X + c.Radius*math.Cos(angle)
		py := c.Center.Y + c.Radius*math.Sin(angle)
		x, y, _, ok := cam.project(vec3{px, py, 0}, w, h)
		if !ok {
			return
		}
		if first {
			ctx.MoveTo(x, y)
			first = false
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.ClosePath()
	ctx.SetColor(col)
	ctx.Fill()
}

func perspectiveScale(depth float64) float64 {
	s := 300 / depth
	if s > 1.5 {
		s = 1.5
	}
	if s < 0.2 {
		s = 0.2
	}
	return s
}

// face is a projected polygon ready for painter-style drawing.
type face struct {
	xs, ys []float64
	depth  float64
	col    color.Color
}

func drawBuildingBoxes(ctx *gg.Context, city *scene.City, palette *Palette, cam *Camera, w, h int) {
	var faces []face

	for _, b := range city.Buildings {
		fp := b.Footprint()
		base := [4]vec3{
			{fp.Min.X, fp.Min.Y, 0},
			{fp.Max.X, fp.Min.Y, 0},
			{fp.Max.X, fp.Max.Y, 0},
			{fp.Min.X, fp.Max.Y, 0},
		}
		top := [4]vec3{}
		for i, c := range base {
			top[i] = vec3{c.X, c.Y, b.Height}
		}

		col := palette.BuildingColor(b.Type)

		// Four side walls, then the roof.
		for i := 0; i < 4; i++ {
			j := (i + 1) % 4
			if f, ok := projectFace(cam, w, h, base[i], base[j], top[j], top[i]); ok {
				f.col = shade(col, 0.72)
				faces = append(faces, f)
			}
		}
		if f, ok := projectFace(cam, w, h, top[0], top[1], top[2], top[3]); ok {
			f.col = col
			faces = append(faces, f)
		}
	}

	// Painter's algorithm: far faces first.
	sort.Slice(faces, func(i, j int) bool { return faces[i].depth > faces[j].depth })

	for _, f := range faces {
		ctx.SetColor(f.col)
		ctx.MoveTo(f.xs[0], f.ys[0])
		for i := 1; i < len(f.xs); i++ {
			ctx.LineTo(f.xs[i], f.ys[i])
		}
		ctx.ClosePath()
		ctx.Fill()
	}
}

func projectFace(cam *Camera, w, h int, corners ...vec3) (face, bool) {
	f := face{}
	for _, c := range corners {
		x, y, depth, ok := cam.project(c, w, h)
		if !ok {
			return face{}, false
		}
		f.xs = append(f.xs, x)
		f.ys = append(f.ys, y)
		f.depth += depth
	}
	f.depth /= float64(len(corners))
	return f, true
}

// shade darkens a colour by the given factor in [0,1].
func shade(c color.Color, factor float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * factor),
		G: uint16(float64(g) * factor),
		B: uint16(float64(b) * factor),
		A: uint16(a),
	}
}
