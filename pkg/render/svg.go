package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/ditharaavindi/city-generator/pkg/scene"
)

// WriteSVG writes the city as a top-down SVG document. Parks and the
// fountain use their derived circles; roads are emitted point by point so
// obstacle gaps are preserved. svgo never reports writer failures itself,
// so the writer is wrapped to capture the first one.
func WriteSVG(city *scene.City, width, height int, palette *Palette, w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+hexColor(palette.Background))

	roadStyle := "fill:" + hexColor(palette.Roads)
	for _, road := range city.Roads {
		half := road.Width / 2
		for _, pt := range road.Points {
			canvas.Rect(pt.X-half, pt.Y-half, road.Width, road.Width, roadStyle)
		}
	}

	parkStyle := "fill:" + hexColor(palette.Parks)
	for _, park := range city.Parks {
		c := park.Circle()
		canvas.Circle(int(c.Center.X), int(c.Center.Y), int(c.Radius), parkStyle)
	}
	if city.Fountain != nil {
		c := city.Fountain.Circle()
		canvas.Circle(int(c.Center.X), int(c.Center.Y), int(c.Radius), "fill:"+hexColor(palette.Fountain))
	}

	for _, b := range city.Buildings {
		fp := b.Footprint()
		canvas.Rect(int(fp.Min.X), int(fp.Min.Y), int(fp.Width()), int(fp.Height()),
			"fill:"+hexColor(palette.BuildingColor(b.Type)))
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("writing svg: %w", ew.err)
	}
	return nil
}

// errWriter passes writes through and remembers the first failure.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
