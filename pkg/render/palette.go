// Package render draws a generated city as an image: a top-down 2D
// orthographic view, a perspective 3D view, or a top-down SVG. Renderers
// only ever read a completed scene snapshot.
package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/layout"
)

// Palette defines how city features are coloured.
type Palette struct {
	Background color.Color
	Roads      color.Color
	Parks      color.Color
	Fountain   color.Color
	Buildings  map[layout.BuildingType]color.Color
}

// PaletteFor returns the palette for a texture theme. Road, park and
// fountain colours are shared; themes vary the building facades.
func PaletteFor(theme config.Theme) *Palette {
	p := &Palette{
		Background: colornames.Whitesmoke,
		Roads:      colornames.Dimgray,
		Parks:      colornames.Mediumseagreen,
		Fountain:   colornames.Deepskyblue,
	}

	switch theme {
	case config.ThemeClassic:
		p.Buildings = map[layout.BuildingType]color.Color{
			layout.LowRise:  colornames.Rosybrown,
			layout.MidRise:  colornames.Tan,
			layout.HighRise: colornames.Darkkhaki,
		}
	case config.ThemeIndustrial:
		p.Buildings = map[layout.BuildingType]color.Color{
			layout.LowRise:  colornames.Slategray,
			layout.MidRise:  colornames.Gray,
			layout.HighRise: colornames.Darkslategray,
		}
	case config.ThemeFuturistic:
		p.Buildings = map[layout.BuildingType]color.Color{
			layout.LowRise:  colornames.Mediumturquoise,
			layout.MidRise:  colornames.Steelblue,
			layout.HighRise: colornames.Mediumslateblue,
		}
	default: // modern
		p.Buildings = map[layout.BuildingType]color.Color{
			layout.LowRise:  colornames.Indianred,
			layout.MidRise:  colornames.Darkgray,
			layout.HighRise: colornames.Lightsteelblue,
		}
	}

	return p
}

// BuildingColor returns the facade colour for a building type.
func (p *Palette) BuildingColor(t layout.BuildingType) color.Color {
	if c, ok := p.Buildings[t]; ok {
		return c
	}
	return colornames.Gray
}
