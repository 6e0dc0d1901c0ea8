package report

import (
	"fmt"
	"gonum.org/v1/plot/palette"
	"html/template"
	"image/color"
)

type colors []color.Color

func (c colors) Colors() []color.Color {
	return c
}

// DefaultPalette returns the highlight colors for primer1, primer2, and probe.
func DefaultPalette() palette.Palette {
	return colors{
		color.RGBA{R: 255, G: 178, B: 0, A: 255},   // orange
		color.RGBA{R: 255, G: 0, B: 0, A: 255},     // red
		color.RGBA{R: 255, G: 191, B: 204, A: 255}, // pink
	}
}

// cssColor returns the i-th color of p as a css rgb() value, wrapping around
// if the palette has fewer colors than motif classes.
func cssColor(p palette.Palette, i int) template.CSS {
	c := p.Colors()
	if len(c) == 0 {
		return template.CSS("rgb(255,255,0)")
	}
	r, g, b, _ := c[i%len(c)].RGBA()
	return template.CSS(fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8))
}
