package raster

import (
	"image/color"

	"github.com/san-kum/tslab/internal/palette"
)

// rampSteps is the number of shades between the background and each ink,
// enough to keep antialiased edges smooth after quantization.
const rampSteps = 8

// FramePalette returns a GIF palette holding bg, each ink, and Lab-space
// ramps between them.
func FramePalette(bg string, inks ...string) color.Palette {
	p := color.Palette{palette.RGBA(bg)}
	for _, ink := range inks {
		for i := 1; i <= rampSteps; i++ {
			p = append(p, palette.Blend(bg, ink, float64(i)/rampSteps))
		}
	}
	return p
}
