// Package palette holds the named colors shared by the chart, raster and
// terminal renderers.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Blue      = "#3b82f6"
	LightBlue = "#60a5fa"
	Red       = "#ef4444"
	Slate     = "#94a3b8"
	Grid      = "#334155"
	Text      = "#f1f5f9"
	White     = "#ffffff"
	Night     = "#0f172a"
)

// Parse converts a hex string into a color. Malformed input yields black.
func Parse(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// RGBA converts a hex string into an opaque color.RGBA.
func RGBA(hex string) color.RGBA {
	r, g, b := Parse(hex).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ForProduct returns the series color for a charge product sign.
func ForProduct(product int) string {
	switch {
	case product > 0:
		return Blue
	case product < 0:
		return Red
	default:
		return Slate
	}
}

// Blend mixes two hex colors in Lab space; t=0 gives a, t=1 gives b.
func Blend(a, b string, t float64) color.RGBA {
	c := Parse(a).BlendLab(Parse(b), t).Clamped()
	r, g, bl := c.RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}
