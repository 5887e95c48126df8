// Package raster draws animation frames into in-memory RGBA images and
// records them as GIF animations.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// basicfont has no arrows or daggers.
var glyphFallback = strings.NewReplacer("→", "->", "‡", "#", "½", "1/2")

// Image is an anim.Surface backed by an *image.RGBA.
type Image struct {
	img  *image.RGBA
	bg   image.Image
	face font.Face
	z    *vector.Rasterizer
}

// New returns a width×height surface cleared to bg.
func New(width, height int, bg color.Color) *Image {
	m := &Image{
		bg:   image.NewUniform(bg),
		face: basicfont.Face7x13,
	}
	m.Resize(width, height)
	return m
}

// Resize reallocates the backing image.
func (m *Image) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.img = image.NewRGBA(image.Rect(0, 0, width, height))
	m.z = vector.NewRasterizer(width, height)
	m.Clear()
}

// Image returns the backing image. It is overwritten by later draws.
func (m *Image) Image() *image.RGBA { return m.img }

// Size returns the image dimensions.
func (m *Image) Size() (width, height int) {
	b := m.img.Bounds()
	return b.Dx(), b.Dy()
}

func (m *Image) Clear() {
	draw.Draw(m.img, m.img.Bounds(), m.bg, image.Point{}, draw.Src)
}

func (m *Image) FillCircle(x, y, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	b := m.img.Bounds()
	m.z.Reset(b.Dx(), b.Dy())
	m.z.DrawOp = draw.Over

	cx, cy, rr, k := float32(x), float32(y), float32(r), float32(r*kappa)
	m.z.MoveTo(cx+rr, cy)
	m.z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	m.z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	m.z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	m.z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	m.z.ClosePath()
	m.z.Draw(m.img, b, image.NewUniform(c), image.Point{})
}

// Line strokes a segment as a filled quad of the given width.
func (m *Image) Line(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if width <= 0 || length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	b := m.img.Bounds()
	m.z.Reset(b.Dx(), b.Dy())
	m.z.DrawOp = draw.Over
	m.z.MoveTo(float32(x0+nx), float32(y0+ny))
	m.z.LineTo(float32(x1+nx), float32(y1+ny))
	m.z.LineTo(float32(x1-nx), float32(y1-ny))
	m.z.LineTo(float32(x0-nx), float32(y0-ny))
	m.z.ClosePath()
	m.z.Draw(m.img, b, image.NewUniform(c), image.Point{})
}

// Text draws s with its baseline at y.
func (m *Image) Text(x, y float64, s string, c color.Color) {
	d := font.Drawer{
		Dst:  m.img,
		Src:  image.NewUniform(c),
		Face: m.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(glyphFallback.Replace(s))
}
