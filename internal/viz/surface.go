package viz

import (
	"image/color"
	"math"
)

// BrailleSurface adapts a Canvas to anim.Surface. Surface pixels are
// multiplied by Scale to get canvas sub-pixels; colors are ignored because
// the whole canvas is tinted when rendered.
type BrailleSurface struct {
	canvas *Canvas
	Scale  float64
}

func NewBrailleSurface(c *Canvas, scale float64) *BrailleSurface {
	if scale <= 0 {
		scale = 1
	}
	return &BrailleSurface{canvas: c, Scale: scale}
}

// FitHeight picks the scale that maps height surface pixels onto the
// full canvas height.
func (b *BrailleSurface) FitHeight(height float64) {
	_, ph := b.canvas.PixelSize()
	if height > 0 {
		b.Scale = float64(ph) / height
	}
}

// LogicalSize is the canvas size in surface pixels.
func (b *BrailleSurface) LogicalSize() (w, h float64) {
	pw, ph := b.canvas.PixelSize()
	return float64(pw) / b.Scale, float64(ph) / b.Scale
}

func (b *BrailleSurface) px(v float64) int {
	return int(math.Round(v * b.Scale))
}

func (b *BrailleSurface) Clear() { b.canvas.Clear() }

func (b *BrailleSurface) FillCircle(x, y, r float64, _ color.Color) {
	b.canvas.FillCircle(b.px(x), b.px(y), b.px(r))
}

// Line draws one stroke per sub-pixel of width, at least one.
func (b *BrailleSurface) Line(x0, y0, x1, y1, width float64, _ color.Color) {
	if width <= 0 {
		return
	}
	ax, ay, bx, by := b.px(x0), b.px(y0), b.px(x1), b.px(y1)
	strokes := b.px(width)
	if strokes < 1 {
		strokes = 1
	}
	// offset along the minor axis
	horizontal := absInt(bx-ax) >= absInt(by-ay)
	for i := 0; i < strokes; i++ {
		off := i - strokes/2
		if horizontal {
			b.canvas.DrawLine(ax, ay+off, bx, by+off)
		} else {
			b.canvas.DrawLine(ax+off, ay, bx+off, by)
		}
	}
}

// Text places s in the cell containing the baseline point.
func (b *BrailleSurface) Text(x, y float64, s string, _ color.Color) {
	b.canvas.PutText(b.px(x)/2, b.px(y)/4, s)
}
