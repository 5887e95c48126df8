package anim

import "image/color"

// Surface is a 2D raster drawing target. Coordinates are in surface
// pixels with the origin at the top-left corner.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	Line(x0, y0, x1, y1, width float64, c color.Color)
	Text(x, y float64, s string, c color.Color)
}
