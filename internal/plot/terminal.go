package plot

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tslab/internal/palette"
)

// Terminal renders f as an ANSI line chart. Series are resampled to the
// chart width, so curves with different sample counts still line up.
func Terminal(f Figure, width, height int) string {
	if len(f.Series) == 0 {
		return ""
	}

	data := make([][]float64, len(f.Series))
	colors := make([]asciigraph.AnsiColor, len(f.Series))
	legends := make([]string, len(f.Series))
	for i, s := range f.Series {
		data[i] = s.Curve.YValues()
		colors[i] = ansiColor(s.Color)
		legends[i] = s.Name
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(f.Title),
		asciigraph.SeriesColors(colors...),
		asciigraph.Precision(2),
	}
	if f.Legend {
		opts = append(opts, asciigraph.SeriesLegends(legends...))
	}

	var b strings.Builder
	b.WriteString(asciigraph.PlotMany(data, opts...))
	b.WriteString("\n")
	if xs := f.Series[0].Curve; len(xs) > 0 {
		layout := fmt.Sprintf("%%s: %%.%df … %%.%df\n", f.XPrecision, f.XPrecision)
		b.WriteString(fmt.Sprintf(layout, f.XLabel, xs[0].X, xs[len(xs)-1].X))
	}
	for _, a := range f.Annotations {
		b.WriteString(fmt.Sprintf("↑ %s at (%.4f, %.2f)\n", a.Text, a.X, a.Y))
	}
	return b.String()
}

func ansiColor(hex string) asciigraph.AnsiColor {
	switch hex {
	case palette.Blue, palette.LightBlue:
		return asciigraph.Blue
	case palette.Red:
		return asciigraph.Red
	case palette.Slate:
		return asciigraph.Gray
	case palette.White, palette.Text:
		return asciigraph.White
	default:
		return asciigraph.Default
	}
}
