package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/tslab/internal/palette"
)

// ErrUnknownFormat is returned for output formats other than png and svg.
var ErrUnknownFormat = errors.New("plot: unknown output format")

// Format selects the image encoding.
type Format int

const (
	PNG Format = iota
	SVG
)

func (f Format) String() string {
	if f == SVG {
		return "svg"
	}
	return "png"
}

// ParseFormat accepts "png", "svg" or a file name with either extension.
func ParseFormat(s string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(s), "."))
	if ext == "" {
		ext = strings.ToLower(s)
	}
	switch ext {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Chart builds the go-chart description of f.
func Chart(f Figure, width, height int) chart.Chart {
	series := make([]chart.Series, 0, len(f.Series)+1)
	for _, s := range f.Series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.Curve.XValues(),
			YValues: s.Curve.YValues(),
			Style: chart.Style{
				StrokeColor:     drawingColor(s.Color),
				StrokeWidth:     s.Width,
				StrokeDashArray: dashArray(s.Dash),
			},
		})
	}

	if len(f.Annotations) > 0 {
		values := make([]chart.Value2, len(f.Annotations))
		for i, a := range f.Annotations {
			values[i] = chart.Value2{XValue: a.X, YValue: a.Y, Label: a.Text}
		}
		series = append(series, chart.AnnotationSeries{Annotations: values})
	}

	axisStyle := chart.Style{FontSize: 10, FontColor: drawingColor(palette.Text), StrokeColor: drawingColor(palette.Grid)}
	graph := chart.Chart{
		Title:      f.Title,
		TitleStyle: chart.Style{FontColor: drawingColor(palette.Text)},
		Width:      width,
		Height:     height,
		Background: chart.Style{
			FillColor: drawingColor(palette.Night),
			Padding:   chart.Box{Top: 40, Right: 20, Bottom: 40, Left: 60},
		},
		Canvas: chart.Style{FillColor: drawingColor(palette.Night)},
		XAxis: chart.XAxis{
			Name:           f.XLabel,
			NameStyle:      chart.Style{FontColor: drawingColor(palette.Text)},
			Style:          axisStyle,
			ValueFormatter: precisionFormatter(f.XPrecision),
		},
		YAxis: chart.YAxis{
			Name:      f.YLabel,
			NameStyle: chart.Style{FontColor: drawingColor(palette.Text)},
			Style:     axisStyle,
		},
		Series: series,
	}

	// go-chart rejects a zero-height range, e.g. an Eyring plot at ΔH‡ = 0
	if lo, hi := f.yExtent(); lo == hi && !math.IsNaN(lo) {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	if f.Legend {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	return graph
}

// Render encodes f as an image.
func Render(w io.Writer, f Figure, format Format, width, height int) error {
	graph := Chart(f, width, height)
	provider := chart.PNG
	if format == SVG {
		provider = chart.SVG
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}

func (f Figure) yExtent() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range f.Series {
		for _, p := range s.Curve {
			lo = math.Min(lo, p.Y)
			hi = math.Max(hi, p.Y)
		}
	}
	if math.IsInf(lo, 1) {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}

func drawingColor(hex string) drawing.Color {
	c := palette.RGBA(hex)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func dashArray(d Dash) []float64 {
	if d == Dotted {
		return []float64{2, 3}
	}
	return nil
}

func precisionFormatter(digits int) chart.ValueFormatter {
	if digits <= 0 {
		return chart.FloatValueFormatter
	}
	layout := fmt.Sprintf("%%.%df", digits)
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf(layout, f)
		}
		return ""
	}
}
