// Package export writes generated curves as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/tslab/internal/kinetics"
	"github.com/san-kum/tslab/internal/plot"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type Format int

const (
	CSV Format = iota
	JSON
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case JSON:
		return "json"
	}
	return "unknown"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

type ExportData struct {
	Plot        string             `json:"plot"`
	Title       string             `json:"title"`
	XLabel      string             `json:"x_label"`
	YLabel      string             `json:"y_label"`
	Params      map[string]float64 `json:"params"`
	Series      []SeriesData       `json:"series"`
	Annotations []AnnotationData   `json:"annotations,omitempty"`
}

type SeriesData struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

type AnnotationData struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

func fromFigure(name string, f plot.Figure, params map[string]float64) ExportData {
	data := ExportData{
		Plot:   name,
		Title:  f.Title,
		XLabel: f.XLabel,
		YLabel: f.YLabel,
		Params: params,
		Series: make([]SeriesData, len(f.Series)),
	}
	for i, s := range f.Series {
		data.Series[i] = SeriesData{
			Name:  s.Name,
			Color: s.Color,
			X:     s.Curve.XValues(),
			Y:     s.Curve.YValues(),
		}
	}
	for _, a := range f.Annotations {
		data.Annotations = append(data.Annotations, AnnotationData{X: a.X, Y: a.Y, Text: a.Text})
	}
	return data
}

func Eyring(p kinetics.EyringPlot) ExportData {
	return fromFigure("eyring", plot.EyringFigure(p), map[string]float64{
		"delta_h": p.Params.DeltaH,
		"delta_s": p.Params.DeltaS,
		"slope":   p.Slope,
	})
}

func SaltEffect(p kinetics.SaltEffectPlot) ExportData {
	return fromFigure("salt", plot.SaltEffectFigure(p), map[string]float64{
		"za":      float64(p.Params.ZA),
		"zb":      float64(p.Params.ZB),
		"product": float64(p.Product),
	})
}

// Write encodes data in the given format.
func Write(w io.Writer, data ExportData, format Format) error {
	switch format {
	case CSV:
		return WriteCSV(w, data)
	case JSON:
		return WriteJSON(w, data)
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per sample: series,x,y.
func WriteCSV(w io.Writer, data ExportData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", data.XLabel, data.YLabel}); err != nil {
		return err
	}
	for _, s := range data.Series {
		for i := range s.X {
			row := []string{
				s.Name,
				strconv.FormatFloat(s.X[i], 'g', -1, 64),
				strconv.FormatFloat(s.Y[i], 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes data to path, or to stdout when path is empty or "-".
func WriteFile(path string, data ExportData, format Format) error {
	if path == "" || path == "-" {
		return Write(os.Stdout, data, format)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, data, format)
}
