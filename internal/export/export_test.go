package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/tslab/internal/kinetics"
)

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("JSON"); err != nil || f != JSON {
		t.Errorf("ParseFormat(JSON) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestEyringJSON(t *testing.T) {
	p := kinetics.Eyring(kinetics.EyringParams{DeltaH: 50, DeltaS: -50})
	var buf bytes.Buffer
	if err := Write(&buf, Eyring(p), JSON); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Plot != "eyring" || len(got.Series) != 1 {
		t.Fatalf("unexpected data: plot=%s series=%d", got.Plot, len(got.Series))
	}
	if n := len(got.Series[0].X); n != len(p.Curve) {
		t.Errorf("got %d points, want %d", n, len(p.Curve))
	}
	if len(got.Annotations) != 1 || got.Annotations[0].Text != p.Annotation.Text {
		t.Errorf("annotation not exported: %+v", got.Annotations)
	}
	if got.Params["delta_h"] != 50 {
		t.Errorf("delta_h = %v, want 50", got.Params["delta_h"])
	}
}

func TestSaltCSV(t *testing.T) {
	p := kinetics.SaltEffect(kinetics.SaltParams{ZA: 1, ZB: -1})
	var buf bytes.Buffer
	if err := Write(&buf, SaltEffect(p), CSV); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	// header + two 2-point references + the main curve
	if want := 1 + 2 + 2 + len(p.Curve); len(rows) != want {
		t.Errorf("got %d rows, want %d", len(rows), want)
	}
	if rows[0][0] != "series" {
		t.Errorf("header = %v", rows[0])
	}
	last := rows[len(rows)-1]
	if last[0] != p.Name || last[1] != "0.5" {
		t.Errorf("last row = %v", last)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salt.json")
	data := SaltEffect(kinetics.SaltEffect(kinetics.SaltParams{ZA: 2, ZB: 2}))
	if err := WriteFile(path, data, JSON); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}
