package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/healthscatter/internal/chart"
	"github.com/san-kum/healthscatter/internal/dataset"
)

func testFrame(t *testing.T) chart.Frame {
	t.Helper()
	c, err := chart.NewController(dataset.Sample(), chart.DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	return c.Frame()
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, testFrame(t), DefaultOptions()); err != nil {
		t.Fatalf("svg failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("output is not svg")
	}
	if !strings.Contains(out, "In Poverty (%)") {
		t.Error("expected active x label in output")
	}
	if !strings.Contains(out, ">TX<") {
		t.Error("expected state abbreviations in output")
	}
}

func TestSVGTrend(t *testing.T) {
	var plain, trend bytes.Buffer
	opts := DefaultOptions()
	if err := SVG(&plain, testFrame(t), opts); err != nil {
		t.Fatal(err)
	}
	opts.Trend = true
	if err := SVG(&trend, testFrame(t), opts); err != nil {
		t.Fatalf("svg with trend failed: %v", err)
	}
	if trend.Len() <= plain.Len() {
		t.Error("expected the trend line to add output")
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testFrame(t), DefaultOptions()); err != nil {
		t.Fatalf("png failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not png")
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, testFrame(t)); err != nil {
		t.Fatalf("json failed: %v", err)
	}
	var decoded struct {
		Selection struct{ X, Y string } `json:"selection"`
		Points    []struct {
			Abbr string  `json:"abbr"`
			CX   float64 `json:"cx"`
		} `json:"points"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Selection.X != "poverty" || decoded.Selection.Y != "healthcare" {
		t.Errorf("unexpected selection %+v", decoded.Selection)
	}
	if len(decoded.Points) != 51 {
		t.Errorf("expected 51 points, got %d", len(decoded.Points))
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	fr := testFrame(t)

	for _, name := range []string{"chart.svg", "chart.png", "chart.json"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, fr, DefaultOptions()); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written", name)
		}
	}

	if err := WriteFile(filepath.Join(dir, "chart.gif"), fr, DefaultOptions()); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestFillColor(t *testing.T) {
	c := fillColor(Options{Fill: "#ffc0cb", Opacity: 0.5})
	if c.R != 0xff || c.G != 0xc0 || c.B != 0xcb {
		t.Errorf("unexpected color %+v", c)
	}
	if c.A != 127 {
		t.Errorf("expected alpha 127, got %d", c.A)
	}
}
