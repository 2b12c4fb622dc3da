// Package render writes chart frames to static files.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/healthscatter/internal/chart"
	"github.com/san-kum/healthscatter/internal/selector"
)

// ErrFormat indicates an output path with no known extension.
var ErrFormat = errors.New("render: unsupported format")

// Options controls point styling. Trend adds a least squares line.
type Options struct {
	Fill    string
	Opacity float64
	Trend   bool
}

// DefaultOptions draws translucent pink points.
func DefaultOptions() Options {
	return Options{Fill: "#ffc0cb", Opacity: 0.5}
}

// SVG renders the frame as SVG.
func SVG(w io.Writer, fr chart.Frame, opts Options) error {
	return renderWith(gochart.SVG, w, fr, opts)
}

// PNG renders the frame as PNG.
func PNG(w io.Writer, fr chart.Frame, opts Options) error {
	return renderWith(gochart.PNG, w, fr, opts)
}

// JSON writes the frame geometry.
func JSON(w io.Writer, fr chart.Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fr)
}

// WriteFile picks the format from the extension of path.
func WriteFile(path string, fr chart.Frame, opts Options) error {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		write = func(w io.Writer) error { return SVG(w, fr, opts) }
	case ".png":
		write = func(w io.Writer) error { return PNG(w, fr, opts) }
	case ".json":
		write = func(w io.Writer) error { return JSON(w, fr) }
	default:
		return fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderWith(provider gochart.RendererProvider, w io.Writer, fr chart.Frame, opts Options) error {
	if len(fr.Points) == 0 {
		return errors.New("render: frame has no points")
	}
	ch := newChart(fr, opts)
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func newChart(fr chart.Frame, opts Options) gochart.Chart {
	xs := make([]float64, len(fr.Points))
	ys := make([]float64, len(fr.Points))
	notes := make([]gochart.Value2, len(fr.Points))
	for i, p := range fr.Points {
		xs[i], ys[i] = p.X, p.Y
		notes[i] = gochart.Value2{XValue: p.X, YValue: p.Y, Label: p.Abbr}
	}

	x0, x1 := fr.XScale.Domain()
	y0, y1 := fr.YScale.Domain()
	xLabel := fr.ActiveLabel(selector.X).Text
	yLabel := fr.ActiveLabel(selector.Y).Text
	m := fr.Layout.Margin

	points := gochart.ContinuousSeries{
		Name:    "states",
		XValues: xs,
		YValues: ys,
		Style:   pointStyle(fr.Layout.Radius, opts),
	}
	series := []gochart.Series{
		points,
		gochart.AnnotationSeries{
			Name:        "abbr",
			Annotations: notes,
			Style: gochart.Style{
				FontSize:    8,
				StrokeColor: drawing.ColorTransparent,
				FillColor:   drawing.ColorTransparent,
				FontColor:   drawing.ColorBlack,
			},
		},
	}
	if opts.Trend {
		series = append(series, &gochart.LinearRegressionSeries{
			Name:        "trend",
			InnerSeries: points,
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex("8b6b8c"),
				StrokeWidth: 2,
			},
		})
	}

	return gochart.Chart{
		Title:  fmt.Sprintf("%s vs %s", yLabel, xLabel),
		Width:  int(fr.Layout.Width),
		Height: int(fr.Layout.Height),
		Background: gochart.Style{
			Padding: gochart.Box{Top: int(m.Top), Left: int(m.Left), Right: int(m.Right), Bottom: int(m.Bottom)},
		},
		XAxis: gochart.XAxis{
			Name:  xLabel,
			Range: &gochart.ContinuousRange{Min: x0, Max: x1},
			Ticks: ticks(fr.XTicks),
		},
		YAxis: gochart.YAxis{
			Name:  yLabel,
			Range: &gochart.ContinuousRange{Min: y0, Max: y1},
			Ticks: ticks(fr.YTicks),
		},
		Series: series,
	}
}

// pointStyle renders points only, no connecting line.
func pointStyle(radius float64, opts Options) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    radius,
		DotColor:    fillColor(opts),
	}
}

func fillColor(opts Options) drawing.Color {
	c := drawing.ColorFromHex(strings.TrimPrefix(opts.Fill, "#"))
	op := opts.Opacity
	if op < 0 {
		op = 0
	}
	if op > 1 {
		op = 1
	}
	c.A = uint8(op * 255)
	return c
}

func ticks(ts []chart.Tick) []gochart.Tick {
	out := make([]gochart.Tick, len(ts))
	for i, t := range ts {
		out[i] = gochart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
