package chart

import (
	"github.com/san-kum/healthscatter/internal/dataset"
	"github.com/san-kum/healthscatter/internal/scale"
	"github.com/san-kum/healthscatter/internal/selector"
)

// Point is one record placed in plot coordinates, origin at the top left of
// the plot area.
type Point struct {
	State   string           `json:"state"`
	Abbr    string           `json:"abbr"`
	X       float64          `json:"x"`
	Y       float64          `json:"y"`
	CX      float64          `json:"cx"`
	CY      float64          `json:"cy"`
	Tooltip selector.Tooltip `json:"tooltip"`
}

// Tick is an axis tick mark.
type Tick struct {
	Value float64 `json:"value"`
	Pos   float64 `json:"pos"`
	Label string  `json:"label"`
}

// Frame is a fully laid-out chart for one selection.
type Frame struct {
	Selection selector.Selection    `json:"selection"`
	Layout    Layout                `json:"layout"`
	XScale    scale.Linear          `json:"x_scale"`
	YScale    scale.Linear          `json:"y_scale"`
	XTicks    []Tick                `json:"x_ticks"`
	YTicks    []Tick                `json:"y_ticks"`
	Points    []Point               `json:"points"`
	Labels    []selector.LabelState `json:"labels"`
}

// ActiveLabel returns the active label of axis a.
func (f Frame) ActiveLabel(a selector.Axis) selector.Label {
	return selector.LabelFor(f.Selection.Field(a))
}

// FindPoint returns the index of the point with the given abbreviation.
func (f Frame) FindPoint(abbr string) int {
	for i, p := range f.Points {
		if p.Abbr == abbr {
			return i
		}
	}
	return -1
}

func buildFrame(ds *dataset.Dataset, layout Layout, sel selector.Selection, xs, ys scale.Linear) Frame {
	fr := Frame{
		Selection: sel,
		Layout:    layout,
		XScale:    xs,
		YScale:    ys,
		XTicks:    ticks(xs, layout.Ticks),
		YTicks:    ticks(ys, layout.Ticks),
		Points:    make([]Point, ds.Len()),
		Labels:    selector.LabelStates(sel),
	}
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		x, y := r.Value(sel.X()), r.Value(sel.Y())
		fr.Points[i] = Point{
			State:   r.State,
			Abbr:    r.Abbr,
			X:       x,
			Y:       y,
			CX:      xs.Map(x),
			CY:      ys.Map(y),
			Tooltip: selector.FormatTooltip(r, sel),
		}
	}
	return fr
}

func ticks(s scale.Linear, n int) []Tick {
	format := s.TickFormat(n)
	vals := s.Ticks(n)
	out := make([]Tick, len(vals))
	for i, v := range vals {
		out[i] = Tick{Value: v, Pos: s.Map(v), Label: format(v)}
	}
	return out
}
