package selector

import (
	"html"
	"strconv"
	"strings"

	"github.com/san-kum/healthscatter/internal/dataset"
)

var tooltipPrefix = map[dataset.Field]string{
	dataset.Poverty:    "Poverty: ",
	dataset.Age:        "Age: ",
	dataset.Income:     "Median Income: ",
	dataset.Healthcare: "Lacks Healthcare: ",
	dataset.Smokes:     "Smokers: ",
	dataset.Obesity:    "Obesity: ",
}

// Tooltip is the hover text of one point.
type Tooltip struct {
	State string `json:"state"`
	X     string `json:"x"`
	Y     string `json:"y"`
}

// FormatTooltip builds the tooltip of r under sel.
func FormatTooltip(r dataset.Record, sel Selection) Tooltip {
	x, y := sel.X(), sel.Y()
	return Tooltip{
		State: r.State,
		X:     tooltipPrefix[x] + FormatValue(x, r.Value(x)),
		Y:     tooltipPrefix[y] + FormatValue(y, r.Value(y)),
	}
}

// FormatValue renders a metric with its unit: income as dollars, age bare,
// every other field as a percentage.
func FormatValue(f dataset.Field, v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	switch f {
	case dataset.Income:
		return "$" + s
	case dataset.Age:
		return s
	}
	return s + "%"
}

// Lines returns state, x and y lines.
func (t Tooltip) Lines() []string { return []string{t.State, t.X, t.Y} }

// HTML joins the lines with <br> for HTML hosts.
func (t Tooltip) HTML() string {
	lines := t.Lines()
	for i, l := range lines {
		lines[i] = html.EscapeString(l)
	}
	return strings.Join(lines, "<br>")
}

func (t Tooltip) String() string { return strings.Join(t.Lines(), "\n") }
