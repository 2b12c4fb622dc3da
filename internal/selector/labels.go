package selector

import "github.com/san-kum/healthscatter/internal/dataset"

// Label is a clickable axis caption. Offset is its distance in pixels from
// the axis, stacking the three captions of an axis.
type Label struct {
	Field  dataset.Field `json:"field"`
	Axis   Axis          `json:"axis"`
	Text   string        `json:"text"`
	Offset float64       `json:"offset"`
}

// LabelState pairs a label with its highlight.
type LabelState struct {
	Label
	Active bool `json:"active"`
}

var labels = []Label{
	{Field: dataset.Poverty, Axis: X, Text: "In Poverty (%)", Offset: 0},
	{Field: dataset.Age, Axis: X, Text: "Age (Median)", Offset: 20},
	{Field: dataset.Income, Axis: X, Text: "Household Income (Median)", Offset: 40},
	{Field: dataset.Healthcare, Axis: Y, Text: "Lacks Healthcare (%)", Offset: 10},
	{Field: dataset.Smokes, Axis: Y, Text: "Smokes (%)", Offset: 30},
	{Field: dataset.Obesity, Axis: Y, Text: "Obesity (%)", Offset: 50},
}

// Labels returns all six axis labels, x first.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}

// LabelFor returns the label of field f.
func LabelFor(f dataset.Field) Label {
	for _, l := range labels {
		if l.Field == f {
			return l
		}
	}
	return Label{Field: f, Text: f.String()}
}

// LabelStates returns every label with its highlight under sel.
func LabelStates(sel Selection) []LabelState {
	out := make([]LabelState, len(labels))
	for i, l := range labels {
		out[i] = LabelState{Label: l, Active: sel.Active(l.Field)}
	}
	return out
}

// AxisLabelStates returns the labels sharing axis a.
func AxisLabelStates(sel Selection, a Axis) []LabelState {
	out := make([]LabelState, 0, 3)
	for _, ls := range LabelStates(sel) {
		if ls.Axis == a {
			out = append(out, ls)
		}
	}
	return out
}
