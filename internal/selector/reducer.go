package selector

import "github.com/san-kum/healthscatter/internal/dataset"

// RedrawPlan lists what must be refreshed after a label click.
type RedrawPlan struct {
	Axis        Axis         `json:"axis"`
	From        Selection    `json:"from"`
	To          Selection    `json:"to"`
	Changed     bool         `json:"changed"`
	AxisTicks   bool         `json:"axis_ticks"`
	Points      bool         `json:"points"`
	PointLabels bool         `json:"point_labels"`
	Tooltips    bool         `json:"tooltips"`
	Labels      []LabelState `json:"labels,omitempty"`
}

// Empty reports whether the plan requests nothing.
func (p RedrawPlan) Empty() bool {
	return !p.AxisTicks && !p.Points && !p.PointLabels && !p.Tooltips && len(p.Labels) == 0
}

// OnLabelClick applies a click on the label carrying token.
//
// A token equal to the axis's active field yields the same selection and a
// full refresh plan with Changed unset; re-rendering is idempotent. A token
// naming no field yields the same selection and an empty plan.
func OnLabelClick(sel Selection, token string) (Selection, RedrawPlan) {
	sel = sel.norm()
	f, ok := dataset.ParseField(token)
	if !ok {
		return sel, RedrawPlan{From: sel, To: sel}
	}
	return Dispatch(sel, f)
}

// Dispatch is OnLabelClick for an already parsed field.
func Dispatch(sel Selection, f dataset.Field) (Selection, RedrawPlan) {
	sel = sel.norm()
	a, ok := AxisOf(f)
	if !ok {
		return sel, RedrawPlan{From: sel, To: sel}
	}
	next := sel.with(a, f)
	return next, RedrawPlan{
		Axis:        a,
		From:        sel,
		To:          next,
		Changed:     !next.Equal(sel),
		AxisTicks:   true,
		Points:      true,
		PointLabels: true,
		Tooltips:    true,
		Labels:      AxisLabelStates(next, a),
	}
}
