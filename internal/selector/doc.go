// Package selector holds the axis selection state machine of the chart.
//
// A [Selection] binds one field to each axis:
//
//	X: poverty | age | income
//	Y: healthcare | smokes | obesity
//
// giving nine states, starting at (poverty, healthcare). [OnLabelClick] is
// the only transition. It is pure: it returns the next Selection together
// with a [RedrawPlan] naming what the renderer must refresh, and never
// touches rendering state itself.
package selector
