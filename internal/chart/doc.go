// Package chart turns a dataset and an axis selection into drawable frames.
//
// The [Controller] owns the [selector.Selection] and the two scales. Each
// label click goes through [Controller.Click], which runs the pure reducer,
// refits the scale of the affected axis and returns the redraw plan with
// the next [Frame]. Renderers consume frames and never mutate selection
// state. [Transition] interpolates point positions between two frames.
package chart
