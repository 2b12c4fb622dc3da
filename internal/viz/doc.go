// Package viz is the terminal scatter plot: a Bubble Tea program that draws
// the chart on a braille canvas, dispatches axis label clicks to the chart
// controller and eases points between selections.
package viz
