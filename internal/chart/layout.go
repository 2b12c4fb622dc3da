package chart

import "github.com/san-kum/healthscatter/internal/scale"

// Margin is the space between the canvas edge and the plot area.
type Margin struct {
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left" json:"left"`
}

// Layout fixes the pixel geometry of a chart.
type Layout struct {
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Margin  Margin        `json:"margin"`
	Padding scale.Padding `json:"padding"`
	Ticks   int           `json:"ticks"`
	Radius  float64       `json:"radius"`
}

// DefaultLayout is a 960x500 canvas with room below and left of the plot
// for the stacked axis labels.
func DefaultLayout() Layout {
	return Layout{
		Width:   960,
		Height:  500,
		Margin:  Margin{Top: 20, Right: 40, Bottom: 60, Left: 100},
		Padding: scale.DefaultPadding,
		Ticks:   8,
		Radius:  15,
	}
}

// Inner returns the width and height of the plot area.
func (l Layout) Inner() (float64, float64) {
	return l.Width - l.Margin.Left - l.Margin.Right, l.Height - l.Margin.Top - l.Margin.Bottom
}
