package chart

import (
	"time"

	"github.com/san-kum/healthscatter/internal/scale"
)

// Transition animates points from one frame to the next. Axis ticks,
// labels and tooltips switch to the target immediately; point positions
// follow the eased curve.
type Transition struct {
	from, to Frame
	duration time.Duration
	ease     func(float64) float64
}

// NewTransition builds a transition. Frames must come from the same dataset
// so points pair up by index.
func NewTransition(from, to Frame, d time.Duration) *Transition {
	return &Transition{from: from, to: to, duration: d, ease: scale.EaseCubicInOut}
}

// Progress returns the eased completion in [0, 1].
func (t *Transition) Progress(elapsed time.Duration) float64 {
	if t.duration <= 0 || elapsed >= t.duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return t.ease(float64(elapsed) / float64(t.duration))
}

// Done reports whether the transition has finished.
func (t *Transition) Done(elapsed time.Duration) bool {
	return t.duration <= 0 || elapsed >= t.duration
}

// Target returns the destination frame.
func (t *Transition) Target() Frame { return t.to }

// At returns the interpolated frame at elapsed.
func (t *Transition) At(elapsed time.Duration) Frame {
	p := t.Progress(elapsed)
	if p >= 1 || len(t.from.Points) != len(t.to.Points) {
		return t.to
	}
	fr := t.to
	fr.Points = make([]Point, len(t.to.Points))
	for i, dst := range t.to.Points {
		src := t.from.Points[i]
		dst.CX = scale.Lerp(src.CX, dst.CX, p)
		dst.CY = scale.Lerp(src.CY, dst.CY, p)
		fr.Points[i] = dst
	}
	return fr
}
