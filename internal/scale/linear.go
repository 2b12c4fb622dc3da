// Package scale maps numeric data domains onto pixel ranges.
package scale

import (
	"encoding/json"
	"math"
	"strconv"
)

// Padding widens a data extent multiplicatively before it becomes a domain.
type Padding struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

// DefaultPadding leaves 5% below the minimum and 10% above the maximum.
var DefaultPadding = Padding{Low: 0.95, High: 1.10}

// Linear is an affine map from [d0, d1] onto [r0, r1].
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// New returns a linear scale.
func New(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Fit builds a scale whose domain is [min*p.Low, max*p.High].
func Fit(min, max float64, p Padding, r0, r1 float64) Linear {
	return New(min*p.Low, max*p.High, r0, r1)
}

// Domain returns the data interval.
func (l Linear) Domain() (float64, float64) { return l.d0, l.d1 }

// Range returns the pixel interval.
func (l Linear) Range() (float64, float64) { return l.r0, l.r1 }

// Map projects a data value into the range. A degenerate domain maps
// everything to the range midpoint.
func (l Linear) Map(v float64) float64 {
	span := l.d1 - l.d0
	if span == 0 {
		return (l.r0 + l.r1) / 2
	}
	return l.r0 + (v-l.d0)/span*(l.r1-l.r0)
}

// Invert projects a pixel back into the domain.
func (l Linear) Invert(px float64) float64 {
	span := l.r1 - l.r0
	if span == 0 {
		return (l.d0 + l.d1) / 2
	}
	return l.d0 + (px-l.r0)/span*(l.d1-l.d0)
}

// Step returns the tick spacing chosen for roughly n ticks.
func (l Linear) Step(n int) float64 {
	lo, hi := l.d0, l.d1
	if hi < lo {
		lo, hi = hi, lo
	}
	if n < 1 || hi == lo || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0
	}
	span := hi - lo
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n))))
	best, bestScore := mag, math.MaxFloat64
	// 1, 2, 2.5, 5 and 10 times a power of ten read cleanly on an axis
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		score := math.Abs(span/step - float64(n))
		if score < bestScore {
			best, bestScore = step, score
		}
	}
	return best
}

// Ticks returns evenly spaced round values inside the domain.
func (l Linear) Ticks(n int) []float64 {
	step := l.Step(n)
	if step == 0 {
		return nil
	}
	lo, hi := l.d0, l.d1
	if hi < lo {
		lo, hi = hi, lo
	}
	start := math.Ceil(lo / step)
	end := math.Floor(hi / step)
	ticks := make([]float64, 0, int(end-start)+1)
	for i := start; i <= end; i++ {
		ticks = append(ticks, round(i*step, step))
	}
	return ticks
}

// TickFormat returns a formatter with just enough decimals for the step.
func (l Linear) TickFormat(n int) func(float64) string {
	prec := decimals(l.Step(n))
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
}

// MarshalJSON encodes the scale as its domain and range.
func (l Linear) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Domain [2]float64 `json:"domain"`
		Range  [2]float64 `json:"range"`
	}{[2]float64{l.d0, l.d1}, [2]float64{l.r0, l.r1}})
}

func decimals(step float64) int {
	if step <= 0 || step >= 1 {
		return 0
	}
	d := int(math.Ceil(-math.Log10(step) - 1e-9))
	// 2.5 steps need one more digit than their magnitude suggests
	if math.Abs(step*math.Pow(10, float64(d))-math.Round(step*math.Pow(10, float64(d)))) > 1e-9 {
		d++
	}
	return d
}

func round(v, step float64) float64 {
	p := math.Pow(10, float64(decimals(step)+1))
	return math.Round(v*p) / p
}
