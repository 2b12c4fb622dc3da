// Package metrics accumulates statistics over the plotted points of a
// selection and summarizes single fields.
package metrics

import (
	"math"

	"github.com/san-kum/healthscatter/internal/dataset"
	"github.com/san-kum/healthscatter/internal/selector"
)

// Metric observes (x, y) pairs one at a time.
type Metric interface {
	Name() string
	Observe(x, y float64)
	Value() float64
	Reset()
}

// sums are the running moments shared by the pairwise metrics.
type sums struct {
	n int

	sx, sy, sxx, syy, sxy float64
}

func (s *sums) observe(x, y float64) {
	s.n++
	s.sx += x
	s.sy += y
	s.sxx += x * x
	s.syy += y * y
	s.sxy += x * y
}

func (s *sums) cov() float64  { return float64(s.n)*s.sxy - s.sx*s.sy }
func (s *sums) varX() float64 { return float64(s.n)*s.sxx - s.sx*s.sx }
func (s *sums) varY() float64 { return float64(s.n)*s.syy - s.sy*s.sy }

// Correlation is the Pearson correlation coefficient.
type Correlation struct {
	s sums
}

func NewCorrelation() *Correlation { return &Correlation{} }

func (c *Correlation) Name() string { return "pearson_r" }

func (c *Correlation) Observe(x, y float64) { c.s.observe(x, y) }

// Value is 0 when either variable is constant.
func (c *Correlation) Value() float64 {
	den := math.Sqrt(c.s.varX() * c.s.varY())
	if c.s.n < 2 || den == 0 {
		return 0
	}
	return c.s.cov() / den
}

func (c *Correlation) Reset() { c.s = sums{} }

// Regression is an ordinary least squares fit of y on x. Value is the slope.
type Regression struct {
	s sums
}

func NewRegression() *Regression { return &Regression{} }

func (r *Regression) Name() string { return "slope" }

func (r *Regression) Observe(x, y float64) { r.s.observe(x, y) }

func (r *Regression) Value() float64 {
	v := r.s.varX()
	if r.s.n < 2 || v == 0 {
		return 0
	}
	return r.s.cov() / v
}

func (r *Regression) Intercept() float64 {
	if r.s.n == 0 {
		return 0
	}
	return (r.s.sy - r.Value()*r.s.sx) / float64(r.s.n)
}

func (r *Regression) Reset() { r.s = sums{} }

// Defaults returns fresh instances of every pairwise metric.
func Defaults() []Metric {
	return []Metric{NewCorrelation(), NewRegression()}
}

// Evaluate feeds every record's (x, y) under sel to ms and returns their
// values by name.
func Evaluate(ds *dataset.Dataset, sel selector.Selection, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		x, y := r.Value(sel.X()), r.Value(sel.Y())
		for _, m := range ms {
			m.Observe(x, y)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
