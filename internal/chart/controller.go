package chart

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/san-kum/healthscatter/internal/dataset"
	"github.com/san-kum/healthscatter/internal/scale"
	"github.com/san-kum/healthscatter/internal/selector"
)

// Controller owns the active selection and the scales derived from it.
// It is not safe for concurrent use.
type Controller struct {
	ds     *dataset.Dataset
	layout Layout
	sel    selector.Selection
	xs, ys scale.Linear
	log    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithSelection sets the starting selection.
func WithSelection(sel selector.Selection) Option {
	return func(c *Controller) { c.sel = sel }
}

// WithLogger sets the logger receiving transition events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController binds a dataset to a layout. The dataset must hold at least
// one record.
func NewController(ds *dataset.Dataset, layout Layout, opts ...Option) (*Controller, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("%w: no records to plot", dataset.ErrUnavailable)
	}
	c := &Controller{
		ds:     ds,
		layout: layout,
		sel:    selector.Initial(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.xs = c.fit(selector.X)
	c.ys = c.fit(selector.Y)
	return c, nil
}

// Selection returns the active selection.
func (c *Controller) Selection() selector.Selection { return c.sel }

// Dataset returns the plotted dataset.
func (c *Controller) Dataset() *dataset.Dataset { return c.ds }

// Layout returns the chart geometry.
func (c *Controller) Layout() Layout { return c.layout }

// Scale returns the current scale of axis a.
func (c *Controller) Scale(a selector.Axis) scale.Linear {
	if a == selector.X {
		return c.xs
	}
	return c.ys
}

// Click dispatches a label click and returns the plan with the frame to
// draw next.
func (c *Controller) Click(token string) (selector.RedrawPlan, Frame) {
	next, plan := selector.OnLabelClick(c.sel, token)
	if plan.Empty() {
		c.log.Debug("label click ignored", "token", token)
		return plan, c.Frame()
	}
	c.sel = next
	if plan.AxisTicks {
		if plan.Axis == selector.X {
			c.xs = c.fit(selector.X)
		} else {
			c.ys = c.fit(selector.Y)
		}
	}
	c.log.Debug("selection transition",
		"axis", plan.Axis.String(),
		"from", plan.From.String(),
		"to", plan.To.String(),
		"noop", !plan.Changed)
	return plan, c.Frame()
}

// Select moves both axes to sel.
func (c *Controller) Select(sel selector.Selection) Frame {
	c.Click(sel.X().String())
	_, fr := c.Click(sel.Y().String())
	return fr
}

// Frame lays out the chart for the active selection.
func (c *Controller) Frame() Frame {
	return buildFrame(c.ds, c.layout, c.sel, c.xs, c.ys)
}

func (c *Controller) fit(a selector.Axis) scale.Linear {
	ext, _ := c.ds.Extent(c.sel.Field(a))
	w, h := c.layout.Inner()
	if a == selector.X {
		return scale.Fit(ext.Min, ext.Max, c.layout.Padding, 0, w)
	}
	return scale.Fit(ext.Min, ext.Max, c.layout.Padding, h, 0)
}
