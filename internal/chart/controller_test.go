package chart_test

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/healthscatter/internal/chart"
	"github.com/san-kum/healthscatter/internal/dataset"
	"github.com/san-kum/healthscatter/internal/scale"
	"github.com/san-kum/healthscatter/internal/selector"
)

func labelActive(fr chart.Frame, f dataset.Field) bool {
	for _, l := range fr.Labels {
		if l.Field == f {
			return l.Active
		}
	}
	Fail("label not found: " + f.String())
	return false
}

var _ = Describe("Controller", func() {
	var (
		ds   *dataset.Dataset
		ctrl *chart.Controller
	)

	BeforeEach(func() {
		ds = dataset.Sample()
		var err error
		ctrl, err = chart.NewController(ds, chart.DefaultLayout())
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an empty dataset", func() {
		_, err := chart.NewController(dataset.New(nil), chart.DefaultLayout())
		Expect(err).To(MatchError(dataset.ErrUnavailable))
	})

	It("pads every domain by 5% below and 10% above", func() {
		for _, sel := range selector.All() {
			fr := ctrl.Select(sel)
			for _, a := range []selector.Axis{selector.X, selector.Y} {
				ext, ok := ds.Extent(sel.Field(a))
				Expect(ok).To(BeTrue())
				s := fr.XScale
				if a == selector.Y {
					s = fr.YScale
				}
				d0, d1 := s.Domain()
				Expect(d0).To(BeNumerically("~", 0.95*ext.Min, 1e-9))
				Expect(d1).To(BeNumerically("~", 1.10*ext.Max, 1e-9))
			}
		}
	})

	It("maps y so larger values sit higher", func() {
		fr := ctrl.Frame()
		_, h := chart.DefaultLayout().Inner()
		r0, r1 := fr.YScale.Range()
		Expect(r0).To(Equal(h))
		Expect(r1).To(BeZero())
	})

	It("moves to (age, healthcare) and re-places every point when age is clicked", func() {
		before := ctrl.Frame()
		plan, fr := ctrl.Click("age")

		Expect(plan.Changed).To(BeTrue())
		Expect(ctrl.Selection().X()).To(Equal(dataset.Age))
		Expect(ctrl.Selection().Y()).To(Equal(dataset.Healthcare))

		ext, _ := ds.Extent(dataset.Age)
		w, _ := chart.DefaultLayout().Inner()
		want := scale.Fit(ext.Min, ext.Max, scale.DefaultPadding, 0, w)
		Expect(fr.Points).To(HaveLen(ds.Len()))
		for i, p := range fr.Points {
			Expect(p.CX).To(BeNumerically("~", want.Map(ds.At(i).Age), 1e-9))
			Expect(p.CY).To(BeNumerically("~", before.Points[i].CY, 1e-9))
		}

		Expect(labelActive(fr, dataset.Age)).To(BeTrue())
		Expect(labelActive(fr, dataset.Poverty)).To(BeFalse())
		Expect(labelActive(fr, dataset.Income)).To(BeFalse())
	})

	It("ends at (poverty, obesity) after smokes then obesity", func() {
		ctrl.Click("smokes")
		_, fr := ctrl.Click("obesity")

		Expect(ctrl.Selection().X()).To(Equal(dataset.Poverty))
		Expect(ctrl.Selection().Y()).To(Equal(dataset.Obesity))
		Expect(labelActive(fr, dataset.Smokes)).To(BeFalse())
		Expect(labelActive(fr, dataset.Obesity)).To(BeTrue())
	})

	It("keeps the frame unchanged when the active label is clicked again", func() {
		before := ctrl.Frame()
		plan, fr := ctrl.Click("poverty")

		Expect(plan.Changed).To(BeFalse())
		Expect(fr).To(Equal(before))
	})

	It("refreshes tooltips for the new x field", func() {
		_, fr := ctrl.Click("income")
		i := fr.FindPoint("AL")
		Expect(i).To(BeNumerically(">=", 0))
		Expect(fr.Points[i].Tooltip.X).To(Equal("Median Income: $42830"))
		Expect(fr.Points[i].Tooltip.Y).To(Equal("Lacks Healthcare: 13.9%"))
	})

	It("logs selection transitions", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		c, err := chart.NewController(ds, chart.DefaultLayout(), chart.WithLogger(logger))
		Expect(err).NotTo(HaveOccurred())

		c.Click("obesity")
		Expect(buf.String()).To(ContainSubstring("selection transition"))
		Expect(buf.String()).To(ContainSubstring("to=\"(poverty, obesity)\""))
	})

	It("starts from a configured selection", func() {
		sel, err := selector.NewSelection(dataset.Income, dataset.Smokes)
		Expect(err).NotTo(HaveOccurred())
		c, err := chart.NewController(ds, chart.DefaultLayout(), chart.WithSelection(sel))
		Expect(err).NotTo(HaveOccurred())

		d0, _ := c.Scale(selector.X).Domain()
		ext, _ := ds.Extent(dataset.Income)
		Expect(d0).To(BeNumerically("~", 0.95*ext.Min, 1e-9))
	})
})
