package selector_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/healthscatter/internal/dataset"
	"github.com/san-kum/healthscatter/internal/selector"
)

func activeOn(states []selector.LabelState, a selector.Axis) []dataset.Field {
	var out []dataset.Field
	for _, s := range states {
		if s.Axis == a && s.Active {
			out = append(out, s.Field)
		}
	}
	return out
}

var _ = Describe("OnLabelClick", func() {
	It("starts at (poverty, healthcare)", func() {
		sel := selector.Initial()
		Expect(sel.X()).To(Equal(dataset.Poverty))
		Expect(sel.Y()).To(Equal(dataset.Healthcare))

		var zero selector.Selection
		Expect(zero.Equal(sel)).To(BeTrue())
	})

	It("rebinds the x axis on an x label", func() {
		next, plan := selector.OnLabelClick(selector.Initial(), "age")

		Expect(next.X()).To(Equal(dataset.Age))
		Expect(next.Y()).To(Equal(dataset.Healthcare))
		Expect(plan.Axis).To(Equal(selector.X))
		Expect(plan.Changed).To(BeTrue())
		Expect(plan.AxisTicks).To(BeTrue())
		Expect(plan.Points).To(BeTrue())
		Expect(plan.PointLabels).To(BeTrue())
		Expect(plan.Tooltips).To(BeTrue())
	})

	It("updates only the labels sharing the clicked axis", func() {
		_, plan := selector.OnLabelClick(selector.Initial(), "income")

		Expect(plan.Labels).To(HaveLen(3))
		for _, l := range plan.Labels {
			Expect(l.Axis).To(Equal(selector.X))
			Expect(l.Active).To(Equal(l.Field == dataset.Income))
		}
	})

	It("treats a click on the active field as an idempotent re-render", func() {
		start := selector.Initial()
		next, plan := selector.OnLabelClick(start, "poverty")

		Expect(next.Equal(start)).To(BeTrue())
		Expect(plan.Changed).To(BeFalse())
		Expect(plan.Points).To(BeTrue())
		Expect(activeOn(plan.Labels, selector.X)).To(ConsistOf(dataset.Poverty))

		again, plan2 := selector.OnLabelClick(next, "poverty")
		Expect(again.Equal(next)).To(BeTrue())
		Expect(plan2).To(Equal(plan))
	})

	It("ignores tokens that name no field", func() {
		start := selector.Initial()
		next, plan := selector.OnLabelClick(start, "rainfall")

		Expect(next.Equal(start)).To(BeTrue())
		Expect(plan.Empty()).To(BeTrue())
		Expect(plan.Changed).To(BeFalse())
	})

	It("ends at (poverty, obesity) after clicking smokes then obesity", func() {
		sel := selector.Initial()
		sel, _ = selector.OnLabelClick(sel, "smokes")
		sel, plan := selector.OnLabelClick(sel, "obesity")

		Expect(sel.X()).To(Equal(dataset.Poverty))
		Expect(sel.Y()).To(Equal(dataset.Obesity))
		for _, l := range plan.Labels {
			switch l.Field {
			case dataset.Smokes, dataset.Healthcare:
				Expect(l.Active).To(BeFalse())
			case dataset.Obesity:
				Expect(l.Active).To(BeTrue())
			}
		}
	})

	It("reaches every state in the same axis set from every state", func() {
		for _, from := range selector.All() {
			for _, a := range []selector.Axis{selector.X, selector.Y} {
				for _, f := range selector.FieldsOf(a) {
					next, _ := selector.Dispatch(from, f)
					Expect(next.Field(a)).To(Equal(f))
					other := selector.Y
					if a == selector.Y {
						other = selector.X
					}
					Expect(next.Field(other)).To(Equal(from.Field(other)))
				}
			}
		}
	})
})

var _ = Describe("LabelStates", func() {
	It("marks exactly one active label per axis for every selection", func() {
		Expect(selector.All()).To(HaveLen(9))
		for _, sel := range selector.All() {
			states := selector.LabelStates(sel)
			Expect(states).To(HaveLen(6))
			Expect(activeOn(states, selector.X)).To(ConsistOf(sel.X()))
			Expect(activeOn(states, selector.Y)).To(ConsistOf(sel.Y()))
		}
	})

	It("agrees with Selection.Active for every label", func() {
		for _, sel := range selector.All() {
			for _, l := range selector.LabelStates(sel) {
				Expect(l.Active).To(Equal(sel.Active(l.Field)), "%s on %s", l.Field, sel)
			}
		}
		sel := selector.Initial()
		Expect(sel.Active(dataset.Poverty)).To(BeTrue())
		Expect(sel.Active(dataset.Healthcare)).To(BeTrue())
		Expect(sel.Active(dataset.Age)).To(BeFalse())
	})

	It("carries the display text of each label", func() {
		Expect(selector.LabelFor(dataset.Income).Text).To(Equal("Household Income (Median)"))
		Expect(selector.LabelFor(dataset.Smokes).Text).To(Equal("Smokes (%)"))
	})
})

var _ = Describe("NewSelection", func() {
	It("rejects fields on the wrong axis", func() {
		_, err := selector.NewSelection(dataset.Healthcare, dataset.Poverty)
		Expect(err).To(MatchError(selector.ErrUnknownField))
	})

	It("accepts fields from their own sets", func() {
		sel, err := selector.NewSelection(dataset.Income, dataset.Smokes)
		Expect(err).NotTo(HaveOccurred())
		Expect(sel.String()).To(Equal("(income, smokes)"))
	})
})

var _ = Describe("ParseAxisField", func() {
	It("resolves a field on its axis", func() {
		f, err := selector.ParseAxisField("Obesity", selector.Y)
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(dataset.Obesity))
	})

	It("rejects a field from the other axis", func() {
		_, err := selector.ParseAxisField("age", selector.Y)
		Expect(err).To(MatchError(selector.ErrUnknownField))
	})
})
