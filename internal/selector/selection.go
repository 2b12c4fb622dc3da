package selector

import (
	"encoding/json"
	"fmt"

	"github.com/san-kum/healthscatter/internal/dataset"
)

// Selection is the pair of active fields. The zero value is the initial
// selection (poverty, healthcare).
type Selection struct {
	x, y dataset.Field
	set  bool
}

// Initial returns (poverty, healthcare).
func Initial() Selection {
	return Selection{x: dataset.Poverty, y: dataset.Healthcare, set: true}
}

// NewSelection validates that x and y come from their axis sets.
func NewSelection(x, y dataset.Field) (Selection, error) {
	if a, ok := AxisOf(x); !ok || a != X {
		return Selection{}, fmt.Errorf("%w: %s is not an x-axis field", ErrUnknownField, x)
	}
	if a, ok := AxisOf(y); !ok || a != Y {
		return Selection{}, fmt.Errorf("%w: %s is not a y-axis field", ErrUnknownField, y)
	}
	return Selection{x: x, y: y, set: true}, nil
}

func (s Selection) norm() Selection {
	if !s.set {
		return Initial()
	}
	return s
}

// X returns the active x field.
func (s Selection) X() dataset.Field { return s.norm().x }

// Y returns the active y field.
func (s Selection) Y() dataset.Field { return s.norm().y }

// Field returns the active field of axis a.
func (s Selection) Field(a Axis) dataset.Field {
	if a == X {
		return s.X()
	}
	return s.Y()
}

// Active reports whether f is bound to either axis.
func (s Selection) Active(f dataset.Field) bool {
	return s.X() == f || s.Y() == f
}

// Equal compares two selections.
func (s Selection) Equal(o Selection) bool {
	return s.X() == o.X() && s.Y() == o.Y()
}

func (s Selection) with(a Axis, f dataset.Field) Selection {
	n := s.norm()
	if a == X {
		n.x = f
	} else {
		n.y = f
	}
	return n
}

func (s Selection) String() string {
	return fmt.Sprintf("(%s, %s)", s.X(), s.Y())
}

// MarshalJSON encodes the selection as {"x": ..., "y": ...}.
func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X dataset.Field `json:"x"`
		Y dataset.Field `json:"y"`
	}{s.X(), s.Y()})
}

// All enumerates the nine reachable selections.
func All() []Selection {
	out := make([]Selection, 0, len(xFields)*len(yFields))
	for _, x := range xFields {
		for _, y := range yFields {
			out = append(out, Selection{x: x, y: y, set: true})
		}
	}
	return out
}
