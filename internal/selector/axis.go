package selector

import (
	"errors"
	"fmt"

	"github.com/san-kum/healthscatter/internal/dataset"
)

// ErrUnknownField indicates a token that names no plotted field.
var ErrUnknownField = errors.New("selector: unknown field")

// Axis identifies the horizontal or vertical axis.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	if a == X {
		return "x"
	}
	return "y"
}

// MarshalText encodes the axis as "x" or "y".
func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

var (
	xFields = []dataset.Field{dataset.Poverty, dataset.Age, dataset.Income}
	yFields = []dataset.Field{dataset.Healthcare, dataset.Smokes, dataset.Obesity}
)

// FieldsOf returns the fields selectable on an axis, in label order.
func FieldsOf(a Axis) []dataset.Field {
	src := xFields
	if a == Y {
		src = yFields
	}
	out := make([]dataset.Field, len(src))
	copy(out, src)
	return out
}

// AxisOf reports which axis a field belongs to.
func AxisOf(f dataset.Field) (Axis, bool) {
	for _, x := range xFields {
		if x == f {
			return X, true
		}
	}
	for _, y := range yFields {
		if y == f {
			return Y, true
		}
	}
	return 0, false
}

// ParseField resolves a token and its axis.
func ParseField(token string) (dataset.Field, Axis, error) {
	f, ok := dataset.ParseField(token)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownField, token)
	}
	a, _ := AxisOf(f)
	return f, a, nil
}

// ParseAxisField resolves a token that must belong to axis a.
func ParseAxisField(token string, a Axis) (dataset.Field, error) {
	f, got, err := ParseField(token)
	if err != nil {
		return 0, err
	}
	if got != a {
		return 0, fmt.Errorf("%w: %s is not an %s-axis field", ErrUnknownField, f, a)
	}
	return f, nil
}
